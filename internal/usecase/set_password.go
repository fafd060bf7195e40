package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/infra/queue"
	"github.com/xavierca1/onboard-desk/internal/sheet"
)

type SetPasswordUseCase struct {
	Resolver ClientResolver
	Store    ClientStore
	Queue    NotifyProducer
	Clock    func() time.Time
}

func NewSetPasswordUseCase(resolver ClientResolver, store ClientStore, queue NotifyProducer) *SetPasswordUseCase {
	return &SetPasswordUseCase{
		Resolver: resolver,
		Store:    store,
		Queue:    queue,
		Clock:    time.Now,
	}
}

func (uc *SetPasswordUseCase) Execute(ctx context.Context, email, newPassword string) error {
	if errs := ValidateSetPasswordInput(newPassword); len(errs) > 0 {
		return validationFailure(errs)
	}

	rowIndex, rec, err := uc.Resolver.FindByEmail(ctx, email)
	if errors.Is(err, entity.ErrNotFound) {
		return &DomainError{Code: "NOT_REGISTERED", Message: "email is not registered"}
	}
	if err != nil {
		return &TechnicalError{
			Code:    "CONNECTION_ERROR",
			Message: "failed to resolve record: " + err.Error(),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return &TechnicalError{Code: "HASH_ERROR", Message: err.Error()}
	}

	fields := map[string]string{
		sheet.FieldPasswordHash: string(hash),
	}
	if err := patchWithRetry(ctx, uc.Store, rowIndex, fields); err != nil {
		return &TechnicalError{
			Code:    "WRITE_ERROR",
			Message: "failed to save password: " + err.Error(),
		}
	}

	uc.notify(ctx, rec)
	return nil
}

func (uc *SetPasswordUseCase) notify(ctx context.Context, rec *entity.ClientRecord) {
	if uc.Queue == nil {
		return
	}
	payload := queue.NotifyPayload{
		Event:      "password_set",
		CaseID:     rec.CaseID,
		Party:      rec.PartyName,
		Email:      rec.Email,
		Stage:      string(rec.Status),
		OccurredAt: uc.Clock().Format(sheet.TimeLayout),
	}
	if err := uc.Queue.PublishNotify(ctx, payload); err != nil {
		log.Printf("⚠️ senha salva, mas falha na fila de notificação: %v", err)
	}
}
