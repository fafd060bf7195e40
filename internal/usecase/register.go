package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/infra/queue"
	"github.com/xavierca1/onboard-desk/internal/sheet"
)

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"` // optional, fallback secret when empty
}

type RegisterUseCase struct {
	Resolver ClientResolver
	Store    ClientStore
	Queue    NotifyProducer
	Clock    func() time.Time
}

func NewRegisterUseCase(resolver ClientResolver, store ClientStore, queue NotifyProducer) *RegisterUseCase {
	return &RegisterUseCase{
		Resolver: resolver,
		Store:    store,
		Queue:    queue,
		Clock:    time.Now,
	}
}

// Execute creates the client's row. Resolve-then-create is two network
// calls with no backend uniqueness constraint; two near-simultaneous
// registrations for the same email can both pass the check. Accepted
// limitation for human-paced usage.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*entity.ClientRecord, error) {
	if errs := ValidateRegisterInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	email := strings.TrimSpace(input.Email)

	_, _, err := uc.Resolver.FindByEmail(ctx, email)
	if err == nil {
		return nil, &DomainError{
			Code:    "DUPLICATE_EMAIL",
			Message: entity.ErrEmailAlreadyExists.Error(),
		}
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, &TechnicalError{
			Code:    "CONNECTION_ERROR",
			Message: "failed to check existing registration: " + err.Error(),
		}
	}

	secret := input.Password
	if secret == "" {
		secret = entity.FallbackSecret
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: err.Error()}
	}

	now := uc.Clock()
	rec := &entity.ClientRecord{
		Email:        email,
		CaseID:       entity.NewCaseID(input.Name, now),
		PartyName:    strings.TrimSpace(input.Name),
		Provider:     entity.ProviderName,
		PasswordHash: string(hash),
		Status:       entity.StageRegistered,
		LastUpdateAt: now.Format(sheet.TimeLayout),
	}

	if err := uc.Store.Create(ctx, rec); err != nil {
		// append state unknown: re-read before declaring failure, so a
		// half-acknowledged write does not turn into a duplicate row later
		if _, got, ferr := uc.Resolver.FindByEmail(ctx, email); ferr == nil {
			uc.notify(ctx, got)
			return got, nil
		}
		return nil, &TechnicalError{
			Code:    "WRITE_ERROR",
			Message: "failed to persist registration: " + err.Error(),
		}
	}

	uc.notify(ctx, rec)
	return rec, nil
}

func (uc *RegisterUseCase) notify(ctx context.Context, rec *entity.ClientRecord) {
	if uc.Queue == nil {
		return
	}
	payload := queue.NotifyPayload{
		Event:      "registered",
		CaseID:     rec.CaseID,
		Party:      rec.PartyName,
		Email:      rec.Email,
		Stage:      string(rec.Status),
		OccurredAt: rec.LastUpdateAt,
	}
	if err := uc.Queue.PublishNotify(ctx, payload); err != nil {
		log.Printf("⚠️ registro salvo, mas falha na fila de notificação: %v", err)
	}
}
