package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/onboard-desk/internal/entity"
)

type LoginOutput struct {
	Record *entity.ClientRecord `json:"record"`
	Token  string               `json:"token"`
}

type LoginUseCase struct {
	Resolver ClientResolver
}

func NewLoginUseCase(resolver ClientResolver) *LoginUseCase {
	return &LoginUseCase{Resolver: resolver}
}

// Execute authenticates the client. Unknown email and wrong password
// produce the same error on purpose: the response must not reveal which
// accounts exist.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*LoginOutput, error) {
	badCredentials := &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: entity.ErrInvalidCredentials.Error(),
	}

	_, rec, err := uc.Resolver.FindByEmail(ctx, email)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, badCredentials
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    "CONNECTION_ERROR",
			Message: "failed to look up account: " + err.Error(),
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return nil, badCredentials
	}

	return &LoginOutput{
		Record: rec,
		Token:  uuid.New().String(),
	}, nil
}
