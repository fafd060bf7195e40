package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/sheet"
	"github.com/xavierca1/onboard-desk/internal/usecase"
)

func hashOf(t *testing.T, secret string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	rec := &entity.ClientRecord{
		Email:        "a@gmail.com",
		PartyName:    "Ana",
		PasswordHash: hashOf(t, "correct-horse-battery"),
	}
	mockResolver.On("FindByEmail", ctx, "a@gmail.com").Return(2, rec, nil)

	uc := usecase.NewLoginUseCase(mockResolver)

	out, err := uc.Execute(ctx, "a@gmail.com", "correct-horse-battery")

	assert.NoError(t, err)
	assert.Equal(t, "Ana", out.Record.PartyName)
	assert.NotEmpty(t, out.Token)
}

func TestLoginFallbackSecretWorksUntilPasswordSet(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	rec := &entity.ClientRecord{
		Email:        "a@gmail.com",
		PasswordHash: hashOf(t, entity.FallbackSecret),
	}
	mockResolver.On("FindByEmail", ctx, "a@gmail.com").Return(2, rec, nil)

	uc := usecase.NewLoginUseCase(mockResolver)

	out, err := uc.Execute(ctx, "a@gmail.com", entity.FallbackSecret)
	assert.NoError(t, err)
	assert.NotNil(t, out)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	rec := &entity.ClientRecord{
		Email:        "known@gmail.com",
		PasswordHash: hashOf(t, "right-password"),
	}
	mockResolver.On("FindByEmail", ctx, "known@gmail.com").Return(2, rec, nil)
	mockResolver.On("FindByEmail", ctx, "unknown@gmail.com").Return(0, nil, entity.ErrNotFound)

	uc := usecase.NewLoginUseCase(mockResolver)

	_, errWrongPassword := uc.Execute(ctx, "known@gmail.com", "wrong")
	_, errUnknownEmail := uc.Execute(ctx, "unknown@gmail.com", "whatever")

	assert.Error(t, errWrongPassword)
	assert.Error(t, errUnknownEmail)
	// same code, same message: the caller cannot tell which accounts exist
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	assert.Equal(t,
		errWrongPassword.(*usecase.DomainError).Code,
		errUnknownEmail.(*usecase.DomainError).Code)
}

func TestLoginBackendErrorIsTechnical(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	mockResolver.On("FindByEmail", ctx, "a@gmail.com").Return(0, nil, sheet.ErrConnection)

	uc := usecase.NewLoginUseCase(mockResolver)

	_, err := uc.Execute(ctx, "a@gmail.com", "whatever")

	assert.True(t, usecase.IsTechnicalError(err))
}
