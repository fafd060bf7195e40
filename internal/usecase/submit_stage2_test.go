package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/sheet"
	"github.com/xavierca1/onboard-desk/internal/usecase"
)

func boolPtr(v bool) *bool { return &v }
func strPtr(v string) *string { return &v }

func contractedRecord() *entity.ClientRecord {
	return &entity.ClientRecord{
		Email:     "c@gmail.com",
		CaseID:    "Case C_20250101_0930",
		PartyName: "Case C",
		Plan:      entity.PlanMonthly,
		Comp1:     "https://fb.com/rival-one",
		Status:    entity.StageContract,
	}
}

func TestSubmitStage2PatchesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	mockStore := new(MockStore)

	mockResolver.On("FindByEmail", ctx, "c@gmail.com").Return(2, contractedRecord(), nil)

	var patched map[string]string
	mockStore.On("Patch", ctx, 2, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).(map[string]string)
		}).
		Return(nil)

	uc := usecase.NewSubmitStage2UseCase(mockResolver, mockStore, nil)

	out, err := uc.Execute(ctx, usecase.Stage2Input{
		Email:          "c@gmail.com",
		AdAccountReady: boolPtr(true),
		FanpageURL:     strPtr("https://fb.com/case-c"),
		Budget:         strPtr("5000"),
	})

	assert.NoError(t, err)

	assert.Equal(t, sheet.TokenTrue, patched[sheet.FieldChkAdAccount])
	assert.Equal(t, "https://fb.com/case-c", patched[sheet.FieldFanpageURL])
	assert.Equal(t, "5000", patched[sheet.FieldBudget])
	assert.Equal(t, string(entity.StageChecklist), patched[sheet.FieldStatus])

	// untouched fields never reach the patch at all
	assert.NotContains(t, patched, sheet.FieldComp1)
	assert.NotContains(t, patched, sheet.FieldChkPixel)
	assert.NotContains(t, patched, sheet.FieldLandingURL)

	// but the response still carries their stored values
	assert.Equal(t, "https://fb.com/rival-one", out.Record.Comp1)
	assert.Equal(t, entity.StageChecklist, out.Record.Status)
}

func TestSubmitStage2ExplicitFalseIsWritten(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	mockStore := new(MockStore)

	rec := contractedRecord()
	rec.PixelReady = true
	mockResolver.On("FindByEmail", ctx, "c@gmail.com").Return(2, rec, nil)

	var patched map[string]string
	mockStore.On("Patch", ctx, 2, mock.Anything).
		Run(func(args mock.Arguments) {
			patched = args.Get(2).(map[string]string)
		}).
		Return(nil)

	uc := usecase.NewSubmitStage2UseCase(mockResolver, mockStore, nil)

	out, err := uc.Execute(ctx, usecase.Stage2Input{
		Email:      "c@gmail.com",
		PixelReady: boolPtr(false), // unchecking a box is a real update
	})

	assert.NoError(t, err)
	assert.Equal(t, sheet.TokenFalse, patched[sheet.FieldChkPixel])
	assert.False(t, out.Record.PixelReady)
}

func TestSubmitStage2ReplyTextReflectsRecord(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	mockStore := new(MockStore)
	mockQueue := new(MockNotifyProducer)

	mockResolver.On("FindByEmail", ctx, "c@gmail.com").Return(2, contractedRecord(), nil)
	mockStore.On("Patch", ctx, 2, mock.Anything).Return(nil)
	mockQueue.On("PublishNotify", ctx, mock.Anything).Return(nil)

	uc := usecase.NewSubmitStage2UseCase(mockResolver, mockStore, mockQueue)

	out, err := uc.Execute(ctx, usecase.Stage2Input{
		Email:          "c@gmail.com",
		AdAccountReady: boolPtr(true),
		Budget:         strPtr("5000"),
		WhoProblem:     strPtr("busy parents"),
	})

	assert.NoError(t, err)
	assert.Contains(t, out.ReplyText, "Case C_20250101_0930")
	assert.Contains(t, out.ReplyText, "- Ad account: done")
	assert.Contains(t, out.ReplyText, "- Pixel events: pending")
	assert.Contains(t, out.ReplyText, "5000")
	assert.Contains(t, out.ReplyText, "busy parents")
	assert.Contains(t, out.ReplyText, "(not filled)")

	mockQueue.AssertCalled(t, "PublishNotify", ctx, mock.Anything)
}

func TestSubmitStage2UnregisteredEmail(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	mockResolver.On("FindByEmail", ctx, "nobody@gmail.com").Return(0, nil, entity.ErrNotFound)

	uc := usecase.NewSubmitStage2UseCase(mockResolver, new(MockStore), nil)

	_, err := uc.Execute(ctx, usecase.Stage2Input{Email: "nobody@gmail.com"})

	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, "NOT_REGISTERED", err.(*usecase.DomainError).Code)
}

func TestSubmitStage2WriteErrorSurfaces(t *testing.T) {
	ctx := context.Background()

	mockResolver := new(MockResolver)
	mockStore := new(MockStore)

	mockResolver.On("FindByEmail", ctx, "c@gmail.com").Return(2, contractedRecord(), nil)
	mockStore.On("Patch", ctx, 2, mock.Anything).Return(sheet.ErrWrite)

	uc := usecase.NewSubmitStage2UseCase(mockResolver, mockStore, nil)

	_, err := uc.Execute(ctx, usecase.Stage2Input{
		Email:  "c@gmail.com",
		Budget: strPtr("5000"),
	})

	assert.True(t, usecase.IsTechnicalError(err))
	mockStore.AssertNumberOfCalls(t, "Patch", 2) // one immediate retry, then surface
}
