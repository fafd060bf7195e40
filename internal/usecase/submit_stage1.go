package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/infra/docgen"
	"github.com/xavierca1/onboard-desk/internal/infra/queue"
	"github.com/xavierca1/onboard-desk/internal/sheet"
)

type Stage1Input struct {
	Email     string `json:"email"`
	Plan      string `json:"plan"`
	StartDate string `json:"start_date"`
	PayDay    int    `json:"pay_day,omitempty"`
	PayDate   string `json:"pay_date,omitempty"`
}

type Stage1Output struct {
	Record       *entity.ClientRecord `json:"record"`
	Contract     []byte               `json:"contract_docx,omitempty"`
	ContractName string               `json:"contract_name,omitempty"`
}

type SubmitStage1UseCase struct {
	Resolver ClientResolver
	Store    ClientStore
	Queue    NotifyProducer
	Renderer ContractRenderer
	Clock    func() time.Time
}

func NewSubmitStage1UseCase(
	resolver ClientResolver,
	store ClientStore,
	queue NotifyProducer,
	renderer ContractRenderer,
) *SubmitStage1UseCase {
	return &SubmitStage1UseCase{
		Resolver: resolver,
		Store:    store,
		Queue:    queue,
		Renderer: renderer,
		Clock:    time.Now,
	}
}

// Execute locks in the contract terms for a registered client: patches the
// contract columns, stamps status Stage1_Done and renders the Word
// contract for download.
func (uc *SubmitStage1UseCase) Execute(ctx context.Context, input Stage1Input) (*Stage1Output, error) {
	if errs := ValidateStage1Input(input, uc.Clock()); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	rowIndex, rec, err := uc.Resolver.FindByEmail(ctx, input.Email)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, &DomainError{Code: "NOT_REGISTERED", Message: "email is not registered"}
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    "CONNECTION_ERROR",
			Message: "failed to resolve record: " + err.Error(),
		}
	}

	plan, _ := entity.ParsePlan(input.Plan)

	// case_id is assigned at registration; rows imported from the old
	// sheet may predate that, so backfill once here
	caseID := rec.CaseID
	if caseID == "" {
		caseID = entity.NewCaseID(rec.PartyName, uc.Clock())
	}

	payDay := ""
	if plan == entity.PlanMonthly {
		payDay = strconv.Itoa(input.PayDay)
	}

	fields := map[string]string{
		sheet.FieldCaseID:       caseID,
		sheet.FieldProvider:     entity.ProviderName,
		sheet.FieldPlan:         string(plan),
		sheet.FieldPlanRaw:      plan.Label(),
		sheet.FieldDisplayLabel: caseID + " | " + rec.PartyName,
		sheet.FieldStartDate:    input.StartDate,
		sheet.FieldPayDay:       payDay,
		sheet.FieldPayDate:      input.PayDate,
		sheet.FieldStatus:       string(entity.StageContract),
	}

	if err := patchWithRetry(ctx, uc.Store, rowIndex, fields); err != nil {
		return nil, &TechnicalError{
			Code:    "WRITE_ERROR",
			Message: "failed to save contract terms: " + err.Error(),
		}
	}

	rec.CaseID = caseID
	rec.Provider = entity.ProviderName
	rec.Plan = plan
	rec.PlanRaw = plan.Label()
	rec.DisplayLabel = fields[sheet.FieldDisplayLabel]
	rec.StartDate = input.StartDate
	rec.PayDay = input.PayDay
	rec.PayDate = input.PayDate
	rec.Status = entity.StageContract
	rec.LastUpdateAt = uc.Clock().Format(sheet.TimeLayout)

	uc.notify(ctx, rec)

	out := &Stage1Output{Record: rec}
	if uc.Renderer != nil {
		contract, err := uc.Renderer.Render(docgen.ContractData{
			Party:     rec.PartyName,
			Provider:  rec.Provider,
			CaseID:    rec.CaseID,
			Plan:      rec.Plan,
			StartDate: rec.StartDate,
			PayDay:    rec.PayDay,
			PayDate:   rec.PayDate,
		})
		if err != nil {
			// the terms are already saved; a broken template must not
			// undo that, the download can be retried
			log.Printf("⚠️ contrato salvo, mas falha ao renderizar docx: %v", err)
		} else {
			out.Contract = contract
			out.ContractName = docgen.FileName(rec.CaseID)
		}
	}

	return out, nil
}

func (uc *SubmitStage1UseCase) notify(ctx context.Context, rec *entity.ClientRecord) {
	if uc.Queue == nil {
		return
	}
	payload := queue.NotifyPayload{
		Event:      "stage1_done",
		CaseID:     rec.CaseID,
		Party:      rec.PartyName,
		Email:      rec.Email,
		Stage:      string(rec.Status),
		Plan:       string(rec.Plan),
		OccurredAt: rec.LastUpdateAt,
	}
	if err := uc.Queue.PublishNotify(ctx, payload); err != nil {
		log.Printf("⚠️ contrato salvo, mas falha na fila de notificação: %v", err)
	}
}
