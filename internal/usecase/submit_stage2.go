package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/infra/queue"
	"github.com/xavierca1/onboard-desk/internal/sheet"
)

// Stage2Input uses pointers so the checklist can be filled over several
// sessions: a nil field was not part of this submission and its stored
// value stays untouched.
type Stage2Input struct {
	Email string `json:"email"`

	AdAccountReady       *bool `json:"chk_ad_account,omitempty"`
	PixelReady           *bool `json:"chk_pixel,omitempty"`
	FanpageReady         *bool `json:"chk_fanpage,omitempty"`
	BusinessManagerReady *bool `json:"chk_bm,omitempty"`
	RemoteAccessReady    *bool `json:"chk_remote,omitempty"`
	CreativesUploaded    *bool `json:"chk_creatives,omitempty"`

	FanpageURL  *string `json:"fanpage_url,omitempty"`
	LandingURL  *string `json:"landing_url,omitempty"`
	Comp1       *string `json:"comp1,omitempty"`
	Comp2       *string `json:"comp2,omitempty"`
	Comp3       *string `json:"comp3,omitempty"`
	WhoProblem  *string `json:"who_problem,omitempty"`
	WhatProblem *string `json:"what_problem,omitempty"`
	HowSolve    *string `json:"how_solve,omitempty"`
	Budget      *string `json:"budget,omitempty"`
}

type Stage2Output struct {
	Record    *entity.ClientRecord `json:"record"`
	ReplyText string               `json:"reply_text"`
}

type SubmitStage2UseCase struct {
	Resolver ClientResolver
	Store    ClientStore
	Queue    NotifyProducer
	Clock    func() time.Time
}

func NewSubmitStage2UseCase(resolver ClientResolver, store ClientStore, queue NotifyProducer) *SubmitStage2UseCase {
	return &SubmitStage2UseCase{
		Resolver: resolver,
		Store:    store,
		Queue:    queue,
		Clock:    time.Now,
	}
}

func (uc *SubmitStage2UseCase) Execute(ctx context.Context, input Stage2Input) (*Stage2Output, error) {
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

	fields := map[string]string{
		sheet.FieldStatus: string(entity.StageChecklist),
	}

	setBool := func(name string, v *bool, dst *bool) {
		if v != nil {
			fields[name] = sheet.FormatBool(*v)
			*dst = *v
		}
	}
	setText := func(name string, v *string, dst *string) {
		if v != nil {
			fields[name] = *v
			*dst = *v
		}
	}

	setBool(sheet.FieldChkAdAccount, input.AdAccountReady, &rec.AdAccountReady)
	setBool(sheet.FieldChkPixel, input.PixelReady, &rec.PixelReady)
	setBool(sheet.FieldChkFanpage, input.FanpageReady, &rec.FanpageReady)
	setBool(sheet.FieldChkBM, input.BusinessManagerReady, &rec.BusinessManagerReady)
	setBool(sheet.FieldChkRemote, input.RemoteAccessReady, &rec.RemoteAccessReady)
	setBool(sheet.FieldChkCreatives, input.CreativesUploaded, &rec.CreativesUploaded)

	setText(sheet.FieldFanpageURL, input.FanpageURL, &rec.FanpageURL)
	setText(sheet.FieldLandingURL, input.LandingURL, &rec.LandingURL)
	setText(sheet.FieldComp1, input.Comp1, &rec.Comp1)
	setText(sheet.FieldComp2, input.Comp2, &rec.Comp2)
	setText(sheet.FieldComp3, input.Comp3, &rec.Comp3)
	setText(sheet.FieldWhoProblem, input.WhoProblem, &rec.WhoProblem)
	setText(sheet.FieldWhatProblem, input.WhatProblem, &rec.WhatProblem)
	setText(sheet.FieldHowSolve, input.HowSolve, &rec.HowSolve)
	setText(sheet.FieldBudget, input.Budget, &rec.Budget)

	if err := patchWithRetry(ctx, uc.Store, rowIndex, fields); err != nil {
		return nil, &TechnicalError{
			Code:    "WRITE_ERROR",
			Message: "failed to save checklist: " + err.Error(),
		}
	}

	rec.Status = entity.StageChecklist
	rec.LastUpdateAt = uc.Clock().Format(sheet.TimeLayout)

	uc.notify(ctx, rec)

	return &Stage2Output{
		Record:    rec,
		ReplyText: BuildReplyText(rec),
	}, nil
}

func (uc *SubmitStage2UseCase) notify(ctx context.Context, rec *entity.ClientRecord) {
	if uc.Queue == nil {
		return
	}
	payload := queue.NotifyPayload{
		Event:      "stage2_done",
		CaseID:     rec.CaseID,
		Party:      rec.PartyName,
		Email:      rec.Email,
		Stage:      string(rec.Status),
		Plan:       string(rec.Plan),
		OccurredAt: rec.LastUpdateAt,
	}
	if err := uc.Queue.PublishNotify(ctx, payload); err != nil {
		log.Printf("⚠️ checklist salvo, mas falha na fila de notificação: %v", err)
	}
}

// BuildReplyText renders the plain-text summary the client pastes back to
// the operator chat after finishing the checklist.
func BuildReplyText(rec *entity.ClientRecord) string {
	filled := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "(not filled)"
		}
		return s
	}
	status := func(v bool) string {
		if v {
			return "done"
		}
		return "pending"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[Launch data - %s]\n", filled(rec.PartyName))
	fmt.Fprintf(&b, "Case: %s\n\n", filled(rec.CaseID))

	b.WriteString("[Checklist]\n")
	fmt.Fprintf(&b, "- Ad account: %s\n", status(rec.AdAccountReady))
	fmt.Fprintf(&b, "- Pixel events: %s\n", status(rec.PixelReady))
	fmt.Fprintf(&b, "- Fanpage: %s\n", status(rec.FanpageReady))
	fmt.Fprintf(&b, "- Business Manager: %s\n", status(rec.BusinessManagerReady))
	fmt.Fprintf(&b, "- Remote access: %s\n", status(rec.RemoteAccessReady))
	fmt.Fprintf(&b, "- Creatives uploaded: %s\n\n", status(rec.CreativesUploaded))

	b.WriteString("[Links]\n")
	fmt.Fprintf(&b, "- Fanpage: %s\n", filled(rec.FanpageURL))
	fmt.Fprintf(&b, "- Landing page: %s\n\n", filled(rec.LandingURL))

	b.WriteString("[Competitors]\n")
	fmt.Fprintf(&b, "1) %s\n2) %s\n3) %s\n\n", filled(rec.Comp1), filled(rec.Comp2), filled(rec.Comp3))

	b.WriteString("[Positioning]\n")
	fmt.Fprintf(&b, "- Audience: %s\n", filled(rec.WhoProblem))
	fmt.Fprintf(&b, "- Problem: %s\n", filled(rec.WhatProblem))
	fmt.Fprintf(&b, "- Solution: %s\n\n", filled(rec.HowSolve))

	fmt.Fprintf(&b, "[First-month budget]\n- %s\n", filled(rec.Budget))
	return b.String()
}
