package store

import (
	"strconv"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/sheet"
)

// RecordFromRow decodes a header-keyed sheet row into the entity. Missing
// cells fall back to the zero value, bad boolean tokens decode as false.
func RecordFromRow(values map[string]string) *entity.ClientRecord {
	payDay, _ := strconv.Atoi(values[sheet.FieldPayDay])

	return &entity.ClientRecord{
		Email:     values[sheet.FieldEmail],
		CaseID:    values[sheet.FieldCaseID],
		PartyName: values[sheet.FieldParty],
		Provider:  values[sheet.FieldProvider],

		Plan:      entity.Plan(values[sheet.FieldPlan]),
		StartDate: values[sheet.FieldStartDate],
		PayDay:    payDay,
		PayDate:   values[sheet.FieldPayDate],

		AdAccountReady:       sheet.ParseBool(values[sheet.FieldChkAdAccount]),
		PixelReady:           sheet.ParseBool(values[sheet.FieldChkPixel]),
		FanpageReady:         sheet.ParseBool(values[sheet.FieldChkFanpage]),
		BusinessManagerReady: sheet.ParseBool(values[sheet.FieldChkBM]),
		RemoteAccessReady:    sheet.ParseBool(values[sheet.FieldChkRemote]),
		CreativesUploaded:    sheet.ParseBool(values[sheet.FieldChkCreatives]),

		FanpageURL:  values[sheet.FieldFanpageURL],
		LandingURL:  values[sheet.FieldLandingURL],
		Comp1:       values[sheet.FieldComp1],
		Comp2:       values[sheet.FieldComp2],
		Comp3:       values[sheet.FieldComp3],
		WhoProblem:  values[sheet.FieldWhoProblem],
		WhatProblem: values[sheet.FieldWhatProblem],
		HowSolve:    values[sheet.FieldHowSolve],
		Budget:      values[sheet.FieldBudget],

		LastUpdateAt: values[sheet.FieldLastUpdateAt],
		PlanRaw:      values[sheet.FieldPlanRaw],
		DisplayLabel: values[sheet.FieldDisplayLabel],
		PasswordHash: values[sheet.FieldPasswordHash],
		Status:       entity.Stage(values[sheet.FieldStatus]),
	}
}

// RowFromRecord encodes the record as a full row in registry column order.
// Fields the record leaves unset come out as their declared defaults.
func RowFromRecord(rec *entity.ClientRecord) []string {
	set := map[string]string{
		sheet.FieldEmail:     rec.Email,
		sheet.FieldCaseID:    rec.CaseID,
		sheet.FieldParty:     rec.PartyName,
		sheet.FieldProvider:  rec.Provider,
		sheet.FieldPlan:      string(rec.Plan),
		sheet.FieldStartDate: rec.StartDate,
		sheet.FieldPayDate:   rec.PayDate,

		sheet.FieldChkAdAccount: sheet.FormatBool(rec.AdAccountReady),
		sheet.FieldChkPixel:     sheet.FormatBool(rec.PixelReady),
		sheet.FieldChkFanpage:   sheet.FormatBool(rec.FanpageReady),
		sheet.FieldChkBM:        sheet.FormatBool(rec.BusinessManagerReady),
		sheet.FieldChkRemote:    sheet.FormatBool(rec.RemoteAccessReady),
		sheet.FieldChkCreatives: sheet.FormatBool(rec.CreativesUploaded),

		sheet.FieldFanpageURL:  rec.FanpageURL,
		sheet.FieldLandingURL:  rec.LandingURL,
		sheet.FieldComp1:       rec.Comp1,
		sheet.FieldComp2:       rec.Comp2,
		sheet.FieldComp3:       rec.Comp3,
		sheet.FieldWhoProblem:  rec.WhoProblem,
		sheet.FieldWhatProblem: rec.WhatProblem,
		sheet.FieldHowSolve:    rec.HowSolve,
		sheet.FieldBudget:      rec.Budget,

		sheet.FieldLastUpdateAt: rec.LastUpdateAt,
		sheet.FieldPlanRaw:      rec.PlanRaw,
		sheet.FieldDisplayLabel: rec.DisplayLabel,
		sheet.FieldPasswordHash: rec.PasswordHash,
		sheet.FieldStatus:       string(rec.Status),
	}
	if rec.PayDay > 0 {
		set[sheet.FieldPayDay] = strconv.Itoa(rec.PayDay)
	}

	fields := sheet.Fields()
	row := make([]string, len(fields))
	for i, f := range fields {
		if v, ok := set[f.Name]; ok && v != "" {
			row[i] = v
		} else {
			row[i] = f.Default
		}
	}
	return row
}
