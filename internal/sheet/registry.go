package sheet

import (
	"errors"
	"fmt"
)

// Field names exactly as they appear in the sheet header row.
const (
	FieldEmail        = "Email"
	FieldCaseID       = "case_id"
	FieldParty        = "party_a"
	FieldProvider     = "provider"
	FieldPlan         = "plan"
	FieldStartDate    = "start_date"
	FieldPayDay       = "pay_day"
	FieldPayDate      = "pay_date"
	FieldChkAdAccount = "chk_ad_account"
	FieldChkPixel     = "chk_pixel"
	FieldChkFanpage   = "chk_fanpage"
	FieldChkBM        = "chk_bm"
	FieldChkRemote    = "chk_remote"
	FieldChkCreatives = "chk_creatives"
	FieldFanpageURL   = "fanpage_url"
	FieldLandingURL   = "landing_url"
	FieldComp1        = "comp1"
	FieldComp2        = "comp2"
	FieldComp3        = "comp3"
	FieldWhoProblem   = "who_problem"
	FieldWhatProblem  = "what_problem"
	FieldHowSolve     = "how_solve"
	FieldBudget       = "budget"
	FieldLastUpdateAt = "last_update_at"
	FieldPlanRaw      = "plan_raw"
	FieldDisplayLabel = "display_label"
	FieldPasswordHash = "password_hash"
	FieldStatus       = "status"
)

// TimeLayout is the wire format of last_update_at.
const TimeLayout = "2006-01-02 15:04:05"

var ErrUnknownField = errors.New("sheet: unknown field")

type FieldSpec struct {
	Name    string
	Default string
}

// registry is the single source of truth for field -> column position.
// Every reader and writer goes through ColumnOf; nobody hard-codes indices.
var registry = []FieldSpec{
	{FieldEmail, ""},
	{FieldCaseID, ""},
	{FieldParty, ""},
	{FieldProvider, ""},
	{FieldPlan, ""},
	{FieldStartDate, ""},
	{FieldPayDay, ""},
	{FieldPayDate, ""},
	{FieldChkAdAccount, TokenFalse},
	{FieldChkPixel, TokenFalse},
	{FieldChkFanpage, TokenFalse},
	{FieldChkBM, TokenFalse},
	{FieldChkRemote, TokenFalse},
	{FieldChkCreatives, TokenFalse},
	{FieldFanpageURL, ""},
	{FieldLandingURL, ""},
	{FieldComp1, ""},
	{FieldComp2, ""},
	{FieldComp3, ""},
	{FieldWhoProblem, ""},
	{FieldWhatProblem, ""},
	{FieldHowSolve, ""},
	{FieldBudget, ""},
	{FieldLastUpdateAt, ""},
	{FieldPlanRaw, ""},
	{FieldDisplayLabel, ""},
	{FieldPasswordHash, ""},
	{FieldStatus, ""},
}

var columnIndex = make(map[string]int, len(registry))

func init() {
	for i, f := range registry {
		columnIndex[f.Name] = i
	}
}

// ColumnOf returns the fixed zero-based column of a registered field.
func ColumnOf(name string) (int, error) {
	i, ok := columnIndex[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return i, nil
}

// IsRegistered reports whether the field name is part of the schema.
func IsRegistered(name string) bool {
	_, ok := columnIndex[name]
	return ok
}

// Fields returns a copy of the registry in column order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(registry))
	copy(out, registry)
	return out
}

// Header returns the field names in column order.
func Header() []string {
	out := make([]string, len(registry))
	for i, f := range registry {
		out[i] = f.Name
	}
	return out
}

func NumFields() int {
	return len(registry)
}
