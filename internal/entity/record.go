package entity

import (
	"strings"
	"time"
)

// Dados fixos do contrato (lado B / prestador)
const (
	ProviderName  = "Atlas Ads Studio"
	BankName      = "CTBC Bank"
	BankCode      = "822"
	AccountNumber = "217540019863"
)

// FallbackSecret is hashed into password_hash when a client registers
// without choosing a password. They can replace it later via set-password.
const FallbackSecret = "onboard-desk-2024"

type Plan string

const (
	PlanMonthly   Plan = "monthly"
	PlanQuarterly Plan = "quarterly"
)

func ParsePlan(raw string) (Plan, bool) {
	switch Plan(strings.ToLower(strings.TrimSpace(raw))) {
	case PlanMonthly:
		return PlanMonthly, true
	case PlanQuarterly:
		return PlanQuarterly, true
	}
	return "", false
}

// Label is the human label stored in plan_raw and printed in the contract.
func (p Plan) Label() string {
	switch p {
	case PlanMonthly:
		return "NT$17,000 / month (billed monthly)"
	case PlanQuarterly:
		return "NT$45,000 / 3 months (single payment)"
	}
	return string(p)
}

type Stage string

const (
	StageRegistered Stage = "Registered"
	StageContract   Stage = "Stage1_Done"
	StageChecklist  Stage = "Stage2_Done"
)

// ClientRecord is one client's full sheet row, keyed by email.
type ClientRecord struct {
	Email     string `json:"email"`
	CaseID    string `json:"case_id"`
	PartyName string `json:"party_name"`
	Provider  string `json:"provider"`

	Plan      Plan   `json:"plan"`
	StartDate string `json:"start_date"`
	PayDay    int    `json:"pay_day,omitempty"`  // monthly plan only, 1-28
	PayDate   string `json:"pay_date,omitempty"` // quarterly plan only

	AdAccountReady       bool `json:"chk_ad_account"`
	PixelReady           bool `json:"chk_pixel"`
	FanpageReady         bool `json:"chk_fanpage"`
	BusinessManagerReady bool `json:"chk_bm"`
	RemoteAccessReady    bool `json:"chk_remote"`
	CreativesUploaded    bool `json:"chk_creatives"`

	FanpageURL  string `json:"fanpage_url"`
	LandingURL  string `json:"landing_url"`
	Comp1       string `json:"comp1"`
	Comp2       string `json:"comp2"`
	Comp3       string `json:"comp3"`
	WhoProblem  string `json:"who_problem"`
	WhatProblem string `json:"what_problem"`
	HowSolve    string `json:"how_solve"`
	Budget      string `json:"budget"` // free text, never parsed as currency

	LastUpdateAt string `json:"last_update_at"`
	PlanRaw      string `json:"plan_raw"`
	DisplayLabel string `json:"display_label"`
	PasswordHash string `json:"-"`
	Status       Stage  `json:"status"`
}

// NewCaseID derives the case number from the party name and the creation
// timestamp. Assigned once at registration, never regenerated.
func NewCaseID(name string, at time.Time) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == ' ', c == '_', c == '-', c > 127:
			b.WriteRune(c)
		}
	}
	safe := strings.TrimSpace(b.String())
	return safe + "_" + at.Format("20060102_1504")
}
