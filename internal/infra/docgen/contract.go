package docgen

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"

	"github.com/xavierca1/onboard-desk/internal/entity"
)

// ContractData is the parameter bundle the contract template is filled
// with. Pure template fill, no state.
type ContractData struct {
	Party     string
	Provider  string
	CaseID    string
	Plan      entity.Plan
	StartDate string
	PayDay    int    // monthly plan
	PayDate   string // quarterly plan
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Render produces the .docx contract as an opaque byte blob.
func (g *Generator) Render(data ContractData) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText("Advertising Management Service Agreement").Size("32")
	w.AddParagraph().AddText("Case No. " + data.CaseID)
	w.AddParagraph()

	w.AddParagraph().AddText(fmt.Sprintf("Party A (client): %s", data.Party))
	w.AddParagraph().AddText(fmt.Sprintf("Party B (provider): %s", data.Provider))
	w.AddParagraph()

	w.AddParagraph().AddText("1. Service and fees").Size("26")
	w.AddParagraph().AddText(fmt.Sprintf(
		"Party B manages Party A's advertising accounts under the %s plan.",
		data.Plan.Label()))

	w.AddParagraph().AddText("2. Payment").Size("26")
	w.AddParagraph().AddText(paymentClause(data))
	w.AddParagraph().AddText(fmt.Sprintf(
		"Remittance: %s (bank code %s), account %s.",
		entity.BankName, entity.BankCode, entity.AccountNumber))

	w.AddParagraph().AddText("3. Term").Size("26")
	w.AddParagraph().AddText(fmt.Sprintf(
		"The engagement starts on %s and continues per the selected plan until terminated in writing.",
		data.StartDate))

	w.AddParagraph()
	w.AddParagraph().AddText("Signature, Party A: ________________________")
	w.AddParagraph().AddText("Signature, Party B: ________________________")

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar contrato docx: %w", err)
	}
	return buf.Bytes(), nil
}

func paymentClause(data ContractData) string {
	if data.Plan == entity.PlanQuarterly {
		return fmt.Sprintf(
			"Party A pays the full quarterly fee in a single payment no later than %s.",
			data.PayDate)
	}
	return fmt.Sprintf(
		"Party A pays the monthly fee on day %d of every month.",
		data.PayDay)
}

// FileName names the downloadable contract for a case.
func FileName(caseID string) string {
	return "ad-contract_" + caseID + ".docx"
}
