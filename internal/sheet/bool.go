package sheet

import "strings"

// Boolean cells hold these literal tokens. Legacy rows written by the old
// spreadsheet scripts used "1"/"0"; reads accept both, writes always emit
// TRUE/FALSE.
const (
	TokenTrue  = "TRUE"
	TokenFalse = "FALSE"
)

func FormatBool(v bool) string {
	if v {
		return TokenTrue
	}
	return TokenFalse
}

// ParseBool decodes a stored boolean cell. Anything that is not a known
// truthy token counts as false.
func ParseBool(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.EqualFold(raw, TokenTrue) || raw == "1"
}
