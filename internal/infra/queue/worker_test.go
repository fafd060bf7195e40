package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeNotificationStage1(t *testing.T) {
	subject, body := ComposeNotification(NotifyPayload{
		Event:      "stage1_done",
		CaseID:     "Case C_20250101_0930",
		Party:      "Case C",
		Email:      "c@gmail.com",
		Stage:      "Stage1_Done",
		Plan:       "monthly",
		OccurredAt: "2025-01-01 09:30:00",
	})

	assert.Equal(t, "[onboard] Contract stage submitted - Case C", subject)
	assert.Contains(t, body, "Case:    Case C_20250101_0930")
	assert.Contains(t, body, "Plan:    monthly")
	assert.Contains(t, body, "At:      2025-01-01 09:30:00")
}

func TestComposeNotificationNoPlanLine(t *testing.T) {
	subject, body := ComposeNotification(NotifyPayload{
		Event:  "registered",
		CaseID: "Case C_20250101_0930",
		Party:  "Case C",
		Email:  "c@gmail.com",
		Stage:  "Registered",
	})

	assert.Equal(t, "[onboard] New client registered - Case C", subject)
	assert.NotContains(t, body, "Plan:")
}

func TestComposeNotificationUnknownEventKeptVerbatim(t *testing.T) {
	subject, _ := ComposeNotification(NotifyPayload{Event: "resync", Party: "Case C"})
	assert.Equal(t, "[onboard] resync - Case C", subject)
}
