package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/xavierca1/onboard-desk/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationFailure(errs []ValidationError) error {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{Code: "VALIDATION_ERROR", Message: strings.TrimSuffix(msg, ", ")}
}

func ValidateRegisterInput(input RegisterInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Password != "" && len(input.Password) < 8 {
		errors = append(errors, ValidationError{"password", "must have at least 8 characters"})
	}

	return errors
}

func ValidateStage1Input(input Stage1Input, now time.Time) []ValidationError {
	var errors []ValidationError

	plan, ok := entity.ParsePlan(input.Plan)
	if !ok {
		errors = append(errors, ValidationError{"plan", "must be monthly or quarterly"})
	}

	var start time.Time
	if strings.TrimSpace(input.StartDate) == "" {
		errors = append(errors, ValidationError{"start_date", "is required"})
	} else {
		var err error
		start, err = time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			errors = append(errors, ValidationError{"start_date", "must be a valid date (YYYY-MM-DD)"})
		} else if today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC); start.Before(today) {
			errors = append(errors, ValidationError{"start_date", "must not be in the past"})
		}
	}

	switch plan {
	case entity.PlanMonthly:
		if input.PayDay < 1 || input.PayDay > 28 {
			errors = append(errors, ValidationError{"pay_day", "must be between 1 and 28"})
		}
		if input.PayDate != "" {
			errors = append(errors, ValidationError{"pay_date", "must be empty for the monthly plan"})
		}
	case entity.PlanQuarterly:
		if input.PayDay != 0 {
			errors = append(errors, ValidationError{"pay_day", "must be empty for the quarterly plan"})
		}
		if strings.TrimSpace(input.PayDate) == "" {
			errors = append(errors, ValidationError{"pay_date", "is required for the quarterly plan"})
		} else if pay, err := time.Parse("2006-01-02", input.PayDate); err != nil {
			errors = append(errors, ValidationError{"pay_date", "must be a valid date (YYYY-MM-DD)"})
		} else if !start.IsZero() && pay.After(start) {
			errors = append(errors, ValidationError{"pay_date", "must not be after start_date"})
		}
	}

	return errors
}

func ValidateSetPasswordInput(password string) []ValidationError {
	var errors []ValidationError
	if len(password) < 8 {
		errors = append(errors, ValidationError{"password", "must have at least 8 characters"})
	}
	return errors
}
