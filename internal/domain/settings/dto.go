package settings

import (
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	Theme                *string `json:"theme,omitempty"`
	WorkStartTime        *string `json:"work_start_time,omitempty"`
	LateThresholdMinutes *int    `json:"late_threshold_minutes,omitempty"`
	Locale               *string `json:"locale,omitempty"`
}

func (r UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Theme != nil && *r.Theme != "light" && *r.Theme != "dark" {
		errs = append(errs, validator.ValidationError{Field: "theme", Message: "theme must be light or dark"})
	}
	if r.WorkStartTime != nil && !validator.IsValidTimeOfDay(*r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{Field: "work_start_time", Message: "work_start_time must be HH:MM"})
	}
	if r.LateThresholdMinutes != nil && *r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_threshold_minutes", Message: "late_threshold_minutes must not be negative"})
	}
	if r.Locale != nil && validator.IsEmpty(*r.Locale) {
		errs = append(errs, validator.ValidationError{Field: "locale", Message: "locale must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the provided fields onto s.
func (r UpdateSettingsRequest) Apply(s Settings) Settings {
	if r.Theme != nil {
		s.Theme = *r.Theme
	}
	if r.WorkStartTime != nil {
		s.WorkStartTime = *r.WorkStartTime
	}
	if r.LateThresholdMinutes != nil {
		s.LateThresholdMinutes = *r.LateThresholdMinutes
	}
	if r.Locale != nil {
		s.Locale = *r.Locale
	}
	return s
}
