package setting

import "github.com/attendo-hq/attendance-backend-go/internal/pkg/validator"

// UpdateSettingsRequest is a bulk upsert of key/value pairs.
type UpdateSettingsRequest map[string]string

func (r UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "settings",
			Message: "at least one setting is required",
		})
	}

	for key, value := range r {
		if validator.IsEmpty(key) {
			errs = append(errs, validator.ValidationError{
				Field:   "key",
				Message: "setting key must not be empty",
			})
			continue
		}
		// Policy thresholds must stay parseable as times of day.
		if key == KeyOfficialCheckIn || key == KeyOfficialCheckOut {
			if !validator.IsValidTimeOfDay(value) {
				errs = append(errs, validator.ValidationError{
					Field:   key,
					Message: "value must be a valid HH:MM:SS time",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
