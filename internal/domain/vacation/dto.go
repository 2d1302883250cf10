package vacation

import "github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"

type RegisterVacationRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r *RegisterVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	startDate, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	endDate, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startValid && endValid && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VacationResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	State     string `json:"state"`
}

type ListVacationResponse struct {
	Vacations []VacationResponse `json:"vacations"`
}

func (v *Vacation) ToResponse() VacationResponse {
	return VacationResponse{
		ID:        v.ID,
		StartDate: v.StartDate.Format("2006-01-02"),
		EndDate:   v.EndDate.Format("2006-01-02"),
		Reason:    v.Reason,
		State:     string(v.State),
	}
}
