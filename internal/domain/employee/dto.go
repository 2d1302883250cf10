package employee

// ProfileResponse is the HR profile shown on the app's my-info screen.
type ProfileResponse struct {
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Nickname     *string `json:"nickname,omitempty"`
	Position     *string `json:"position,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
}

func (e *Employee) ToProfileResponse() ProfileResponse {
	resp := ProfileResponse{
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Nickname:     e.Nickname,
		Position:     e.Position,
	}
	if e.HireDate != nil {
		hired := e.HireDate.Format("2006-01-02")
		resp.HireDate = &hired
	}
	return resp
}
