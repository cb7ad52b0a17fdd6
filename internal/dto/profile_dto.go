package dto

type VeteranProfileRequest struct {
	Headline           string   `json:"headline" validate:"max=200"`
	Summary            string   `json:"summary" validate:"max=5000"`
	MOS                string   `json:"mos_code" validate:"max=20"`
	Clearance          string   `json:"security_clearance" validate:"max=50"`
	Skills             []string `json:"skills" validate:"max=100,dive,max=100"`
	City               string   `json:"city" validate:"max=100"`
	State              string   `json:"state" validate:"max=100"`
	Branch             string   `json:"branch" validate:"max=50"`
	Rank               string   `json:"rank" validate:"max=100"`
	YearsOfService     int      `json:"years_of_service" validate:"gte=0,lt=60"`
	LeadershipRole     string   `json:"leadership_role" validate:"max=100"`
	Awards             string   `json:"awards" validate:"max=2000"`
	ServiceDescription string   `json:"service_description" validate:"max=5000"`
}

type EmployerProfileRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Website     string `json:"website" validate:"omitempty,url,max=255"`
	Industry    string `json:"industry" validate:"max=100"`
	City        string `json:"city" validate:"max=100"`
	State       string `json:"state" validate:"max=100"`
	About       string `json:"about" validate:"max=5000"`
}
