package dto

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"max=10000"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied reviewing interview offer hired rejected withdrawn"`
}
