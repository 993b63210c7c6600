package chatreq

// AnswerRequest carries one user answer for the current step. IsOption marks
// clicks on presented options so multi-select steps can toggle instead of
// advancing.
type AnswerRequest struct {
	Value    string `json:"value" validate:"required"`
	IsOption bool   `json:"is_option"`
}
