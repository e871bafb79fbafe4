package model

// QuestionRequest is the body of the question-answering endpoint.
// Only Question is mandatory; the remaining fields are reporting metadata
// forwarded by the client.
type QuestionRequest struct {
	Question string `json:"question" validate:"required"`
	IsFRQ    bool   `json:"is_frq"`
	Service  string `json:"service"`
	Exam     string `json:"exam"`
	Code     string `json:"code"`
}

// Answer is the question-answering response. Exactly one pair of fields is
// populated: InitialAttempt/FinalAnswer for free-response questions,
// Rationale/SelectedChoice for multiple-choice ones. The omitempty tags keep
// the unused pair off the wire.
type Answer struct {
	InitialAttempt string `json:"initialAttempt,omitempty"`
	FinalAnswer    string `json:"finalAnswer,omitempty"`
	Rationale      string `json:"rationale,omitempty"`
	SelectedChoice string `json:"selectedChoice,omitempty"`
}
