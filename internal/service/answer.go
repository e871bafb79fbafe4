package service

import (
	"context"
	"errors"

	"examapi/internal/model"
)

var ErrQuestionRequired = errors.New("question is required")

// Mock answers returned until a real AI backend is integrated.
const (
	mockInitialAttempt = "This is a sample reasoning for the FRQ question."
	mockFinalAnswer    = "This is the final answer to the free response question."
	mockRationale      = "This is the reasoning behind the answer selection."
	mockSelectedChoice = "A"
)

// AnswerService produces answers for exam questions. The current
// implementation is a stand-in that returns canned responses shaped like the
// eventual AI integration: a reasoning/answer pair for free-response
// questions, a rationale/choice pair for multiple-choice ones.
type AnswerService interface {
	Answer(ctx context.Context, req model.QuestionRequest) (*model.Answer, error)
}

type mockAnswerService struct{}

// NewMockAnswerService constructs the canned-response AnswerService.
func NewMockAnswerService() AnswerService {
	return &mockAnswerService{}
}

func (s *mockAnswerService) Answer(_ context.Context, req model.QuestionRequest) (*model.Answer, error) {
	if req.Question == "" {
		return nil, ErrQuestionRequired
	}

	if req.IsFRQ {
		return &model.Answer{
			InitialAttempt: mockInitialAttempt,
			FinalAnswer:    mockFinalAnswer,
		}, nil
	}
	return &model.Answer{
		Rationale:      mockRationale,
		SelectedChoice: mockSelectedChoice,
	}, nil
}
