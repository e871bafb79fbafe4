package mocks

import (
	"context"
	"encoding/json"

	"examapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLogService struct {
	mock.Mock
}

func (m *MockLogService) Store(ctx context.Context, name, exam string, payload json.RawMessage) (*model.UploadReceipt, error) {
	args := m.Called(ctx, name, exam, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadReceipt), args.Error(1)
}

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) Answer(ctx context.Context, req model.QuestionRequest) (*model.Answer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

type MockCheckService struct {
	mock.Mock
}

func (m *MockCheckService) Evaluate(ctx context.Context, code, hwid, name string) model.ClientDirective {
	args := m.Called(ctx, code, hwid, name)
	return args.Get(0).(model.ClientDirective)
}

type MockProxyConfigService struct {
	mock.Mock
}

func (m *MockProxyConfigService) PACFile() []byte {
	args := m.Called()
	return args.Get(0).([]byte)
}
