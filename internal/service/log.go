package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"examapi/internal/model"
	"examapi/internal/storage"
)

var (
	ErrEmptyPayload = errors.New("no JSON data provided")
)

const uploadSuccessMessage = "JSON data uploaded successfully"

// LogService defines the use case for persisting uploaded log documents.
type LogService interface {
	// Store wraps the payload with upload metadata and writes it once to the
	// configured storage backend. The returned receipt carries the generated
	// filename.
	Store(ctx context.Context, name, exam string, payload json.RawMessage) (*model.UploadReceipt, error)
}

// logService is a concrete implementation of LogService.
type logService struct {
	store storage.Storage
	now   func() time.Time
}

// NewLogService constructs a new LogService writing to the given storage.
func NewLogService(store storage.Storage) LogService {
	return &logService{store: store, now: time.Now}
}

func (s *logService) Store(ctx context.Context, name, exam string, payload json.RawMessage) (*model.UploadReceipt, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	now := s.now()
	// Second-resolution timestamp; concurrent identical name/exam uploads within
	// the same second share a filename and the later write wins.
	stamp := now.Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.json", sanitize(name), sanitize(exam), stamp)

	entry := model.LogEntry{
		Metadata: model.LogMetadata{
			Name:       name,
			Exam:       exam,
			Timestamp:  stamp,
			UploadTime: now.Format(time.RFC3339),
		},
		Data: payload,
	}

	doc, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode log entry: %w", err)
	}

	_, err = s.store.Put(ctx, filename, bytes.NewReader(doc), storage.PutOptions{
		Size:        int64(len(doc)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"name": name,
			"exam": exam,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store log entry: %w", err)
	}

	return &model.UploadReceipt{
		Status:   "success",
		Message:  uploadSuccessMessage,
		Filename: filename,
		Name:     name,
		Exam:     exam,
	}, nil
}

// sanitize strips characters that would let a caller-supplied name or exam
// escape the storage namespace or produce an unusable filename.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '-'
		}
		return r
	}, s)
	s = strings.TrimLeft(s, ".")
	if s == "" {
		return "unknown"
	}
	return s
}
