package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"examapi/internal/model"
	"examapi/internal/storage"
	storeMocks "examapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestLogService_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := &logService{store: mStore, now: fixedClock}

		var written []byte
		mStore.On("Put", ctx, "foo_bar_20240315_093045.json", mock.Anything, mock.MatchedBy(func(opt storage.PutOptions) bool {
			return opt.ContentType == "application/json" && opt.Metadata["name"] == "foo"
		})).Run(func(args mock.Arguments) {
			written, _ = io.ReadAll(args.Get(2).(io.Reader))
		}).Return(storage.ObjectInfo{Key: "foo_bar_20240315_093045.json"}, nil)

		receipt, err := svc.Store(ctx, "foo", "bar", json.RawMessage(`{"score": 42}`))
		require.NoError(t, err)

		assert.Equal(t, "success", receipt.Status)
		assert.Equal(t, "JSON data uploaded successfully", receipt.Message)
		assert.Equal(t, "foo_bar_20240315_093045.json", receipt.Filename)
		assert.Equal(t, "foo", receipt.Name)
		assert.Equal(t, "bar", receipt.Exam)

		var entry model.LogEntry
		require.NoError(t, json.Unmarshal(written, &entry))
		assert.Equal(t, "foo", entry.Metadata.Name)
		assert.Equal(t, "bar", entry.Metadata.Exam)
		assert.Equal(t, "20240315_093045", entry.Metadata.Timestamp)
		assert.Equal(t, fixedNow.Format(time.RFC3339), entry.Metadata.UploadTime)
		assert.JSONEq(t, `{"score": 42}`, string(entry.Data))

		mStore.AssertExpectations(t)
	})

	t.Run("empty payload", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewLogService(mStore)

		_, err := svc.Store(ctx, "foo", "bar", nil)
		assert.ErrorIs(t, err, ErrEmptyPayload)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := &logService{store: mStore, now: fixedClock}

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("disk full"))

		_, err := svc.Store(ctx, "foo", "bar", json.RawMessage(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store log entry: disk full")
	})

	t.Run("filename is sanitized but metadata keeps raw values", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := &logService{store: mStore, now: fixedClock}

		var written []byte
		mStore.On("Put", ctx, "-evil_a-b_20240315_093045.json", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				written, _ = io.ReadAll(args.Get(2).(io.Reader))
			}).
			Return(storage.ObjectInfo{}, nil)

		_, err := svc.Store(ctx, "../evil", "a/b", json.RawMessage(`{}`))
		require.NoError(t, err)

		var entry model.LogEntry
		require.NoError(t, json.Unmarshal(written, &entry))
		assert.Equal(t, "../evil", entry.Metadata.Name)
		assert.Equal(t, "a/b", entry.Metadata.Exam)
	})
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "foo", sanitize("foo"))
	assert.Equal(t, "a-b", sanitize("a/b"))
	assert.Equal(t, "a-b", sanitize(`a\b`))
	assert.Equal(t, "unknown", sanitize(""))
	assert.Equal(t, "unknown", sanitize("..."))
	assert.Equal(t, "hidden", sanitize(".hidden"))
}
