package service

import (
	"context"
	"testing"

	"examapi/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestCheckService_Evaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("no codes configured", func(t *testing.T) {
		svc := NewCheckService(config.CheckConfig{})

		d := svc.Evaluate(ctx, "any-code", "hwid-1", "alice")
		assert.False(t, d.Delete)
		assert.False(t, d.Quit)
	})

	t.Run("delete code match", func(t *testing.T) {
		svc := NewCheckService(config.CheckConfig{DeleteCodes: []string{"revoked"}})

		d := svc.Evaluate(ctx, "revoked", "", "")
		assert.True(t, d.Delete)
		assert.False(t, d.Quit)

		d = svc.Evaluate(ctx, "other", "", "")
		assert.False(t, d.Delete)
	})

	t.Run("code on both lists", func(t *testing.T) {
		svc := NewCheckService(config.CheckConfig{
			DeleteCodes: []string{"gone"},
			QuitCodes:   []string{"gone", "stop"},
		})

		d := svc.Evaluate(ctx, "gone", "", "")
		assert.True(t, d.Delete)
		assert.True(t, d.Quit)

		d = svc.Evaluate(ctx, "stop", "", "")
		assert.False(t, d.Delete)
		assert.True(t, d.Quit)
	})
}
