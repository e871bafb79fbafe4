package service

import (
	"context"

	"examapi/internal/config"
	"examapi/internal/model"
)

// CheckService evaluates the kill-switch directive for a polling client.
type CheckService interface {
	// Evaluate returns the directive for the given client identity. hwid and
	// name identify the caller for auditing; only code participates in the
	// decision.
	Evaluate(ctx context.Context, code, hwid, name string) model.ClientDirective
}

// checkService matches the client code against configured code lists.
// With no codes configured every client gets the all-clear.
type checkService struct {
	deleteCodes map[string]struct{}
	quitCodes   map[string]struct{}
}

// NewCheckService constructs a CheckService from configuration.
func NewCheckService(cfg config.CheckConfig) CheckService {
	return &checkService{
		deleteCodes: toSet(cfg.DeleteCodes),
		quitCodes:   toSet(cfg.QuitCodes),
	}
}

func (s *checkService) Evaluate(_ context.Context, code, _, _ string) model.ClientDirective {
	_, del := s.deleteCodes[code]
	_, quit := s.quitCodes[code]
	return model.ClientDirective{Delete: del, Quit: quit}
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}
