package service

import (
	"github.com/valyala/fasttemplate"

	"examapi/internal/config"
)

// pacTemplate is the PAC (proxy auto-configuration) script served to clients.
// The proxy address placeholder is filled from configuration at startup.
const pacTemplate = `function FindProxyForURL(url, host) {
    // Route all traffic through the configured proxy.
    var proxy = "PROXY {{address}}";

    return proxy;
}
`

// ProxyConfigService serves the PAC script for browser auto-configuration.
type ProxyConfigService interface {
	// PACFile returns the rendered PAC script. The script is immutable for the
	// lifetime of the process.
	PACFile() []byte
}

type proxyConfigService struct {
	pac []byte
}

// NewProxyConfigService renders the PAC script once from the configured
// proxy address.
func NewProxyConfigService(cfg config.ProxyConfig) ProxyConfigService {
	t := fasttemplate.New(pacTemplate, "{{", "}}")
	pac := t.ExecuteString(map[string]interface{}{
		"address": cfg.Address,
	})
	return &proxyConfigService{pac: []byte(pac)}
}

func (s *proxyConfigService) PACFile() []byte {
	return s.pac
}
