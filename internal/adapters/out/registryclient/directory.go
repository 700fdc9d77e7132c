// Package registryclient resolves container registry addresses to handoff clients.
// A registry hosted by this process is reached in-process; any other registry is
// reached over HTTP through its enqueue endpoint.
package registryclient

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"go.uber.org/zap"
)

var _ ports.RegistryDirectory = &Directory{}

// Directory is a static address book of container registries.
type Directory struct {
	mu      sync.RWMutex
	clients map[string]ports.ContainerRegistryClient
}

func NewDirectory() *Directory {
	return &Directory{clients: make(map[string]ports.ContainerRegistryClient)}
}

// ParseDirectory builds HTTP clients from a comma separated list of address=baseURL pairs,
// e.g. "0xAb84...cb2=http://containers:8080,0x4B20...2db=http://other:8080".
func ParseDirectory(raw string, timeout time.Duration, logger *zap.Logger) (*Directory, error) {
	d := NewDirectory()

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		address, baseURL, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"registry directory", fmt.Errorf("entry %q is not address=url", entry))
		}

		addr, err := kernel.NewAddress(strings.TrimSpace(address))
		if err != nil {
			return nil, err
		}

		client, err := NewHTTPClient(addr, strings.TrimSpace(baseURL), timeout, logger)
		if err != nil {
			return nil, err
		}
		d.Register(addr, client)
	}

	return d, nil
}

// Register binds address to client, replacing an earlier binding.
func (d *Directory) Register(address kernel.Address, client ports.ContainerRegistryClient) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients[address.Hex()] = client
}

// Resolve returns the client for a known container registry.
func (d *Directory) Resolve(address kernel.Address) (ports.ContainerRegistryClient, error) {
	if address.IsZero() {
		return nil, errs.NewValueIsRequiredError("target registry")
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	client, ok := d.clients[address.Hex()]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"target registry", fmt.Errorf("%s is not a known container registry", address))
	}
	return client, nil
}
