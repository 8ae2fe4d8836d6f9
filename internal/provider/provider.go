// Package provider defines the assisted-generation boundary. The core
// consumes the Provider interface without depending on any particular
// backend; the shipped implementation performs no work, so the assisted
// stage contributes nothing until a real backend exists.
package provider

import (
	"context"
	"log/slog"

	"github.com/kcorpus/kcorpus/internal/record"
)

// Provider produces training records from an external generation
// capability.
type Provider interface {
	// Name identifies the backend in logs and summaries.
	Name() string

	// Generate produces up to count records. Implementations may return
	// fewer, including none.
	Generate(ctx context.Context, count int) ([]record.Record, error)
}

// Noop is the stub backend: it generates nothing and logs why.
type Noop struct{}

// Name implements Provider.
func (Noop) Name() string { return "noop" }

// Generate implements Provider. It returns no records; assisted
// generation requires a configured backend.
func (Noop) Generate(ctx context.Context, count int) ([]record.Record, error) {
	slog.Info("assisted generation has no configured backend, producing no records", "requested", count)
	return nil, nil
}
