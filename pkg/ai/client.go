// Package ai wraps the third-party text-generation providers behind a single
// interface. The service treats the provider as an opaque request/response
// boundary: one prompt in, free text out, no retries.
package ai

import "context"

type Client interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}
