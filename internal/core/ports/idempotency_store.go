package ports

import (
	"context"
	"time"
)

// StoredResponse is a completed response kept for replay under an idempotency key.
// Fingerprint identifies the request body the response was produced for.
type StoredResponse struct {
	Fingerprint string `json:"fingerprint"`
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// IdempotencyStore de-duplicates client retries of mutating requests.
type IdempotencyStore interface {
	// Lookup returns the stored response for key, if any.
	Lookup(ctx context.Context, key string) (StoredResponse, bool, error)

	// Reserve claims key for an in-flight request. It returns false when another
	// request holds the claim.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Save stores resp for ttl and drops the claim.
	Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error

	// Release drops the claim without storing a response.
	Release(ctx context.Context, key string) error
}
