package ports

import (
	"context"
	"encoding/json"
	"net/url"
)

// Gateway is the single chokepoint for all outbound backend calls. It attaches
// the bearer token, unwraps the response envelope once at this boundary, and
// enforces the forced-logout policy on 401/403. Callers receive the already
// unwrapped envelope body, or an error.
//
// Requests are single-attempt: no retries and no backoff.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) error
}
