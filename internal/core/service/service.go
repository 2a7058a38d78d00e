// Package service contains the typed domain service modules, one per backend
// resource. Each module translates between its typed request/response shapes
// and the already-unwrapped envelope bodies the gateway returns.
//
// Modules never swallow failures: they log for diagnostics and propagate, so
// every error stays visible to the page that triggered the call.
package service

import (
	"encoding/json"
	"fmt"
)

// decode unmarshals an unwrapped envelope body into the target type.
func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode response body: %w", err)
	}
	return v, nil
}
