package domain

import "encoding/json"

// Envelope is the uniform wrapper every backend response uses. A response with
// success=false is a logical failure even when the HTTP status is 2xx; every
// caller goes through the gateway, which enforces that rule once.
type Envelope struct {
	Success      bool            `json:"success"`
	MessageCodes []string        `json:"messageCodes"`
	Body         json.RawMessage `json:"body"`
}

// Page mirrors the backend's Spring-style page wrapper for paged listings.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}
