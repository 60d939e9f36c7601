// Package api defines response types shared across HTTP handlers.
package api

// MessageResponse is the generic envelope for confirmation and error messages.
// Every non-payload response in the API uses this shape.
type MessageResponse struct {
	Message string `json:"message"`
}
