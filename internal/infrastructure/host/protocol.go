package host

import "github.com/doeshing/ha-assist/internal/domain"

// Request types understood by Server.
const (
	TypeMatch   = "match"
	TypeConfirm = "confirm"
	TypeInfo    = "info"
)

// Error codes carried in Response.Error.
const (
	CodeInvalidRequest = "invalid_request"
	CodeUnknownType    = "unknown_type"
)

// Request is one line of host input.
type Request struct {
	Type  string `json:"type"`
	Input string `json:"input,omitempty"`
	Title string `json:"title,omitempty"`
}

// Error is a protocol-level failure. Engine failures never surface here; they
// are logged and reflected in the candidates instead.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is one line of host output. Exactly one group of fields is set
// depending on the request type.
type Response struct {
	Matches *[]domain.Candidate `json:"matches,omitempty"`
	Refresh *bool               `json:"refresh,omitempty"`
	Name    string              `json:"name,omitempty"`
	Icon    string              `json:"icon,omitempty"`
	Error   *Error              `json:"error,omitempty"`
}
