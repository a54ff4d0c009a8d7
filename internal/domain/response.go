package domain

import "fmt"

// ResponseKind classifies a conversation reply. The set is closed.
type ResponseKind int

const (
	ResponseActionDone ResponseKind = iota + 1
	ResponseQueryAnswer
	ResponseError
)

// ParseResponseKind maps the wire value of response_type to a ResponseKind.
func ParseResponseKind(value string) (ResponseKind, error) {
	switch value {
	case "action_done":
		return ResponseActionDone, nil
	case "query_answer":
		return ResponseQueryAnswer, nil
	case "error":
		return ResponseError, nil
	default:
		return 0, fmt.Errorf("unknown response_type %q", value)
	}
}

// String returns the wire value.
func (k ResponseKind) String() string {
	switch k {
	case ResponseActionDone:
		return "action_done"
	case ResponseQueryAnswer:
		return "query_answer"
	case ResponseError:
		return "error"
	default:
		return fmt.Sprintf("ResponseKind(%d)", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so unknown kinds fail decoding.
func (k *ResponseKind) UnmarshalText(text []byte) error {
	kind, err := ParseResponseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k ResponseKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid response kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// Valid reports whether k is one of the three known kinds.
func (k ResponseKind) Valid() bool {
	switch k {
	case ResponseActionDone, ResponseQueryAnswer, ResponseError:
		return true
	default:
		return false
	}
}

// Successful reports whether a reply of this kind should be kept in history.
func (k ResponseKind) Successful() bool {
	switch k {
	case ResponseActionDone, ResponseQueryAnswer:
		return true
	case ResponseError:
		return false
	default:
		return false
	}
}

// Icon returns the status icon shown next to a candidate decorated with this kind.
func (k ResponseKind) Icon() string {
	switch k {
	case ResponseActionDone, ResponseQueryAnswer:
		return IconSuccess
	case ResponseError:
		return IconError
	default:
		return ""
	}
}

// Response is a classified conversation reply, cached per query text.
type Response struct {
	Kind   ResponseKind `json:"kind"`
	Speech string       `json:"speech"`
}
