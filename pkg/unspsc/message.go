package unspsc

import (
	"errors"
	"fmt"
	"strings"
)

// MessageType identifies whether a message seeks help or offers it.
// Invariant: the value must be MessageTypeRequest or MessageTypeResponse.
//
// Usage: construct via ParseMessageType at trust boundaries; direct casting
// bypasses validation, though ValidateForMessageType still rejects unknown
// values.
type MessageType string

const (
	// MessageTypeRequest seeks goods, services, or navigation help. Any
	// registry code may be referenced, restricted or not.
	MessageTypeRequest MessageType = "REQUEST"
	// MessageTypeResponse offers goods or services. Restricted codes are
	// never allowed.
	MessageTypeResponse MessageType = "RESPONSE"
)

// ErrUnknownMessageType is returned by ParseMessageType for unsupported input.
var ErrUnknownMessageType = errors.New("unknown message type")

// ParseMessageType accepts "REQUEST" or "RESPONSE" in any case, ignoring
// surrounding whitespace.
func ParseMessageType(s string) (MessageType, error) {
	mt := MessageType(strings.ToUpper(strings.TrimSpace(s)))
	if !mt.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMessageType, s)
	}
	return mt, nil
}

// IsValid reports whether mt is one of the two supported values.
func (mt MessageType) IsValid() bool {
	return mt == MessageTypeRequest || mt == MessageTypeResponse
}

func (mt MessageType) String() string {
	return string(mt)
}

// Verdict is the outcome of checking a code against a message type.
type Verdict int

const (
	VerdictAllowed Verdict = iota
	VerdictUnknownCode
	VerdictRestricted
	VerdictUnknownMessageType
)

func (v Verdict) String() string {
	switch v {
	case VerdictAllowed:
		return "allowed"
	case VerdictUnknownCode:
		return "unknown code"
	case VerdictRestricted:
		return "restricted: professional services cannot be offered"
	case VerdictUnknownMessageType:
		return "unknown message type"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Explain reports why code is or is not usable in a message of type mt.
// An unknown code takes precedence over an unknown message type.
func Explain(code string, mt MessageType) Verdict {
	if !Contains(code) {
		return VerdictUnknownCode
	}
	switch mt {
	case MessageTypeRequest:
		return VerdictAllowed
	case MessageTypeResponse:
		if IsRestricted(code) {
			return VerdictRestricted
		}
		return VerdictAllowed
	}
	return VerdictUnknownMessageType
}

// ValidateForMessageType reports whether code may be referenced by a message
// of type mt. Requests may use any registry code; responses may not use
// restricted codes. Unknown codes are always rejected.
func ValidateForMessageType(code string, mt MessageType) bool {
	return Explain(code, mt) == VerdictAllowed
}
