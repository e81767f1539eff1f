package lcu

import (
	"fmt"
	"strings"
)

// Error is returned by a client, when it cannot be created or when a request fails.
//
// A response with a 4xx or 5xx status code and a valid JSON body is not an error.
type Error struct {
	Type       ErrorType
	Title      string // Operation that failed, e.g. "GET https://127.0.0.1:2999/lol-summoner/v1/current-summoner".
	Detail     string
	StatusCode int   // HTTP status code, if a response has been received.
	Cause      error // Underlying error, if any.
}

func (e Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s", e.Type, e.Title))
	if e.StatusCode != 0 {
		sb.WriteString(fmt.Sprintf(": HTTP %d", e.StatusCode))
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	return sb.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}

type ErrorType int

const (
	ErrorConstruction ErrorType = iota + 1 // Client could not be created.
	ErrorTransport                         // Connection failed, request could not be sent or response could not be read.
	ErrorDecode                            // Response body is not valid JSON.
	ErrorEncode                            // Request body could not be encoded as JSON.
)

func MapErrorType(s string) ErrorType {
	switch s {
	case "CONSTRUCTION":
		return ErrorConstruction
	case "TRANSPORT":
		return ErrorTransport
	case "DECODE":
		return ErrorDecode
	case "ENCODE":
		return ErrorEncode
	default:
		return 0
	}
}

func (v ErrorType) String() string {
	switch v {
	case ErrorConstruction:
		return "CONSTRUCTION"
	case ErrorTransport:
		return "TRANSPORT"
	case ErrorDecode:
		return "DECODE"
	case ErrorEncode:
		return "ENCODE"
	default:
		return "UNKNOWN"
	}
}
