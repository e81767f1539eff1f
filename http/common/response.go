package common

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorRes is the body of a LCU response with a 4xx or 5xx status code.
type ErrorRes struct {
	ErrorCode             string `json:"errorCode"`                       // e.g. RPC_ERROR or RESOURCE_NOT_FOUND.
	HttpStatus            int    `json:"httpStatus"`                      // HTTP status code.
	ImplementationDetails any    `json:"implementationDetails,omitempty"` // Optional, endpoint specific details.
	Message               string `json:"message"`                         // Human-readable error message.
}

func (v ErrorRes) Error() string {
	return fmt.Sprintf("HTTP %d: %s: %s", v.HttpStatus, v.ErrorCode, v.Message)
}

// NewErrorRes creates an error response body for the given status code.
func NewErrorRes(status int, message string) ErrorRes {
	errorCode := "RPC_ERROR"
	if status == http.StatusNotFound {
		errorCode = "RESOURCE_NOT_FOUND"
	}

	return ErrorRes{
		ErrorCode:  errorCode,
		HttpStatus: status,
		Message:    message,
	}
}

// ParseErrorRes determines if a decoded JSON value is an error response body.
// An error response body is an object, consisting of at least a non-empty "errorCode" and a 4xx or 5xx "httpStatus".
func ParseErrorRes(v any) (ErrorRes, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return ErrorRes{}, false
	}

	errorCode, _ := m["errorCode"].(string)
	httpStatus, ok := parseStatus(m["httpStatus"])
	if errorCode == "" || !ok || httpStatus < 400 || httpStatus > 599 {
		return ErrorRes{}, false
	}

	message, _ := m["message"].(string)

	return ErrorRes{
		ErrorCode:             errorCode,
		HttpStatus:            httpStatus,
		ImplementationDetails: m["implementationDetails"],
		Message:               message,
	}, true
}

// parseStatus accepts a status as decoded by a client (json.Number) or by a plain json.Unmarshal (float64).
func parseStatus(v any) (int, bool) {
	switch status := v.(type) {
	case json.Number:
		i, err := status.Int64()
		return int(i), err == nil
	case float64:
		return int(status), status == float64(int(status))
	default:
		return 0, false
	}
}
