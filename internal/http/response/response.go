package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"nexthire/internal/common"
)

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
}

type errorBody struct {
	Code    common.Code       `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorCollector counts error responses for the metrics endpoint.
type ErrorCollector interface {
	IncErrors()
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Code: common.CodeInternal, Message: "internal error"}
	var appErr *common.Error
	if errors.As(err, &appErr) {
		status = statusFor(appErr.Code)
		body = errorBody{Code: appErr.Code, Message: appErr.Message, Fields: appErr.Fields}
	}
	if status >= http.StatusInternalServerError && errorCollector != nil {
		errorCollector.IncErrors()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: body})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation, common.CodeConflict, common.CodeInvalidState, common.CodeInvalidTransition:
		return http.StatusBadRequest
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
