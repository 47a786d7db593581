// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	rnerrors "github.com/numeralia/romanos/pkg/errors"
	"github.com/numeralia/romanos/pkg/serializer"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Error     string         `json:"error"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
// The error field repeats the message unless details carry a cause under "error".
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code rnerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errText := message
	if cause, ok := details["error"].(string); ok && cause != "" {
		errText = cause
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Error:     errText,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err.
// A StructuredError anywhere in the chain supplies the status, code, message
// and context; any other error is reported as an internal error with
// fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *rnerrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := extraDetails
	if err != nil {
		details = mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, rnerrors.ErrCodeInternal, fallbackMessage,
		retryableFromCode(rnerrors.ErrCodeInternal), details)
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code rnerrors.ErrorCode) int {
	switch code {
	case rnerrors.ErrCodeInvalidRequest, rnerrors.ErrCodeMissingParameter,
		rnerrors.ErrCodeOutOfRange, rnerrors.ErrCodeInvalidNumeral:
		return http.StatusBadRequest
	case rnerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case rnerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case rnerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case rnerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case rnerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code rnerrors.ErrorCode) bool {
	switch code {
	case rnerrors.ErrCodeTimeout, rnerrors.ErrCodeUnavailable,
		rnerrors.ErrCodeRateLimitExceeded, rnerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns the union of a and b with b taking precedence,
// or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
