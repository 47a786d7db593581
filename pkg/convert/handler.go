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

package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/numeralia/romanos/pkg/defaults"
	rnerrors "github.com/numeralia/romanos/pkg/errors"
	"github.com/numeralia/romanos/pkg/numeral"
	"github.com/numeralia/romanos/pkg/serializer"
	"github.com/numeralia/romanos/pkg/server"
)

const (
	// ParamArabic is the query parameter read by the arabic-to-roman route.
	ParamArabic = "arabic"
	// ParamRoman is the query parameter read by the roman-to-arabic route.
	ParamRoman = "roman"

	directionToRoman  = "a2r"
	directionToArabic = "r2a"
)

// ArabicToRomanResponse is the body of a successful GET /a2r.
type ArabicToRomanResponse struct {
	Roman  string `json:"roman" yaml:"roman"`
	Arabic int    `json:"arabic" yaml:"arabic"`
}

// RomanToArabicResponse is the body of a successful GET /r2a.
// Roman echoes the numeral in canonical uppercase.
type RomanToArabicResponse struct {
	Arabic int    `json:"arabic" yaml:"arabic"`
	Roman  string `json:"roman" yaml:"roman"`
}

// Option configures a Handler.
type Option func(*Handler)

// WithCacheTTL sets the Cache-Control max-age of successful responses.
// Zero disables the header.
func WithCacheTTL(ttl time.Duration) Option {
	return func(h *Handler) {
		h.cacheTTL = ttl
	}
}

// Handler serves the conversion routes.
type Handler struct {
	cacheTTL time.Duration
}

// NewHandler returns a Handler with defaults.ConversionCacheTTL unless overridden.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		cacheTTL: defaults.ConversionCacheTTL,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the conversion routes keyed by path, including the /v1 aliases.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/a2r":    h.HandleArabicToRoman,
		"/r2a":    h.HandleRomanToArabic,
		"/v1/a2r": h.HandleArabicToRoman,
		"/v1/r2a": h.HandleRomanToArabic,
	}
}

// HandleArabicToRoman serves GET /a2r?arabic=<n>.
func (h *Handler) HandleArabicToRoman(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.readParam(w, r, ParamArabic, directionToRoman)
	if !ok {
		return
	}

	n, err := numeral.ParseArabic(raw)
	if err != nil {
		h.fail(w, r, directionToRoman, ParamArabic, raw, err)
		return
	}

	roman, err := numeral.ToRoman(n)
	if err != nil {
		h.fail(w, r, directionToRoman, ParamArabic, raw, err)
		return
	}

	conversionsTotal.WithLabelValues(directionToRoman, outcomeSuccess).Inc()
	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, ArabicToRomanResponse{
		Roman:  roman,
		Arabic: n,
	})
}

// HandleRomanToArabic serves GET /r2a?roman=<numeral>.
func (h *Handler) HandleRomanToArabic(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.readParam(w, r, ParamRoman, directionToArabic)
	if !ok {
		return
	}

	n, err := numeral.ToArabic(raw)
	if err != nil {
		h.fail(w, r, directionToArabic, ParamRoman, raw, err)
		return
	}

	conversionsTotal.WithLabelValues(directionToArabic, outcomeSuccess).Inc()
	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, RomanToArabicResponse{
		Arabic: n,
		Roman:  numeral.Normalize(raw),
	})
}

// readParam enforces GET and returns the named query parameter.
// An empty value counts as missing.
func (h *Handler) readParam(w http.ResponseWriter, r *http.Request, param, direction string) (string, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, rnerrors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return "", false
	}

	raw := r.URL.Query().Get(param)
	if raw == "" {
		conversionsTotal.WithLabelValues(direction, outcomeMissing).Inc()
		msg := fmt.Sprintf("missing required parameter '%s'", param)
		server.WriteError(w, r, http.StatusBadRequest, rnerrors.ErrCodeMissingParameter,
			msg, false, map[string]any{"parameter": param})
		return "", false
	}

	return raw, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, direction, param, raw string, err error) {
	conversionsTotal.WithLabelValues(direction, outcomeInvalid).Inc()

	classified := classify(param, err)
	slog.Debug("conversion failed",
		"requestID", server.RequestIDFromContext(r.Context()),
		"apiVersion", server.APIVersionFromContext(r.Context()),
		"direction", direction,
		"code", rnerrors.CodeOf(classified),
		"value", raw,
		"error", err,
	)

	server.WriteErrorFromErr(w, r, classified, "conversion failed",
		map[string]any{"value": raw})
}

// classify maps numeral failures onto structured error codes.
func classify(param string, err error) error {
	ctx := map[string]any{"parameter": param}
	msg := fmt.Sprintf("invalid %s parameter", param)

	switch {
	case errors.Is(err, numeral.ErrOutOfRange):
		return rnerrors.WrapWithContext(rnerrors.ErrCodeOutOfRange, msg, err, ctx)
	case errors.Is(err, numeral.ErrNotCanonical):
		return rnerrors.WrapWithContext(rnerrors.ErrCodeInvalidNumeral, msg, err, ctx)
	default:
		return rnerrors.WrapWithContext(rnerrors.ErrCodeInternal, "unexpected conversion failure", err, ctx)
	}
}

func (h *Handler) setCacheHeaders(w http.ResponseWriter) {
	if h.cacheTTL <= 0 {
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheTTL.Seconds())))
}
