// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-server/internal/app"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/utils"
)

// withJSONBody caps every request body at maxBodyBytes and checks that a
// body declared as JSON is a JSON object or array. Bad JSON is answered with
// 400 {"message":"Invalid JSON"}, an oversized body with 413. The body is
// handed on unchanged.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		if h.maxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		}

		if !isJSONContentType(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				log.Debug().Int64("limit", maxBytesErr.Limit).Msg("request body too large")
				utils.WriteMessage(w, app.MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			log.Err(err).Msg("error reading request body")
			utils.WriteMessage(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		trimmed := bytes.TrimSpace(body)
		if len(trimmed) > 0 && (!json.Valid(trimmed) || (trimmed[0] != '{' && trimmed[0] != '[')) {
			log.Debug().Msg("malformed JSON body")
			utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
