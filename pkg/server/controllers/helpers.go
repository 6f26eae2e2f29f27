/* Copyright 2025 PD Enterprise Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/schema"
	"github.com/pd-enterprise/backend-service/pkg/server/app"
	"github.com/pd-enterprise/backend-service/pkg/server/log"
	"github.com/pd-enterprise/backend-service/pkg/server/permissions"
	"github.com/pkg/errors"
)

// Payload is the envelope for all JSON responses. All four keys are always
// present on the wire: data is null on failure and error is null on success.
type Payload struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   *string     `json:"error"`
}

// respondJSON writes the given payload into the writer as a JSON response
func respondJSON(w http.ResponseWriter, p Payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(p.Status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.ErrorWrap(err, "encoding response")
	}
}

// respondData writes a success response carrying the given data
func respondData(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	respondJSON(w, Payload{
		Status:  statusCode,
		Message: message,
		Data:    data,
	})
}

// respondError writes an error response with the given status code and
// client-facing error string
func respondError(w http.ResponseWriter, statusCode int, message, errMessage string) {
	respondJSON(w, Payload{
		Status:  statusCode,
		Message: message,
		Error:   &errMessage,
	})
}

var formDecoder = schema.NewDecoder()

func init() {
	formDecoder.IgnoreUnknownKeys(true)
}

// parseRequestData decodes the request payload into the destination. It
// accepts a JSON body or an HTML form, depending on the content type.
func parseRequestData(r *http.Request, dst interface{}) error {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return errors.Wrap(err, "parsing form")
		}
		if err := formDecoder.Decode(dst, r.PostForm); err != nil {
			return errors.Wrap(err, "decoding form")
		}

		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decoding json")
	}

	return nil
}

var clientErrors = map[error]int{
	app.ErrNotFound:                http.StatusNotFound,
	app.ErrUnknownUser:             http.StatusUnauthorized,
	permissions.ErrUnauthenticated: http.StatusUnauthorized,
	permissions.ErrForbidden:       http.StatusForbidden,
	app.ErrDuplicateEmail:          http.StatusConflict,
	app.ErrEmailRequired:           http.StatusBadRequest,
	app.ErrNameRequired:            http.StatusBadRequest,
	app.ErrEmailInvalid:            http.StatusBadRequest,
	app.ErrTitleRequired:           http.StatusBadRequest,
	app.ErrContentRequired:         http.StatusBadRequest,
	app.ErrDateCreatedRequired:     http.StatusBadRequest,
	app.ErrAcademicLevelRequired:   http.StatusBadRequest,
	app.ErrTopicRequired:           http.StatusBadRequest,
	app.ErrVisibilityInvalid:       http.StatusBadRequest,
	app.ErrYearRequired:            http.StatusBadRequest,
	app.ErrLanguageRequired:        http.StatusBadRequest,
	app.ErrPromptRequired:          http.StatusBadRequest,
	app.ErrPromptTooLong:           http.StatusBadRequest,
	app.ErrChatNotConfigured:       http.StatusServiceUnavailable,
}

func getStatusCode(err error) int {
	for clientErr, code := range clientErrors {
		if errors.Is(err, clientErr) {
			return code
		}
	}

	return http.StatusInternalServerError
}

// handleJSONError logs the error and responds with an error envelope. Client
// errors surface their message; anything else is masked with a generic one.
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	statusCode := getStatusCode(err)

	if statusCode == http.StatusInternalServerError {
		log.ErrorWrap(err, msg)
		respondError(w, statusCode, msg, "internal server error")
		return
	}

	respondError(w, statusCode, msg, err.Error())
}
