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

// Package middleware provides middlewares for the server
package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pd-enterprise/backend-service/pkg/server/helpers"
	"github.com/pd-enterprise/backend-service/pkg/server/log"
)

// DoError logs the error and responds with the given status code, using the
// same JSON envelope as the handlers. The client-facing error string stays
// generic; the detail goes to the log only.
func DoError(w http.ResponseWriter, msg string, err error, statusCode int) {
	if err == nil {
		log.Error(msg)
	} else {
		log.Error(fmt.Sprintf("%s: %s", msg, err.Error()))
	}

	errMessage := http.StatusText(statusCode)
	body := struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}{
		Status:  statusCode,
		Message: msg,
		Error:   errMessage,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorWrap(err, "encoding error response")
	}
}

// statusWriter captures the status code written to the response so that it
// can be logged after the handler returns
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.ResponseWriter.Write(b)
}

func logging(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, err := helpers.GenUUID()
		if err != nil {
			// log the error and continue without a request id
			log.ErrorWrap(err, "generating request id")
		}

		sw := statusWriter{ResponseWriter: w}
		inner.ServeHTTP(&sw, r)

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"uri":        r.RequestURI,
			"status":     sw.status,
			"remoteAddr": r.RemoteAddr,
		}).Debug("incoming request")
	})
}

func recoverPanic(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"uri":   r.RequestURI,
					"panic": fmt.Sprintf("%v", rec),
				}).Error("recovered from panic")

				DoError(w, "handling request", nil, http.StatusInternalServerError)
			}
		}()

		inner.ServeHTTP(w, r)
	})
}

// Global applies the middlewares that are used for all routes
func Global(inner http.Handler) http.Handler {
	return recoverPanic(logging(inner))
}
