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
	"io"
	"net/http"
	"testing"

	"github.com/pd-enterprise/backend-service/pkg/assert"
	"github.com/pd-enterprise/backend-service/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestRootEndpoint(t *testing.T) {
	a := newControllerTestApp(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	// All four envelope keys must be on the wire, with error null on success
	for _, key := range []string{"status", "message", "data", "error"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("envelope is missing the %s key", key)
		}
	}
	assert.Equal(t, string(raw["error"]), "null", "error should be null on success")

	var message string
	if err := json.Unmarshal(raw["message"], &message); err != nil {
		t.Fatal(errors.Wrap(err, "decoding message"))
	}
	assert.Equal(t, message, "This is the backend-service for PD Enterprise.", "banner mismatch")
}

func TestHealthEndpoint(t *testing.T) {
	a := newControllerTestApp(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/health", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading body"))
	}
	assert.Equal(t, string(body), "ok", "body mismatch")
}

func TestNotFoundEndpoint(t *testing.T) {
	a := newControllerTestApp(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/no/such/endpoint", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "")

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading body"))
	}

	// Undefined endpoints respond with the JSON envelope, not HTML,
	// and failures must still carry the data key as an explicit null
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}
	if _, ok := raw["data"]; !ok {
		t.Error("envelope is missing the data key")
	}
	assert.Equal(t, string(raw["data"]), "null", "data should be null on failure")

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding envelope"))
	}
	assert.Equal(t, payload.Status, http.StatusNotFound, "envelope status mismatch")
	assert.Equal(t, payload.Message, "Endpoint not defined", "message mismatch")
}
