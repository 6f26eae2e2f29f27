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

package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pd-enterprise/backend-service/pkg/assert"
	"github.com/pkg/errors"
)

func TestBuildMessages(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "what is inertia?"},
		{Role: RoleAssistant, Content: "what do you observe when a bus brakes?"},
	}

	got := BuildMessages(ModeSocratic, history, "is it related to mass?")

	assert.Equal(t, len(got), 4, "message count mismatch")
	assert.DeepEqual(t, got[0], history[0], "first history message mismatch")
	assert.DeepEqual(t, got[1], history[1], "second history message mismatch")
	assert.DeepEqual(t, got[2], Message{Role: RoleUser, Content: "is it related to mass?"}, "prompt message mismatch")
	assert.Equal(t, got[3].Content, socraticPrimer, "primer mismatch")
}

func TestBuildMessagesNoHistory(t *testing.T) {
	got := BuildMessages(ModeDirect, nil, "define osmosis")

	assert.Equal(t, len(got), 2, "message count mismatch")
	assert.DeepEqual(t, got[0], Message{Role: RoleUser, Content: "define osmosis"}, "prompt message mismatch")
	assert.Equal(t, got[1].Content, directPrimer, "primer mismatch")
}

func TestGroqClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Header.Get("Authorization"), "Bearer test-key", "auth header mismatch")

		var req groqRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(errors.Wrap(err, "decoding request"))
		}
		assert.Equal(t, req.Model, "llama-3.3-70b-versatile", "model mismatch")
		assert.Equal(t, len(req.Messages), 2, "message count mismatch")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"<p>ok</p>"}}]}`))
	}))
	defer server.Close()

	c := NewGroqClient("test-key")
	c.baseURL = server.URL

	got, err := c.Complete(context.Background(), "llama-3.3-70b-versatile", BuildMessages(ModeDirect, nil, "hi"))
	if err != nil {
		t.Fatal(errors.Wrap(err, "completing"))
	}

	assert.Equal(t, got, "<p>ok</p>", "completion mismatch")
}

func TestGroqClientCompleteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	c := NewGroqClient("bad-key")
	c.baseURL = server.URL

	_, err := c.Complete(context.Background(), "llama-3.3-70b-versatile", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
}
