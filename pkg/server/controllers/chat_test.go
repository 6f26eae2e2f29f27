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
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/pd-enterprise/backend-service/pkg/assert"
	"github.com/pd-enterprise/backend-service/pkg/server/chat"
	"github.com/pd-enterprise/backend-service/pkg/server/testutils"
	"github.com/pkg/errors"
)

// fakeCompleter records the completion call and returns a canned reply
type fakeCompleter struct {
	model    string
	messages []chat.Message
	reply    string
}

func (f *fakeCompleter) Complete(ctx context.Context, model string, messages []chat.Message) (string, error) {
	f.model = model
	f.messages = messages

	return f.reply, nil
}

func TestChatEndpoint(t *testing.T) {
	a := newControllerTestApp(t)
	completer := &fakeCompleter{reply: "<p>start with the definition</p>"}
	a.Chat = completer
	server := MustNewServer(t, &a)
	defer server.Close()

	body := `{"prompt": "What is inertia?", "mode": "socratic", "history": [{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hello"}]}`

	req := testutils.MakeReq(server.URL, "POST", "/ai/chat/llama-3.1-8b-instant", body)
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload Payload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}
	assert.Equal(t, payload.Data, "<p>start with the definition</p>", "reply mismatch")

	assert.Equal(t, completer.model, "llama-3.1-8b-instant", "model mismatch")
	// history, prompt, then the mode primer
	assert.Equal(t, len(completer.messages), 4, "message count mismatch")
	assert.Equal(t, completer.messages[2].Content, "What is inertia?", "prompt position mismatch")
}

func TestChatEndpointNotConfigured(t *testing.T) {
	a := newControllerTestApp(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/ai/chat/llama-3.1-8b-instant", `{"prompt": "hi", "mode": "direct"}`)
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusServiceUnavailable, "")
}

func TestChatEndpointValidation(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{
			name: "empty prompt",
			body: `{"prompt": "", "mode": "direct"}`,
		},
		{
			name: "prompt too long",
			body: `{"prompt": "` + strings.Repeat("a", 2001) + `", "mode": "direct"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newControllerTestApp(t)
			a.Chat = &fakeCompleter{}
			server := MustNewServer(t, &a)
			defer server.Close()

			req := testutils.MakeReq(server.URL, "POST", "/ai/chat/llama-3.1-8b-instant", tc.body)
			res := testutils.HTTPDo(t, req)

			assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")
		})
	}
}
