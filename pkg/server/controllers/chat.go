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
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pd-enterprise/backend-service/pkg/server/app"
	"github.com/pd-enterprise/backend-service/pkg/server/chat"
)

// maxPromptLen is the longest prompt the chat endpoint accepts
const maxPromptLen = 2000

// NewChat creates a new Chat controller
func NewChat(app *app.App) *Chat {
	return &Chat{
		app: app,
	}
}

// Chat is a chat completion controller.
type Chat struct {
	app *app.App
}

// ChatForm is the payload for a chat completion request
type ChatForm struct {
	Prompt  string         `json:"prompt" schema:"prompt"`
	Mode    string         `json:"mode" schema:"mode"`
	History []chat.Message `json:"history" schema:"-"`
}

// Complete handles POST /ai/chat/{model}
func (c *Chat) Complete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	model := vars["model"]

	if c.app.Chat == nil {
		handleJSONError(w, app.ErrChatNotConfigured, "completing chat")
		return
	}

	var form ChatForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if form.Prompt == "" {
		handleJSONError(w, app.ErrPromptRequired, "validating payload")
		return
	}
	if len(form.Prompt) > maxPromptLen {
		handleJSONError(w, app.ErrPromptTooLong, "validating payload")
		return
	}

	messages := chat.BuildMessages(form.Mode, form.History, form.Prompt)

	reply, err := c.app.Chat.Complete(r.Context(), model, messages)
	if err != nil {
		handleJSONError(w, err, "completing chat")
		return
	}

	respondData(w, http.StatusOK, "completion generated", reply)
}
