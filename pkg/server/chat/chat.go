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

// Package chat provides an interface to a chat-completion backend.
// Conversation state is supplied by the caller on every request; the package
// holds no history of its own.
package chat

import (
	"context"
)

const (
	// RoleUser is the role for caller-authored messages
	RoleUser = "user"
	// RoleAssistant is the role for backend-authored messages
	RoleAssistant = "assistant"

	// ModeSocratic makes the backend guide the student toward an answer
	// instead of giving it away
	ModeSocratic = "socratic"
	// ModeDirect makes the backend answer the prompt directly
	ModeDirect = "direct"
)

const socraticPrimer = `You are a Socratic Teacher. And I am your student. And please try to keep your replies as brief as possible, while explaining each topic carefully. Please don't give the answer directly but rather a starting point to get started; your job is to help the student find the answer in his/her own way.
Also please return your answer in HTML format, with proper tags.`

const directPrimer = `Please return your answer in HTML format, with proper tags, only send inside the <body> tags, no need for the boilerplate or <body> tag.
Always return your whole answer strictly in the following json syntax: {summary: "[a short summary in a few words of the prompt]", content: "[your response]"}`

// Message is a single turn in a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces a completion for a conversation
type Completer interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}

// BuildMessages assembles the message list for a completion call from the
// caller-supplied history, the new prompt, and the primer for the given mode.
func BuildMessages(mode string, history []Message, prompt string) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, history...)
	messages = append(messages, Message{Role: RoleUser, Content: prompt})

	switch mode {
	case ModeSocratic:
		messages = append(messages, Message{Role: RoleUser, Content: socraticPrimer})
	default:
		messages = append(messages, Message{Role: RoleUser, Content: directPrimer})
	}

	return messages
}
