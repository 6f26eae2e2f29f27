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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	groqTimeout = 60 * time.Second
)

// GroqClient is a Completer backed by the Groq chat completions API,
// which is OpenAI-compatible.
type GroqClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type groqRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type groqError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewGroqClient creates a new Groq client with the given API key
func NewGroqClient(apiKey string) *GroqClient {
	return &GroqClient{
		apiKey:  apiKey,
		baseURL: groqBaseURL,
		client:  &http.Client{Timeout: groqTimeout},
	}
}

// Complete sends the conversation to the given model and returns the
// assistant's reply
func (c *GroqClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	payload, err := json.Marshal(groqRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "constructing request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	res, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "performing request")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr groqError
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return "", errors.Errorf("groq api: %s (%s)", apiErr.Error.Message, apiErr.Error.Type)
		}
		return "", errors.Errorf("groq api: unexpected status %d", res.StatusCode)
	}

	var body groqResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decoding response")
	}
	if len(body.Choices) == 0 {
		return "", errors.New("groq api: response contained no choices")
	}

	return body.Choices[0].Message.Content, nil
}
