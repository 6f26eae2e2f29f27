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

package config

import (
	"testing"

	"github.com/pd-enterprise/backend-service/pkg/assert"
	"github.com/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	c, err := New(Params{})
	if err != nil {
		t.Fatal(errors.Wrap(err, "constructing config"))
	}

	assert.Equal(t, c.AppEnv, AppEnvProduction, "AppEnv mismatch")
	assert.Equal(t, c.Port, "3001", "Port mismatch")
	assert.Equal(t, c.WebURL, "http://localhost:3001", "WebURL mismatch")
	assert.Equal(t, c.MainDBPath, DefaultMainDBPath, "MainDBPath mismatch")
	assert.Equal(t, c.NotesDBPath, DefaultNotesDBPath, "NotesDBPath mismatch")
	assert.Equal(t, c.LogLevel, "info", "LogLevel mismatch")
	assert.Equal(t, c.IsProd(), true, "IsProd mismatch")
}

func TestNewParamsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_LEVEL", "error")

	c, err := New(Params{Port: "5000"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "constructing config"))
	}

	assert.Equal(t, c.Port, "5000", "param should take precedence over env")
	assert.Equal(t, c.LogLevel, "error", "env should take precedence over default")
}

func TestNewValidates(t *testing.T) {
	testCases := []struct {
		params   Params
		expected error
	}{
		{
			params:   Params{WebURL: "not a url"},
			expected: ErrWebURLInvalid,
		},
	}

	for _, tc := range testCases {
		_, err := New(tc.params)

		if !errors.Is(err, tc.expected) {
			t.Errorf("error mismatch: got %v, want %v", err, tc.expected)
		}
	}
}
