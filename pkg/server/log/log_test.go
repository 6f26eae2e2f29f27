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

package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/pkg/errors"
)

func TestShouldLog(t *testing.T) {
	testCases := []struct {
		configured string
		level      string
		expected   bool
	}{
		{configured: LevelInfo, level: LevelDebug, expected: false},
		{configured: LevelInfo, level: LevelInfo, expected: true},
		{configured: LevelInfo, level: LevelWarn, expected: true},
		{configured: LevelInfo, level: LevelError, expected: true},
		{configured: LevelError, level: LevelWarn, expected: false},
		{configured: LevelDebug, level: LevelDebug, expected: true},
	}

	defer SetLevel(LevelInfo)

	for _, tc := range testCases {
		SetLevel(tc.configured)

		got := shouldLog(tc.level)
		if got != tc.expected {
			t.Errorf("shouldLog(%s) with level %s: got %t, want %t", tc.level, tc.configured, got, tc.expected)
		}
	}
}

func TestSetLevelUnknown(t *testing.T) {
	defer SetLevel(LevelInfo)

	SetLevel("nonsense")

	if !shouldLog(LevelInfo) {
		t.Errorf("unknown level should fall back to info")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WithFields(Fields{
		"note_id": 8,
		"cause":   errors.New("some cause"),
	}).Error("something failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(errors.Wrap(err, "decoding entry"))
	}

	if entry["level"] != "error" {
		t.Errorf("level mismatch: got %v", entry["level"])
	}
	if entry["msg"] != "something failed" {
		t.Errorf("msg mismatch: got %v", entry["msg"])
	}
	if entry["cause"] != "some cause" {
		t.Errorf("cause should be serialized as a string: got %v", entry["cause"])
	}
}
