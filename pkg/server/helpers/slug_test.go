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

package helpers

import (
	"regexp"
	"testing"

	"github.com/pd-enterprise/backend-service/pkg/assert"
	"github.com/pkg/errors"
)

func TestNormalizeSlug(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Newton's Laws", expected: "newton-s-laws"},
		{input: "Hello, World!", expected: "hello-world"},
		{input: "  Trig 101  ", expected: "trig-101"},
		{input: "---", expected: ""},
		{input: "", expected: ""},
		{input: "ALL CAPS", expected: "all-caps"},
	}

	for _, tc := range testCases {
		got := NormalizeSlug(tc.input)
		assert.Equal(t, got, tc.expected, "normalized slug mismatch")
	}
}

func TestGenSlug(t *testing.T) {
	got, err := GenSlug("Newton's Laws")
	if err != nil {
		t.Fatal(errors.Wrap(err, "generating slug"))
	}

	matched, err := regexp.MatchString(`^newton-s-laws-[a-z0-9]{6}$`, got)
	if err != nil {
		t.Fatal(errors.Wrap(err, "matching slug"))
	}
	if !matched {
		t.Errorf("slug %s does not match the expected shape", got)
	}
}

func TestGenSlugEmptyTitle(t *testing.T) {
	got, err := GenSlug("")
	if err != nil {
		t.Fatal(errors.Wrap(err, "generating slug"))
	}

	matched, err := regexp.MatchString(`^-[a-z0-9]{6}$`, got)
	if err != nil {
		t.Fatal(errors.Wrap(err, "matching slug"))
	}
	if !matched {
		t.Errorf("slug %s does not match the expected shape", got)
	}
}

func TestGenSlugUnique(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		got, err := GenSlug("same title")
		if err != nil {
			t.Fatal(errors.Wrap(err, "generating slug"))
		}

		if seen[got] {
			t.Fatalf("slug %s was generated twice", got)
		}
		seen[got] = true
	}
}
