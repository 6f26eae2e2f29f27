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
	"crypto/rand"
	"strings"

	"github.com/pkg/errors"
)

const (
	slugSuffixLen      = 6
	slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenSlug derives a URL-safe slug from the given title and appends a short
// random suffix so that identical titles yield distinct slugs. Callers are
// responsible for rejecting empty titles; an empty title still produces a
// slug consisting of the suffix alone.
func GenSlug(title string) (string, error) {
	suffix, err := genSlugSuffix()
	if err != nil {
		return "", errors.Wrap(err, "generating slug suffix")
	}

	return NormalizeSlug(title) + "-" + suffix, nil
}

// NormalizeSlug lowercases the given text and collapses every run of
// characters outside [a-z0-9] into a single "-", trimming any leading and
// trailing "-".
func NormalizeSlug(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}

	runs := strings.Split(b.String(), "-")
	parts := make([]string, 0, len(runs))
	for _, run := range runs {
		if run != "" {
			parts = append(parts, run)
		}
	}

	return strings.Join(parts, "-")
}

func genSlugSuffix() (string, error) {
	buf := make([]byte, slugSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "reading random bytes")
	}

	for i, b := range buf {
		buf[i] = slugSuffixAlphabet[int(b)%len(slugSuffixAlphabet)]
	}

	return string(buf), nil
}
