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

package permissions

import (
	"github.com/pd-enterprise/backend-service/pkg/server/database"
	"github.com/pkg/errors"
)

var (
	// ErrUnauthenticated is an error for a guest accessing a resource that
	// requires an identity
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is an error for a known user accessing a resource owned
	// by someone else
	ErrForbidden = errors.New("not allowed")
)

// ViewNote checks if the given requester can view the given note. A public
// note is viewable by anyone including guests; a private note only by its
// owner. The requester is nil for guests.
func ViewNote(requester *database.NoteUser, note database.Note) error {
	if note.Visibility == database.VisibilityPublic {
		return nil
	}

	if requester == nil {
		return ErrUnauthenticated
	}
	if note.UserID != requester.ID {
		return ErrForbidden
	}

	return nil
}
