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

// Package operations provides read operations that combine lookups with
// permission checks
package operations

import (
	"github.com/pd-enterprise/backend-service/pkg/server/database"
	"github.com/pd-enterprise/backend-service/pkg/server/permissions"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetNote retrieves the note at the given slug for the given requester, with
// dimension associations resolved. The requester is nil for guests. It
// returns ok=false when no note exists at the slug; a permission error from
// the permissions package when the note exists but is not viewable.
func GetNote(db *gorm.DB, slug string, requester *database.NoteUser) (database.Note, bool, error) {
	var note database.Note
	err := database.PreloadNote(db.Where("slug = ?", slug)).First(&note).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Note{}, false, nil
	}
	if err != nil {
		return database.Note{}, false, errors.Wrap(err, "finding note")
	}

	if err := permissions.ViewNote(requester, note); err != nil {
		return database.Note{}, true, err
	}

	return note, true, nil
}
