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

package app

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pd-enterprise/backend-service/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// The dimension tables (academic level, topic, board) are resolved with a
// find-or-create on the natural key. The natural keys carry unique indexes,
// so two concurrent resolutions of the same new value settle by re-reading
// the winner's row on insert conflict. Dimension rows are never deleted;
// they are shared by many notes.

// ResolveAcademicLevel returns the id of the academic level row with the
// given label, inserting the row if absent. The numeric grade is derived
// from the label when it parses as an integer.
func ResolveAcademicLevel(db *gorm.DB, label string) (int, error) {
	var row database.AcademicLevel
	err := db.Where("label = ?", label).First(&row).Error
	if err == nil {
		return row.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, pkgErrors.Wrap(err, "finding academic level")
	}

	grade, _ := strconv.Atoi(strings.TrimSpace(label))

	row = database.AcademicLevel{Label: label, Grade: grade}
	if err := db.Create(&row).Error; err != nil {
		// A concurrent request may have inserted the same label
		var existing database.AcademicLevel
		if err2 := db.Where("label = ?", label).First(&existing).Error; err2 == nil {
			return existing.ID, nil
		}
		return 0, pkgErrors.Wrap(err, "inserting academic level")
	}

	return row.ID, nil
}

// ResolveTopic returns the id of the topic row with the given name,
// inserting the row if absent.
func ResolveTopic(db *gorm.DB, name string) (int, error) {
	var row database.Topic
	err := db.Where("name = ?", name).First(&row).Error
	if err == nil {
		return row.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, pkgErrors.Wrap(err, "finding topic")
	}

	row = database.Topic{Name: name}
	if err := db.Create(&row).Error; err != nil {
		var existing database.Topic
		if err2 := db.Where("name = ?", name).First(&existing).Error; err2 == nil {
			return existing.ID, nil
		}
		return 0, pkgErrors.Wrap(err, "inserting topic")
	}

	return row.ID, nil
}

// ResolveBoard returns the id of the board row with the given name,
// inserting the row if absent.
func ResolveBoard(db *gorm.DB, name string) (int, error) {
	var row database.Board
	err := db.Where("name = ?", name).First(&row).Error
	if err == nil {
		return row.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, pkgErrors.Wrap(err, "finding board")
	}

	row = database.Board{Name: name}
	if err := db.Create(&row).Error; err != nil {
		var existing database.Board
		if err2 := db.Where("name = ?", name).First(&existing).Error; err2 == nil {
			return existing.ID, nil
		}
		return 0, pkgErrors.Wrap(err, "inserting board")
	}

	return row.ID, nil
}

// GetBoardName returns the name of the board row with the given id. A zero id
// means the note has no board and resolves to an empty string.
func (a *App) GetBoardName(id int) (string, error) {
	if id == 0 {
		return "", nil
	}

	var row database.Board
	err := a.NotesDB.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", pkgErrors.Wrap(err, "finding board")
	}

	return row.Name, nil
}
