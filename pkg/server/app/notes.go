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

	"github.com/pd-enterprise/backend-service/pkg/server/database"
	"github.com/pd-enterprise/backend-service/pkg/server/helpers"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// NoteParams is the caller-supplied set of note fields for create and update
type NoteParams struct {
	Title         string
	Content       string
	DateCreated   string
	AcademicLevel string
	Topic         string
	Board         string
	Visibility    string
	Year          string
	Language      string
	Keywords      string
}

func (p NoteParams) validate() error {
	if p.Title == "" {
		return ErrTitleRequired
	}
	if p.Content == "" {
		return ErrContentRequired
	}
	if p.DateCreated == "" {
		return ErrDateCreatedRequired
	}
	if p.AcademicLevel == "" {
		return ErrAcademicLevelRequired
	}
	if p.Topic == "" {
		return ErrTopicRequired
	}
	if p.Visibility != database.VisibilityPublic && p.Visibility != database.VisibilityPrivate {
		return ErrVisibilityInvalid
	}
	if p.Year == "" {
		return ErrYearRequired
	}
	if p.Language == "" {
		return ErrLanguageRequired
	}

	return nil
}

// UpdateNoteParams is the caller-supplied set of note fields for an update.
// Board is optional like on create; the other fields are re-validated.
type UpdateNoteParams struct {
	Title         string
	Content       string
	AcademicLevel string
	Topic         string
	Board         string
}

func (p UpdateNoteParams) validate() error {
	if p.Title == "" {
		return ErrTitleRequired
	}
	if p.Content == "" {
		return ErrContentRequired
	}
	if p.AcademicLevel == "" {
		return ErrAcademicLevelRequired
	}
	if p.Topic == "" {
		return ErrTopicRequired
	}

	return nil
}

// CreateNote creates a note owned by the notes directory user with the given
// email. The owner must already be registered; dimension rows are resolved
// lazily and may be created as a side effect. It returns the created note.
func (a *App) CreateNote(ownerEmail, noteType string, p NoteParams) (database.Note, error) {
	owner, err := a.GetNoteUser(ownerEmail)
	if err != nil {
		return database.Note{}, err
	}

	if err := p.validate(); err != nil {
		return database.Note{}, err
	}

	slug, err := helpers.GenSlug(p.Title)
	if err != nil {
		return database.Note{}, err
	}

	tx := a.NotesDB.Begin()

	levelID, err := ResolveAcademicLevel(tx, p.AcademicLevel)
	if err != nil {
		tx.Rollback()
		return database.Note{}, pkgErrors.Wrap(err, "resolving academic level")
	}

	topicID, err := ResolveTopic(tx, p.Topic)
	if err != nil {
		tx.Rollback()
		return database.Note{}, pkgErrors.Wrap(err, "resolving topic")
	}

	var boardID int
	if p.Board != "" {
		boardID, err = ResolveBoard(tx, p.Board)
		if err != nil {
			tx.Rollback()
			return database.Note{}, pkgErrors.Wrap(err, "resolving board")
		}
	}

	note := database.Note{
		Title:           p.Title,
		Slug:            slug,
		Content:         p.Content,
		UserID:          owner.ID,
		AcademicLevelID: levelID,
		TopicID:         topicID,
		BoardID:         boardID,
		Type:            noteType,
		Visibility:      p.Visibility,
		Year:            p.Year,
		Language:        p.Language,
		Keywords:        p.Keywords,
		DateCreated:     p.DateCreated,
		DateUpdated:     a.Clock.Now(),
	}
	if err := tx.Create(&note).Error; err != nil {
		tx.Rollback()
		return database.Note{}, pkgErrors.Wrap(err, "inserting note")
	}

	tx.Commit()

	return note, nil
}

// GetUserNotes returns all notes owned by the notes directory user with the
// given email, with dimension associations resolved. Rows are sorted by note
// id for deterministic output.
func (a *App) GetUserNotes(ownerEmail string) ([]database.Note, error) {
	owner, err := a.GetNoteUser(ownerEmail)
	if err != nil {
		return nil, err
	}

	notes := []database.Note{}
	conn := database.PreloadNote(a.NotesDB.Where("user_id = ?", owner.ID)).Order("note_id ASC")
	if err := conn.Find(&notes).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding notes")
	}

	return notes, nil
}

// UpdateNote updates the note at the given slug, scoped to the owner: a slug
// owned by someone else behaves exactly like a missing slug and yields
// ErrNotFound. The slug is regenerated only when the title changes. Concurrent
// updates to the same note are not serialized; the last write wins.
func (a *App) UpdateNote(slug, ownerEmail string, p UpdateNoteParams) (database.Note, error) {
	owner, err := a.GetNoteUser(ownerEmail)
	if err != nil {
		return database.Note{}, err
	}

	if err := p.validate(); err != nil {
		return database.Note{}, err
	}

	tx := a.NotesDB.Begin()

	var note database.Note
	err = tx.Where("slug = ? AND user_id = ?", slug, owner.ID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return database.Note{}, ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return database.Note{}, pkgErrors.Wrap(err, "finding note")
	}

	levelID, err := ResolveAcademicLevel(tx, p.AcademicLevel)
	if err != nil {
		tx.Rollback()
		return database.Note{}, pkgErrors.Wrap(err, "resolving academic level")
	}

	topicID, err := ResolveTopic(tx, p.Topic)
	if err != nil {
		tx.Rollback()
		return database.Note{}, pkgErrors.Wrap(err, "resolving topic")
	}

	if p.Board != "" {
		boardID, err := ResolveBoard(tx, p.Board)
		if err != nil {
			tx.Rollback()
			return database.Note{}, pkgErrors.Wrap(err, "resolving board")
		}
		note.BoardID = boardID
	}

	if note.Title != p.Title {
		newSlug, err := helpers.GenSlug(p.Title)
		if err != nil {
			tx.Rollback()
			return database.Note{}, err
		}
		note.Slug = newSlug
	}

	note.Title = p.Title
	note.Content = p.Content
	note.AcademicLevelID = levelID
	note.TopicID = topicID
	note.DateUpdated = a.Clock.Now()

	if err := tx.Save(&note).Error; err != nil {
		tx.Rollback()
		return database.Note{}, pkgErrors.Wrap(err, "saving note")
	}

	tx.Commit()

	var ret database.Note
	if err := database.PreloadNote(a.NotesDB.Where("note_id = ?", note.NoteID)).First(&ret).Error; err != nil {
		return database.Note{}, pkgErrors.Wrap(err, "reloading note")
	}

	return ret, nil
}

// DeleteNote hard-deletes the note at the given slug, scoped to the owner
// like UpdateNote. Dimension rows referenced by the note are left in place.
// It returns the id of the deleted note.
func (a *App) DeleteNote(slug, ownerEmail string) (int, error) {
	owner, err := a.GetNoteUser(ownerEmail)
	if err != nil {
		return 0, err
	}

	var note database.Note
	err = a.NotesDB.Where("slug = ? AND user_id = ?", slug, owner.ID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, pkgErrors.Wrap(err, "finding note")
	}

	result := a.NotesDB.Where("note_id = ? AND user_id = ?", note.NoteID, owner.ID).Delete(&database.Note{})
	if result.Error != nil {
		return 0, pkgErrors.Wrap(result.Error, "deleting note")
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	return note.NoteID, nil
}
