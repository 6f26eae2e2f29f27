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

package presenters

import (
	"time"

	"github.com/pd-enterprise/backend-service/pkg/server/database"
)

// Note is a result of PresentNote
type Note struct {
	NoteID        int       `json:"noteId"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	AcademicLevel string    `json:"academicLevel"`
	Grade         int       `json:"grade"`
	Topic         string    `json:"topic"`
	Board         string    `json:"board,omitempty"`
	Type          string    `json:"type"`
	Visibility    string    `json:"visibility"`
	Year          string    `json:"year"`
	Language      string    `json:"language"`
	Keywords      string    `json:"keywords"`
	DateCreated   string    `json:"dateCreated"`
	DateUpdated   time.Time `json:"dateUpdated"`
}

// NoteListItem is a nested note projection for PresentNotes. The owner's
// note listing omits fields that only matter on the detail view.
type NoteListItem struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	DateCreated   string `json:"dateCreated"`
	AcademicLevel string `json:"academicLevel"`
	Grade         int    `json:"grade"`
	Topic         string `json:"topic"`
	Type          string `json:"type"`
}

// PresentNote presents a note with its dimension rows resolved. The board
// name is looked up separately because a note may have no board.
func PresentNote(note database.Note, board string) Note {
	ret := Note{
		NoteID:        note.NoteID,
		Title:         note.Title,
		Slug:          note.Slug,
		Content:       note.Content,
		AcademicLevel: note.AcademicLevel.Label,
		Grade:         note.AcademicLevel.Grade,
		Topic:         note.Topic.Name,
		Board:         board,
		Type:          note.Type,
		Visibility:    note.Visibility,
		Year:          note.Year,
		Language:      note.Language,
		Keywords:      note.Keywords,
		DateCreated:   note.DateCreated,
		DateUpdated:   FormatTS(note.DateUpdated),
	}

	return ret
}

// PresentNotes presents a note listing
func PresentNotes(notes []database.Note) []NoteListItem {
	ret := []NoteListItem{}

	for _, note := range notes {
		p := NoteListItem{
			Title:         note.Title,
			Slug:          note.Slug,
			Content:       note.Content,
			DateCreated:   note.DateCreated,
			AcademicLevel: note.AcademicLevel.Label,
			Grade:         note.AcademicLevel.Grade,
			Topic:         note.Topic.Name,
			Type:          note.Type,
		}
		ret = append(ret, p)
	}

	return ret
}
