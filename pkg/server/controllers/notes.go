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

package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pd-enterprise/backend-service/pkg/server/app"
	"github.com/pd-enterprise/backend-service/pkg/server/context"
	"github.com/pd-enterprise/backend-service/pkg/server/operations"
	"github.com/pd-enterprise/backend-service/pkg/server/presenters"
)

// NewNotes creates a new Notes controller
func NewNotes(app *app.App) *Notes {
	return &Notes{
		app: app,
	}
}

// Notes is a notes controller.
type Notes struct {
	app *app.App
}

// NoteForm is the payload for a note's fields
type NoteForm struct {
	Title         string `json:"title" schema:"title"`
	Content       string `json:"content" schema:"content"`
	DateCreated   string `json:"dateCreated" schema:"dateCreated"`
	AcademicLevel string `json:"academicLevel" schema:"academicLevel"`
	Topic         string `json:"topic" schema:"topic"`
	Board         string `json:"board" schema:"board"`
	Visibility    string `json:"visibility" schema:"visibility"`
	Year          string `json:"year" schema:"year"`
	Language      string `json:"language" schema:"language"`
	Keywords      string `json:"keywords" schema:"keywords"`
}

// CreateNoteForm is the payload for creating a note
type CreateNoteForm struct {
	Email string   `json:"email" schema:"email"`
	Note  NoteForm `json:"note" schema:"note"`
}

// Create handles POST /notes/new-note/{type}
func (n *Notes) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	noteType := vars["type"]

	var form CreateNoteForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	note, err := n.app.CreateNote(form.Email, noteType, app.NoteParams{
		Title:         form.Note.Title,
		Content:       form.Note.Content,
		DateCreated:   form.Note.DateCreated,
		AcademicLevel: form.Note.AcademicLevel,
		Topic:         form.Note.Topic,
		Board:         form.Note.Board,
		Visibility:    form.Note.Visibility,
		Year:          form.Note.Year,
		Language:      form.Note.Language,
		Keywords:      form.Note.Keywords,
	})
	if err != nil {
		handleJSONError(w, err, "creating note")
		return
	}

	respondData(w, http.StatusCreated, "note created", map[string]interface{}{
		"insertedId": note.NoteID,
		"slug":       note.Slug,
	})
}

// ListNotesForm is the payload for listing a user's notes
type ListNotesForm struct {
	Email string `json:"email" schema:"email"`
}

// Index handles POST /notes/notes
func (n *Notes) Index(w http.ResponseWriter, r *http.Request) {
	var form ListNotesForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if form.Email == "" {
		handleJSONError(w, app.ErrEmailRequired, "validating payload")
		return
	}

	notes, err := n.app.GetUserNotes(form.Email)
	if err != nil {
		handleJSONError(w, err, "getting notes")
		return
	}

	respondData(w, http.StatusOK, "notes found", presenters.PresentNotes(notes))
}

// Show handles GET /notes/note/{slug}
func (n *Notes) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	requester := context.NoteUser(r.Context())

	note, ok, err := operations.GetNote(n.app.NotesDB, slug, requester)
	if err != nil {
		handleJSONError(w, err, "getting note")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "finding note")
		return
	}

	board, err := n.app.GetBoardName(note.BoardID)
	if err != nil {
		handleJSONError(w, err, "getting board")
		return
	}

	respondData(w, http.StatusOK, "note found", presenters.PresentNote(note, board))
}

// UpdateNoteForm is the payload for updating a note
type UpdateNoteForm struct {
	Email string   `json:"email" schema:"email"`
	Data  NoteForm `json:"data" schema:"data"`
}

// Update handles POST /notes/note/{slug}/update
func (n *Notes) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var form UpdateNoteForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	note, err := n.app.UpdateNote(slug, form.Email, app.UpdateNoteParams{
		Title:         form.Data.Title,
		Content:       form.Data.Content,
		AcademicLevel: form.Data.AcademicLevel,
		Topic:         form.Data.Topic,
		Board:         form.Data.Board,
	})
	if err != nil {
		handleJSONError(w, err, "updating note")
		return
	}

	board, err := n.app.GetBoardName(note.BoardID)
	if err != nil {
		handleJSONError(w, err, "getting board")
		return
	}

	respondData(w, http.StatusOK, "note updated", presenters.PresentNote(note, board))
}

// DeleteNoteForm is the payload for deleting a note
type DeleteNoteForm struct {
	Email string `json:"email" schema:"email"`
}

// Delete handles DELETE /notes/note/{slug}/delete
func (n *Notes) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var form DeleteNoteForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if form.Email == "" {
		handleJSONError(w, app.ErrEmailRequired, "validating payload")
		return
	}

	noteID, err := n.app.DeleteNote(slug, form.Email)
	if err != nil {
		handleJSONError(w, err, "deleting note")
		return
	}

	respondData(w, http.StatusOK, "note deleted", map[string]interface{}{
		"id": noteID,
	})
}
