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

// Package testutils provides utilities used in tests
package testutils

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/pd-enterprise/backend-service/pkg/server/database"
	"github.com/pd-enterprise/backend-service/pkg/server/helpers"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	// Use file-based in-memory database with unique UUID per test to avoid sharing
	uuid, err := helpers.GenUUID()
	if err != nil {
		t.Fatalf("failed to generate UUID for test database: %v", err)
	}
	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid)
	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	return db
}

// InitMainMemoryDB creates an in-memory SQLite main database with the schema
// initialized
func InitMainMemoryDB(t *testing.T) *gorm.DB {
	db := openMemoryDB(t)
	database.InitMainSchema(db)

	return db
}

// InitNotesMemoryDB creates an in-memory SQLite notes database with the
// schema initialized
func InitNotesMemoryDB(t *testing.T) *gorm.DB {
	db := openMemoryDB(t)
	database.InitNotesSchema(db)

	return db
}

// MustExec fails the test if the given database query resulted in an error
func MustExec(t *testing.T, db *gorm.DB, message string) {
	if err := db.Error; err != nil {
		t.Fatalf("%s: %s", message, err.Error())
	}
}

// SetupUserData creates and returns a new main directory user for testing
// purposes
func SetupUserData(db *gorm.DB, email, name string) database.User {
	user := database.User{
		Email: email,
		Name:  name,
	}

	if err := db.Save(&user).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare user"))
	}

	return user
}

// SetupNoteUserData creates and returns a new notes directory user for
// testing purposes
func SetupNoteUserData(db *gorm.DB, email string) database.NoteUser {
	user := database.NoteUser{
		Email: email,
	}

	if err := db.Save(&user).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare note user"))
	}

	return user
}

// SetupNoteData creates and returns a note row with resolved dimension rows
// for testing purposes
func SetupNoteData(db *gorm.DB, owner database.NoteUser, title, slug, visibility string) database.Note {
	level := database.AcademicLevel{Label: "10", Grade: 10}
	if err := db.Where("label = ?", level.Label).FirstOrCreate(&level).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare academic level"))
	}

	topic := database.Topic{Name: "Physics"}
	if err := db.Where("name = ?", topic.Name).FirstOrCreate(&topic).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare topic"))
	}

	note := database.Note{
		Title:           title,
		Slug:            slug,
		Content:         "some content",
		UserID:          owner.ID,
		AcademicLevelID: level.ID,
		TopicID:         topic.ID,
		Type:            "text",
		Visibility:      visibility,
		Year:            "2025",
		Language:        "en",
		DateCreated:     "2025-01-02",
		DateUpdated:     time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC),
	}
	if err := db.Save(&note).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare note"))
	}

	return note
}

// MakeReq creates an HTTP request with the given method, path and body
func MakeReq(serverURL, method, path, data string) *http.Request {
	endpoint := fmt.Sprintf("%s%s", serverURL, path)

	req, err := http.NewRequest(method, endpoint, strings.NewReader(data))
	if err != nil {
		panic(errors.Wrap(err, "constructing http request"))
	}

	req.Header.Set("Content-Type", "application/json")

	return req
}

// HTTPDo makes an HTTP request and returns a response
func HTTPDo(t *testing.T, req *http.Request) *http.Response {
	hc := http.Client{
		// Do not follow redirects so that the redirect itself can be tested
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	res, err := hc.Do(req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "performing http request"))
	}

	return res
}
