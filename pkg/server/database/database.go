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

package database

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitMainSchema migrates the main database schema to reflect the latest
// model definition
func InitMainSchema(db *gorm.DB) {
	if err := db.AutoMigrate(
		&Post{},
		&User{},
	); err != nil {
		panic(err)
	}
}

// InitNotesSchema migrates the notes database schema to reflect the latest
// model definition
func InitNotesSchema(db *gorm.DB) {
	if err := db.AutoMigrate(
		&NoteUser{},
		&AcademicLevel{},
		&Topic{},
		&Board{},
		&Note{},
	); err != nil {
		panic(err)
	}
}

// Open initializes a database connection
func Open(dbPath string) *gorm.DB {
	// Create directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(errors.Wrapf(err, "creating database directory at %s", dir))
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		panic(errors.Wrap(err, "opening database connection"))
	}

	return db
}

// PreloadNote preloads the associations of a note for the given query
func PreloadNote(conn *gorm.DB) *gorm.DB {
	return conn.
		Preload("User").
		Preload("AcademicLevel").
		Preload("Topic")
}
