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
	"time"
)

// Post is a model for a published blog post. It lives in the main database.
type Post struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Slug     string `json:"slug" gorm:"uniqueIndex;type:text"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// User is a model for a user in the main directory. Membership is the
// user's tier and is lazily defaulted on the first role query.
type User struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	Email      string `json:"email" gorm:"uniqueIndex;type:text"`
	Name       string `json:"name"`
	Membership string `json:"membership"`
}

// NoteUser is a model for a user in the notes directory. It is a separate
// identity space from User: the same email maps to a different id, and all
// note ownership references resolve here.
type NoteUser struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Email       string `json:"email" gorm:"uniqueIndex;type:text"`
	Institution string `json:"institution"`
}

// AcademicLevel is a dimension table row deduplicated by label.
// Grade holds the numeric form of the label when it parses as an integer.
type AcademicLevel struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Label string `json:"label" gorm:"uniqueIndex;type:text"`
	Grade int    `json:"grade"`
}

// Topic is a dimension table row deduplicated by name.
type Topic struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;type:text"`
}

// Board is a dimension table row deduplicated by name.
type Board struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;type:text"`
}

// Note is a model for a note. Slug is the externally addressable identifier.
// BoardID is zero when the note has no board.
type Note struct {
	NoteID          int           `json:"note_id" gorm:"primaryKey"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug" gorm:"uniqueIndex;type:text"`
	Content         string        `json:"content"`
	User            NoteUser      `json:"user" gorm:"foreignKey:UserID"`
	UserID          int           `json:"user_id" gorm:"index"`
	AcademicLevel   AcademicLevel `json:"academic_level" gorm:"foreignKey:AcademicLevelID"`
	AcademicLevelID int           `json:"academic_level_id"`
	Topic           Topic         `json:"topic" gorm:"foreignKey:TopicID"`
	TopicID         int           `json:"topic_id"`
	BoardID         int           `json:"board_id"`
	Type            string        `json:"type"`
	Visibility      string        `json:"visibility" gorm:"index"`
	Year            string        `json:"year"`
	Language        string        `json:"language"`
	Keywords        string        `json:"keywords"`
	DateCreated     string        `json:"date_created"`
	DateUpdated     time.Time     `json:"date_updated"`
}
