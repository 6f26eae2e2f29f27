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
	"github.com/pd-enterprise/backend-service/pkg/clock"
	"github.com/pd-enterprise/backend-service/pkg/server/chat"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrEmptyDB is an error for missing main database connection in the app configuration
	ErrEmptyDB = errors.New("No main database connection was provided")
	// ErrEmptyNotesDB is an error for missing notes database connection in the app configuration
	ErrEmptyNotesDB = errors.New("No notes database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
)

// App is an application context. DB is the main directory database holding
// users and blog posts; NotesDB is the notes database holding the notes
// directory and the notes star schema.
type App struct {
	DB      *gorm.DB
	NotesDB *gorm.DB
	Clock   clock.Clock
	Chat    chat.Completer
	WebURL  string
	Port    string
	AppEnv  string
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.NotesDB == nil {
		return ErrEmptyNotesDB
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}

	return nil
}
