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
	"net/mail"

	"github.com/pd-enterprise/backend-service/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserExists checks if the given email is registered in the main directory
func (a *App) UserExists(email string) (bool, error) {
	var count int64
	if err := a.DB.Model(&database.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(err, "counting user")
	}

	return count > 0, nil
}

// NoteUserExists checks if the given email is registered in the notes directory
func (a *App) NoteUserExists(email string) (bool, error) {
	var count int64
	if err := a.NotesDB.Model(&database.NoteUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(err, "counting note user")
	}

	return count > 0, nil
}

// GetNoteUser looks up the notes directory row for the given email.
// It returns ErrUnknownUser if the email is not registered.
func (a *App) GetNoteUser(email string) (database.NoteUser, error) {
	var user database.NoteUser
	err := a.NotesDB.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.NoteUser{}, ErrUnknownUser
	}
	if err != nil {
		return database.NoteUser{}, pkgErrors.Wrap(err, "finding note user")
	}

	return user, nil
}

// CreateUser registers a user in both directories: the main directory first,
// then the notes directory. A duplicate email in either directory fails the
// whole registration with ErrDuplicateEmail and leaves no row behind. The
// main directory insert is held in an open transaction until the notes
// directory insert succeeds, so the two identity spaces cannot diverge.
func (a *App) CreateUser(name, email string) (database.User, error) {
	if email == "" {
		return database.User{}, ErrEmailRequired
	}
	if name == "" {
		return database.User{}, ErrNameRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return database.User{}, ErrEmailInvalid
	}

	tx := a.DB.Begin()

	user := database.User{
		Name:  name,
		Email: email,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()

		// The unique index on email is the source of truth for duplicates,
		// so a concurrent registration cannot slip past a pre-check.
		exists, err2 := a.UserExists(email)
		if err2 == nil && exists {
			return database.User{}, ErrDuplicateEmail
		}

		return database.User{}, pkgErrors.Wrap(err, "inserting user")
	}

	// A dangling notes directory row for this email means a prior partial
	// registration; fail rather than silently adopting it.
	exists, err := a.NoteUserExists(email)
	if err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "checking notes directory")
	}
	if exists {
		tx.Rollback()
		return database.User{}, ErrDuplicateEmail
	}

	noteUser := database.NoteUser{Email: email}
	if err := a.NotesDB.Create(&noteUser).Error; err != nil {
		tx.Rollback()

		exists, err2 := a.NoteUserExists(email)
		if err2 == nil && exists {
			return database.User{}, ErrDuplicateEmail
		}

		return database.User{}, pkgErrors.Wrap(err, "inserting note user")
	}

	tx.Commit()

	return user, nil
}

// GetUserRole reads the membership tier for the given email. If the user has
// no tier set, the default tier is assigned as a side effect and returned.
// It returns ErrUnknownUser if the email is not in the main directory.
func (a *App) GetUserRole(email string) (string, error) {
	var user database.User
	err := a.DB.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnknownUser
	}
	if err != nil {
		return "", pkgErrors.Wrap(err, "finding user")
	}

	if user.Membership != "" {
		return user.Membership, nil
	}

	if err := a.DB.Model(&user).Update("membership", database.MembershipTierDefault).Error; err != nil {
		return "", pkgErrors.Wrap(err, "assigning default tier")
	}

	return database.MembershipTierDefault, nil
}
