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

import "errors"

var (
	// ErrNotFound is an error for a resource that does not exist. It is also
	// returned when an ownership-scoped mutation matched no rows, so that the
	// existence of other users' notes is not leaked.
	ErrNotFound = errors.New("not found")
	// ErrUnknownUser is an error for an email that is not registered in the
	// directory that authorizes the operation
	ErrUnknownUser = errors.New("email is not registered")

	// ErrEmailRequired is an error for registration without an email
	ErrEmailRequired = errors.New("email is required")
	// ErrNameRequired is an error for registration without a name
	ErrNameRequired = errors.New("name is required")
	// ErrEmailInvalid is an error for a malformed email
	ErrEmailInvalid = errors.New("invalid email format")
	// ErrDuplicateEmail is an error for a duplicate registration
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrTitleRequired is an error for missing note title
	ErrTitleRequired = errors.New("title is required")
	// ErrContentRequired is an error for missing note content
	ErrContentRequired = errors.New("content is required")
	// ErrDateCreatedRequired is an error for missing note creation date
	ErrDateCreatedRequired = errors.New("dateCreated is required")
	// ErrAcademicLevelRequired is an error for missing academic level
	ErrAcademicLevelRequired = errors.New("academicLevel is required")
	// ErrTopicRequired is an error for missing topic
	ErrTopicRequired = errors.New("topic is required")
	// ErrVisibilityInvalid is an error for a visibility value other than
	// public or private
	ErrVisibilityInvalid = errors.New("visibility must be public or private")
	// ErrYearRequired is an error for missing year
	ErrYearRequired = errors.New("year is required")
	// ErrLanguageRequired is an error for missing language
	ErrLanguageRequired = errors.New("language is required")

	// ErrPromptRequired is an error for a chat request without a prompt
	ErrPromptRequired = errors.New("prompt is required")
	// ErrPromptTooLong is an error for a chat prompt above the size cap
	ErrPromptTooLong = errors.New("prompt is too long")
	// ErrChatNotConfigured is an error for chat requests when no completion
	// backend is configured
	ErrChatNotConfigured = errors.New("chat backend is not configured")
)
