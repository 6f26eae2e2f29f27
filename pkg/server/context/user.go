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

// Package context provides helpers for request-scoped values
package context

import (
	"context"

	"github.com/pd-enterprise/backend-service/pkg/server/database"
)

type privateKey string

const noteUserKey privateKey = "noteUser"

// WithNoteUser creates a new context with the given notes directory user
func WithNoteUser(ctx context.Context, user *database.NoteUser) context.Context {
	return context.WithValue(ctx, noteUserKey, user)
}

// NoteUser retrieves a notes directory user from the given context. It
// returns nil if the context does not contain one, which means the request
// carries no identity.
func NoteUser(ctx context.Context) *database.NoteUser {
	if temp := ctx.Value(noteUserKey); temp != nil {
		if user, ok := temp.(*database.NoteUser); ok {
			return user
		}
	}

	return nil
}
