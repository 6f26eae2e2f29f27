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

package middleware

import (
	"errors"
	"net/http"

	"github.com/pd-enterprise/backend-service/pkg/server/context"
	"github.com/pd-enterprise/backend-service/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// HeaderUserEmail is the header carrying the caller's identity
const HeaderUserEmail = "X-User-Email"

// Identity resolves the caller's email header into a notes directory user
// and stores the row in the request context. An absent header or an unknown
// email leaves the context without a user; the handler decides whether the
// request needs one.
func Identity(db *gorm.DB, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(HeaderUserEmail)
		if email == "" {
			next.ServeHTTP(w, r)
			return
		}

		var user database.NoteUser
		err := db.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			DoError(w, "resolving identity", pkgErrors.Wrap(err, "finding user"), http.StatusInternalServerError)
			return
		}

		ctx := context.WithNoteUser(r.Context(), &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
