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

	"github.com/pd-enterprise/backend-service/pkg/server/app"
)

// NewUsers creates a new Users controller
func NewUsers(app *app.App) *Users {
	return &Users{
		app: app,
	}
}

// Users is a user controller.
type Users struct {
	app *app.App
}

// RegistrationForm is the payload for registering a user
type RegistrationForm struct {
	Name  string `json:"name" schema:"name"`
	Email string `json:"email" schema:"email"`
}

// Create handles POST /users/new-user
func (u *Users) Create(w http.ResponseWriter, r *http.Request) {
	var form RegistrationForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, err := u.app.CreateUser(form.Name, form.Email)
	if err != nil {
		handleJSONError(w, err, "creating user")
		return
	}

	respondData(w, http.StatusCreated, "user created", map[string]interface{}{
		"id": user.ID,
	})
}

// RoleForm is the payload for querying a user's role
type RoleForm struct {
	Email string `json:"email" schema:"email"`
}

// GetRole handles POST /users/roles/get-role
func (u *Users) GetRole(w http.ResponseWriter, r *http.Request) {
	var form RoleForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if form.Email == "" {
		handleJSONError(w, app.ErrEmailRequired, "validating payload")
		return
	}

	role, err := u.app.GetUserRole(form.Email)
	if err != nil {
		handleJSONError(w, err, "getting role")
		return
	}

	respondData(w, http.StatusOK, "role found", role)
}
