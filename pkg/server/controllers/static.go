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
)

// NewStatic creates a new Static controller
func NewStatic() *Static {
	return &Static{}
}

// Static is a controller for the static endpoints
type Static struct {
}

// Root handles GET /
func (s *Static) Root(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, "This is the backend-service for PD Enterprise.", nil)
}

// NotFound handles requests to undefined endpoints
func (s *Static) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Endpoint not defined", "not found")
}
