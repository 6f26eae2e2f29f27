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

	"github.com/gorilla/mux"
	"github.com/pd-enterprise/backend-service/pkg/server/app"
	mw "github.com/pd-enterprise/backend-service/pkg/server/middleware"
	"github.com/pkg/errors"
)

// Route represents a single route
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	APIRoutes   []Route
}

// NewAPIRoutes returns a new api routes
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	return []Route{
		{"GET", "/", c.Static.Root},
		{"GET", "/health", c.Health.Index},

		{"GET", "/pd-enterprise/blog/posts", c.Posts.Index},
		{"GET", "/pd-enterprise/blog/posts/{slug}", c.Posts.Show},

		{"POST", "/users/new-user", c.Users.Create},
		{"POST", "/users/roles/get-role", c.Users.GetRole},

		{"POST", "/notes/new-note/{type}", c.Notes.Create},
		{"POST", "/notes/notes", c.Notes.Index},
		{"GET", "/notes/note/{slug}", mw.Identity(a.NotesDB, c.Notes.Show)},
		{"POST", "/notes/note/{slug}/update", c.Notes.Update},
		{"DELETE", "/notes/note/{slug}/delete", c.Notes.Delete},

		{"POST", "/ai/chat/{model}", c.Chat.Complete},
	}
}

func registerRoutes(router *mux.Router, routes []Route) {
	for _, route := range routes {
		router.
			Handle(route.Pattern, route.Handler).
			Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)
	registerRoutes(router, rc.APIRoutes)

	// catch-all
	router.NotFoundHandler = http.HandlerFunc(rc.Controllers.Static.NotFound)

	return mw.Global(router), nil
}
