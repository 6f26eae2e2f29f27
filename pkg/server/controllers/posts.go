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
	"github.com/pd-enterprise/backend-service/pkg/server/presenters"
)

// NewPosts creates a new Posts controller
func NewPosts(app *app.App) *Posts {
	return &Posts{
		app: app,
	}
}

// Posts is a blog post controller.
type Posts struct {
	app *app.App
}

// Index handles GET /pd-enterprise/blog/posts
func (p *Posts) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := p.app.GetPosts()
	if err != nil {
		handleJSONError(w, err, "getting posts")
		return
	}

	respondData(w, http.StatusOK, "posts found", presenters.PresentPosts(posts))
}

// Show handles GET /pd-enterprise/blog/posts/{slug}
func (p *Posts) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	post, err := p.app.GetPostBySlug(slug)
	if err != nil {
		handleJSONError(w, err, "getting post")
		return
	}

	respondData(w, http.StatusOK, "post found", presenters.PresentPost(post))
}
