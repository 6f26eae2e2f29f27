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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pd-enterprise/backend-service/pkg/assert"
	"github.com/pd-enterprise/backend-service/pkg/server/database"
	"github.com/pd-enterprise/backend-service/pkg/server/presenters"
	"github.com/pd-enterprise/backend-service/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestGetPostsEndpoint(t *testing.T) {
	a := newControllerTestApp(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	p1 := database.Post{Slug: "first-post", Title: "First", Author: "Alice", Date: "2025-01-01"}
	testutils.MustExec(t, a.DB.Save(&p1), "preparing p1")
	p2 := database.Post{Slug: "second-post", Title: "Second", Author: "Bob", Date: "2025-01-02"}
	testutils.MustExec(t, a.DB.Save(&p2), "preparing p2")

	req := testutils.MakeReq(server.URL, "GET", "/pd-enterprise/blog/posts", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload struct {
		Data []presenters.Post `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, len(payload.Data), 2, "post count mismatch")
	assert.Equal(t, payload.Data[0].Slug, "first-post", "first slug mismatch")
	assert.Equal(t, payload.Data[1].Slug, "second-post", "second slug mismatch")
}

func TestGetPostEndpoint(t *testing.T) {
	a := newControllerTestApp(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	post := database.Post{Slug: "first-post", Title: "First", Content: "hello"}
	testutils.MustExec(t, a.DB.Save(&post), "preparing post")

	req := testutils.MakeReq(server.URL, "GET", "/pd-enterprise/blog/posts/first-post", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload struct {
		Data presenters.Post `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, payload.Data.Title, "First", "title mismatch")
	assert.Equal(t, payload.Data.Content, "hello", "content mismatch")
}

func TestGetPostEndpointMissing(t *testing.T) {
	a := newControllerTestApp(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/pd-enterprise/blog/posts/no-such-post", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "")
}
