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

package presenters

import (
	"github.com/pd-enterprise/backend-service/pkg/server/database"
)

// Post is a result of PresentPost
type Post struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// PresentPost presents a blog post
func PresentPost(post database.Post) Post {
	return Post{
		ID:       post.ID,
		Slug:     post.Slug,
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Author:   post.Author,
		Date:     post.Date,
		Category: post.Category,
		Content:  post.Content,
	}
}

// PresentPosts presents a blog post listing
func PresentPosts(posts []database.Post) []Post {
	ret := []Post{}

	for _, post := range posts {
		ret = append(ret, PresentPost(post))
	}

	return ret
}
