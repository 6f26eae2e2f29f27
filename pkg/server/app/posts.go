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

	"github.com/pd-enterprise/backend-service/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetPosts returns all published blog posts
func (a *App) GetPosts() ([]database.Post, error) {
	posts := []database.Post{}
	if err := a.DB.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding posts")
	}

	return posts, nil
}

// GetPostBySlug returns the blog post with the given slug.
// It returns ErrNotFound if no such post exists.
func (a *App) GetPostBySlug(slug string) (database.Post, error) {
	var post database.Post
	err := a.DB.Where("slug = ?", slug).First(&post).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Post{}, ErrNotFound
	}
	if err != nil {
		return database.Post{}, pkgErrors.Wrap(err, "finding post")
	}

	return post, nil
}
