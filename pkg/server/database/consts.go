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

package database

const (
	// VisibilityPublic means the note is readable by anyone
	VisibilityPublic = "public"
	// VisibilityPrivate means the note is readable only by its owner
	VisibilityPrivate = "private"

	// MembershipTierDefault is the tier assigned on the first role query
	// when a user has no membership set
	MembershipTierDefault = "tier-1"
)
