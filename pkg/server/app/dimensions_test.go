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
	"testing"

	"github.com/pd-enterprise/backend-service/pkg/assert"
	"github.com/pd-enterprise/backend-service/pkg/server/database"
	"github.com/pd-enterprise/backend-service/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestResolveAcademicLevel(t *testing.T) {
	db := testutils.InitNotesMemoryDB(t)

	id1, err := ResolveAcademicLevel(db, "10")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving level"))
	}

	var row database.AcademicLevel
	testutils.MustExec(t, db.Where("id = ?", id1).First(&row), "finding level")
	assert.Equal(t, row.Label, "10", "label mismatch")
	assert.Equal(t, row.Grade, 10, "grade mismatch")

	// Resolving the same label again must reuse the row
	id2, err := ResolveAcademicLevel(db, "10")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving level again"))
	}
	assert.Equal(t, id2, id1, "id mismatch")

	var count int64
	testutils.MustExec(t, db.Model(&database.AcademicLevel{}).Count(&count), "counting levels")
	assert.Equal(t, count, int64(1), "count mismatch")
}

func TestResolveAcademicLevelNonNumeric(t *testing.T) {
	db := testutils.InitNotesMemoryDB(t)

	id, err := ResolveAcademicLevel(db, "A-Level")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving level"))
	}

	var row database.AcademicLevel
	testutils.MustExec(t, db.Where("id = ?", id).First(&row), "finding level")
	assert.Equal(t, row.Label, "A-Level", "label mismatch")
	assert.Equal(t, row.Grade, 0, "grade should be zero for non-numeric labels")
}

func TestResolveTopic(t *testing.T) {
	db := testutils.InitNotesMemoryDB(t)

	id1, err := ResolveTopic(db, "Physics")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving topic"))
	}
	id2, err := ResolveTopic(db, "Physics")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving topic again"))
	}
	assert.Equal(t, id2, id1, "id mismatch")

	id3, err := ResolveTopic(db, "Chemistry")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving another topic"))
	}
	assert.NotEqual(t, id3, id1, "distinct names should resolve to distinct rows")
}

func TestResolveBoard(t *testing.T) {
	db := testutils.InitNotesMemoryDB(t)

	id1, err := ResolveBoard(db, "CBSE")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving board"))
	}
	id2, err := ResolveBoard(db, "CBSE")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving board again"))
	}
	assert.Equal(t, id2, id1, "id mismatch")
}

func TestGetBoardName(t *testing.T) {
	a := newTestApp(t)

	id, err := ResolveBoard(a.NotesDB, "CBSE")
	if err != nil {
		t.Fatal(errors.Wrap(err, "resolving board"))
	}

	name, err := a.GetBoardName(id)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting board name"))
	}
	assert.Equal(t, name, "CBSE", "name mismatch")

	name, err = a.GetBoardName(0)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting board name for zero id"))
	}
	assert.Equal(t, name, "", "zero id should resolve to empty name")
}
