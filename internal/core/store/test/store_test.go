// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store_test contains the test suite for the in-memory content
// catalog: identifier assignment, lookups, related-content windows, and the
// local keyword search.
package store_test

import (
	"testing"

	"github.com/govardhan-digital/content-search/internal/core/model"
	"github.com/govardhan-digital/content-search/internal/core/store"
	"github.com/zeebo/assert"
)

// TestAddAssignsSequentialIDs verifies that videos and books receive
// sequential identifiers starting at one, in separate sequences.
func TestAddAssignsSequentialIDs(t *testing.T) {
	s := store.New()

	v1 := s.AddVideo(&model.Video{Title: "First"})
	v2 := s.AddVideo(&model.Video{Title: "Second"})
	b1 := s.AddBook(&model.Book{Title: "First Book"})

	assert.Equal(t, 1, v1.ID)
	assert.Equal(t, 2, v2.ID)
	assert.Equal(t, 1, b1.ID)
}

// TestGetByID verifies the lookup contract: present exactly for ids that
// were added, absent otherwise.
func TestGetByID(t *testing.T) {
	s := store.New()
	added := s.AddVideo(&model.Video{Title: "Only"})

	got, ok := s.GetVideoByID(added.ID)
	assert.True(t, ok)
	assert.Equal(t, "Only", got.Title)

	_, ok = s.GetVideoByID(99)
	assert.False(t, ok)

	_, ok = s.GetBookByID(1)
	assert.False(t, ok)
}

// TestCatalogSeed verifies the shipped catalog sizes and that the featured
// content and study materials are present.
func TestCatalogSeed(t *testing.T) {
	s := store.NewWithCatalog()

	assert.Equal(t, 10, len(s.GetAllVideos()))
	assert.Equal(t, 6, len(s.GetAllBooks()))
	assert.NotNil(t, s.FeaturedContent())
	assert.NotNil(t, s.FeaturedContent().Featured)
	assert.Equal(t, 3, len(s.FeaturedContent().RelatedLectures))
	assert.Equal(t, 3, len(s.StudyMaterials()))
}

// TestRelatedVideos verifies the related-content window: capped at five,
// the subject itself excluded, insertion order preserved, and an empty
// result for an unknown id.
func TestRelatedVideos(t *testing.T) {
	s := store.NewWithCatalog()

	related := s.GetRelatedVideos(1)
	assert.Equal(t, 5, len(related))
	for _, v := range related {
		if v.ID == 1 {
			t.Errorf("related videos must not contain the subject video")
		}
	}
	// Insertion order: the first related entry is the second seeded video.
	assert.Equal(t, 2, related[0].ID)

	assert.Equal(t, 0, len(s.GetRelatedVideos(999)))
}

// TestRelatedBooks verifies the four-entry cap for related books and the
// empty result for an unknown id.
func TestRelatedBooks(t *testing.T) {
	s := store.NewWithCatalog()

	related := s.GetRelatedBooks(1)
	assert.Equal(t, 4, len(related))
	for _, b := range related {
		if b.ID == 1 {
			t.Errorf("related books must not contain the subject book")
		}
	}

	assert.Equal(t, 0, len(s.GetRelatedBooks(999)))
}

// TestSearchLocal exercises the keyword scan: case-insensitive substring
// matching over titles, descriptions, and tags, and the whitespace-only
// short circuit.
func TestSearchLocal(t *testing.T) {
	s := store.NewWithCatalog()

	out := s.SearchLocal("varna", nil)
	assert.Equal(t, 1, len(out.Videos))
	assert.Equal(t, "Exclusive: Pujya Puri Shankaracharya Ji On Original Varna System", out.Videos[0].Title)

	// Tag-only match.
	tagged := s.SearchLocal("vedic system", nil)
	assert.Equal(t, 1, len(tagged.Videos))

	// Author match for books.
	byAuthor := s.SearchLocal("deutsch", nil)
	assert.Equal(t, 1, len(byAuthor.Books))

	blank := s.SearchLocal("   ", nil)
	assert.NotNil(t, blank.Videos)
	assert.NotNil(t, blank.Books)
	assert.Equal(t, 0, len(blank.Videos))
	assert.Equal(t, 0, len(blank.Books))
}

// TestSearchLocalChannelFilter verifies that the channel filter is an exact
// name match applied to videos only.
func TestSearchLocalChannelFilter(t *testing.T) {
	s := store.NewWithCatalog()

	onChannel := s.SearchLocal("shankaracharya", []string{"Govardhan Math, Puri"})
	assert.True(t, len(onChannel.Videos) > 0)

	// A partial channel name does not match.
	partial := s.SearchLocal("shankaracharya", []string{"Govardhan Math"})
	assert.Equal(t, 0, len(partial.Videos))
	assert.Equal(t, len(onChannel.Books), len(partial.Books))
}
