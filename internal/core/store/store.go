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

// Package store implements the in-memory content catalog. The store owns the
// authoritative collections of videos and books, plus the fixed featured and
// study-material singletons, and answers direct lookups, related-item queries,
// and local keyword search.
//
// The catalog is seeded once at startup and treated as immutable afterwards,
// so concurrent reads need no synchronization. Identifier counters are owned
// exclusively by the store; nothing else mutates the collections.
//
// Functions:
//   - New: Creates an empty store (used by tests and callers that seed
//     their own entries).
//   - NewWithCatalog: Creates a store pre-populated with the bundled catalog.
package store

import (
	"strings"

	"github.com/govardhan-digital/content-search/internal/core/model"
)

const (
	// maxRelatedVideos caps the size of a related-videos response.
	maxRelatedVideos = 5
	// maxRelatedBooks caps the size of a related-books response.
	maxRelatedBooks = 4
)

// ContentStore holds the fixed catalog. Slices preserve insertion order for
// listing and search results; maps provide O(1) lookup by identifier.
type ContentStore struct {
	videos     []*model.Video
	books      []*model.Book
	videosByID map[int]*model.Video
	booksByID  map[int]*model.Book

	featured  *model.FeaturedContent
	materials []*model.StudyMaterial

	nextVideoID int
	nextBookID  int
}

// New creates an empty ContentStore with initialized collections and
// identifier counters starting at 1.
func New() *ContentStore {
	return &ContentStore{
		videos:      make([]*model.Video, 0),
		books:       make([]*model.Book, 0),
		videosByID:  make(map[int]*model.Video),
		booksByID:   make(map[int]*model.Book),
		materials:   make([]*model.StudyMaterial, 0),
		nextVideoID: 1,
		nextBookID:  1,
	}
}

// AddVideo assigns the next video identifier to v, records it in the catalog,
// and returns it. Insertion order is preserved for all listing operations.
func (s *ContentStore) AddVideo(v *model.Video) *model.Video {
	v.ID = s.nextVideoID
	s.nextVideoID++
	s.videos = append(s.videos, v)
	s.videosByID[v.ID] = v
	return v
}

// AddBook assigns the next book identifier to b, records it in the catalog,
// and returns it.
func (s *ContentStore) AddBook(b *model.Book) *model.Book {
	b.ID = s.nextBookID
	s.nextBookID++
	s.books = append(s.books, b)
	s.booksByID[b.ID] = b
	return b
}

// GetAllVideos returns every video in insertion order.
func (s *ContentStore) GetAllVideos() []*model.Video {
	return s.videos
}

// GetVideoByID looks up a video by identifier. The second return value is
// false when no video has that identifier; absence is not an error.
func (s *ContentStore) GetVideoByID(id int) (*model.Video, bool) {
	v, ok := s.videosByID[id]
	return v, ok
}

// GetRelatedVideos returns up to five other videos for the given identifier,
// excluding the source video itself, in insertion order. When the identifier
// is unknown, it returns an empty slice rather than an error.
//
// Relatedness is an insertion-order slice, not a similarity ranking. This is
// a deliberate placeholder policy; similarity search would be a separate
// feature with its own index.
func (s *ContentStore) GetRelatedVideos(id int) []*model.Video {
	out := make([]*model.Video, 0, maxRelatedVideos)
	if _, ok := s.videosByID[id]; !ok {
		return out
	}
	for _, v := range s.videos {
		if v.ID == id {
			continue
		}
		out = append(out, v)
		if len(out) == maxRelatedVideos {
			break
		}
	}
	return out
}

// GetAllBooks returns every book in insertion order.
func (s *ContentStore) GetAllBooks() []*model.Book {
	return s.books
}

// GetBookByID looks up a book by identifier. The second return value is false
// when no book has that identifier.
func (s *ContentStore) GetBookByID(id int) (*model.Book, bool) {
	b, ok := s.booksByID[id]
	return b, ok
}

// GetRelatedBooks returns up to four other books for the given identifier,
// excluding the source book, in insertion order. Unknown identifiers yield an
// empty slice. Same placeholder policy as GetRelatedVideos.
func (s *ContentStore) GetRelatedBooks(id int) []*model.Book {
	out := make([]*model.Book, 0, maxRelatedBooks)
	if _, ok := s.booksByID[id]; !ok {
		return out
	}
	for _, b := range s.books {
		if b.ID == id {
			continue
		}
		out = append(out, b)
		if len(out) == maxRelatedBooks {
			break
		}
	}
	return out
}

// FeaturedContent returns the curated featured-content singleton.
func (s *ContentStore) FeaturedContent() *model.FeaturedContent {
	return s.featured
}

// StudyMaterials returns the fixed study-material collections.
func (s *ContentStore) StudyMaterials() []*model.StudyMaterial {
	return s.materials
}

// SearchLocal performs a case-insensitive substring search over the catalog
// and returns the unified result shape.
//
// Videos are filtered first by channel membership when channelFilters is
// non-empty (exact equality against the channel field, no fuzzy matching),
// then by substring match against title, description, or any tag. Books match
// on title, author, description, or category; channel filters never apply to
// books because books have no channel.
//
// Matching is substring-based with no tokenization, stemming, or ranking;
// results preserve catalog insertion order. A blank or whitespace-only query
// returns the empty result shape without scanning the catalog.
//
// Inputs:
//   - query: The free-text search string.
//   - channelFilters: Optional channel display names to restrict videos to.
//
// Outputs:
//   - *model.SearchResult: Matching videos and books, both slices non-nil.
func (s *ContentStore) SearchLocal(query string, channelFilters []string) *model.SearchResult {
	out := model.NewSearchResult()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}

	for _, v := range s.videos {
		if len(channelFilters) > 0 && !containsExact(channelFilters, v.Channel) {
			continue
		}
		if videoMatches(v, q) {
			out.Videos = append(out.Videos, v)
		}
	}

	for _, b := range s.books {
		if bookMatches(b, q) {
			out.Books = append(out.Books, b)
		}
	}

	return out
}

// containsExact reports whether want equals one of the entries exactly.
func containsExact(entries []string, want string) bool {
	for _, e := range entries {
		if e == want {
			return true
		}
	}
	return false
}

// videoMatches reports whether the lowercased query is a substring of the
// video's title, description, or any tag.
func videoMatches(v *model.Video, q string) bool {
	if strings.Contains(strings.ToLower(v.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(v.Description), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// bookMatches reports whether the lowercased query is a substring of the
// book's title, author, description, or category.
func bookMatches(b *model.Book, q string) bool {
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Description), q) ||
		strings.Contains(strings.ToLower(b.Category), q)
}
