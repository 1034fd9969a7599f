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

// Package model defines the core data structures for the application.
// This file, `catalog.go`, contains the two primary content types served by
// the platform: videos (lectures, interviews, and discourses hosted on an
// external video platform) and books (study texts with optional publishing
// metadata). It also defines the unified SearchResult envelope that every
// search path returns, regardless of whether the results came from the local
// catalog or from the live video provider.
//
// Structs:
//   - Video: A single video entry with presentation-ready text fields.
//   - Book: A single book entry with optional publishing details.
//   - TOCEntry, AuthorDetails, Review: Nested book metadata.
//   - SearchResult: The `{videos, books}` shape returned by all searches.
package model

// Video represents one video in the catalog. Fields holding durations, view
// counts, and upload dates are pre-formatted human-readable text rather than
// numeric values; the front end renders them verbatim.
//
// For videos fetched live from the provider, ID is the item's position in the
// provider response and is NOT stable across repeated searches. The provider's
// own identifier is kept in YouTubeID and is the field to use for linking.
type Video struct {
	ID            int      `json:"id"`            // Unique within a store instance; positional for live results.
	Title         string   `json:"title"`         // Always present.
	Description   string   `json:"description"`   // May be empty, never omitted.
	ThumbnailURL  string   `json:"thumbnailUrl"`  // Always present.
	VideoURL      string   `json:"videoUrl"`      // Watch-page URL on the hosting platform.
	YouTubeID     string   `json:"youtubeId"`     // The provider's native video identifier.
	Duration      string   `json:"duration"`      // Human-readable, e.g. "6:44".
	Platform      string   `json:"platform"`      // Hosting platform name, e.g. "YouTube".
	Channel       string   `json:"channel"`       // Channel display name, free text.
	UploadDate    string   `json:"uploadDate"`    // Short human date, e.g. "14 Sept 2023".
	Views         string   `json:"views"`         // Abbreviated text, e.g. "25K views".
	Likes         int      `json:"likes"`         // Raw like count, default 0.
	Subscribers   string   `json:"subscribers"`   // Abbreviated text, e.g. "450K"; empty for live results.
	Category      string   `json:"category"`      // E.g. "Interview", "Philosophy".
	Tags          []string `json:"tags"`          // Ordered; empty for live results.
	HasTranscript bool     `json:"hasTranscript"` // Whether a transcript is available.
	Transcript    string   `json:"transcript,omitempty"`
}

// TOCEntry is a single table-of-contents row in a book.
type TOCEntry struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// AuthorDetails holds supplemental information about a book's author.
type AuthorDetails struct {
	Bio string `json:"bio"`
}

// Review is a single reader review attached to a book.
type Review struct {
	Author  string `json:"author"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"` // 1 through 5.
	Content string `json:"content"`
}

// Book represents one book in the catalog. Title, Author, Description,
// CoverURL, and PublishYear are always present; the rest of the fields are
// optional publishing metadata and render as empty or null when absent.
type Book struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Author          string         `json:"author"`
	Description     string         `json:"description"`
	CoverURL        string         `json:"coverUrl"`
	PublishYear     string         `json:"publishYear"` // Free text, e.g. "1973".
	Publisher       string         `json:"publisher,omitempty"`
	Action          string         `json:"action,omitempty"` // E.g. "Preview", "Snippet view".
	Language        string         `json:"language,omitempty"`
	Pages           int            `json:"pages,omitempty"`
	ISBN            string         `json:"isbn,omitempty"`
	Format          string         `json:"format,omitempty"` // E.g. "Paperback", "Hardcover".
	FileURL         string         `json:"fileUrl,omitempty"`
	Category        string         `json:"category,omitempty"`
	TableOfContents []*TOCEntry    `json:"tableOfContents,omitempty"`
	AuthorDetails   *AuthorDetails `json:"authorDetails,omitempty"`
	Reviews         []*Review      `json:"reviews,omitempty"`
}

// SearchResult is the unified result shape returned by every search path.
// Both slices are always non-nil so the serialized form is `[]`, not `null`;
// downstream rendering iterates them without nil checks.
type SearchResult struct {
	Videos []*Video `json:"videos"`
	Books  []*Book  `json:"books"`
}

// NewSearchResult creates an empty SearchResult with both slices initialized.
//
// Outputs:
//   - *SearchResult: A pointer to a result with zero videos and zero books.
func NewSearchResult() *SearchResult {
	return &SearchResult{
		Videos: make([]*Video, 0),
		Books:  make([]*Book, 0),
	}
}
