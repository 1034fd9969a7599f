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

// Package youtube wraps the handful of YouTube Data API calls the platform
// relies on. This file defines the raw provider-shaped types the client
// returns. They deliberately mirror the API response fields rather than the
// application's Video model; the services layer normalizes them into
// presentation-ready values.
package youtube

// SearchItem is one result row from a video search or channel listing. All
// fields are copied from the API snippet with missing values left empty.
type SearchItem struct {
	VideoID      string // The provider's native video identifier.
	Title        string
	Description  string
	ChannelTitle string
	PublishedAt  string // RFC 3339 timestamp as reported by the API.
	ThumbnailURL string // High-resolution thumbnail URL.
}

// VideoStats holds the statistics block of a video detail record.
type VideoStats struct {
	ViewCount uint64
	LikeCount uint64
}

// VideoDetail is one row from a batched video-details call. Duration is the
// raw ISO 8601 token (e.g. "PT6M44S"); it is empty when the API omits the
// contentDetails part, and Stats is nil when the statistics part is omitted.
type VideoDetail struct {
	ID       string
	Duration string
	Stats    *VideoStats
}

// ChannelItem is one result row from a channel search.
type ChannelItem struct {
	ChannelID string
	Title     string
}
