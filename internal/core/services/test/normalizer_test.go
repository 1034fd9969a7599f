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

// Package services_test contains the test suite for the services package.
// This file tests the pure normalization helpers that convert raw provider
// fields into the catalog's display conventions.
package services_test

import (
	"testing"

	"github.com/govardhan-digital/content-search/internal/core/services"
	"github.com/govardhan-digital/content-search/internal/youtube"
	"github.com/zeebo/assert"
)

// TestFormatDuration verifies the ISO 8601 duration to display-text
// conversion: hours appear only when present, minutes are not zero-padded,
// and seconds always are.
func TestFormatDuration(t *testing.T) {
	cases := []struct {
		iso  string
		want string
	}{
		{"PT1H2M3S", "1:2:03"},
		{"PT45S", "0:45"},
		{"PT3M", "3:00"},
		{"PT1H", "1:0:00"},
		{"PT12M34S", "12:34"},
		{"PT", "0:00"},
		{"", ""},
		{"not-a-duration", ""},
	}
	for _, c := range cases {
		got := services.FormatDuration(c.iso)
		if got != c.want {
			t.Errorf("FormatDuration(%q) = %q, want %q", c.iso, got, c.want)
		}
	}
}

// TestFormatViewCount verifies the three abbreviation tiers for view counts.
func TestFormatViewCount(t *testing.T) {
	assert.Equal(t, "500 views", services.FormatViewCount(500))
	assert.Equal(t, "1.5K views", services.FormatViewCount(1500))
	assert.Equal(t, "25.0K views", services.FormatViewCount(25000))
	assert.Equal(t, "2.5M views", services.FormatViewCount(2500000))
	assert.Equal(t, "0 views", services.FormatViewCount(0))
}

// TestFormatUploadDate verifies the RFC 3339 to short human date conversion,
// including the catalog's "Sept" month abbreviation.
func TestFormatUploadDate(t *testing.T) {
	assert.Equal(t, "14 Sept 2023", services.FormatUploadDate("2023-09-14T10:00:00Z"))
	assert.Equal(t, "5 Jan 2024", services.FormatUploadDate("2024-01-05T00:00:00Z"))
	assert.Equal(t, "31 Dec 2022", services.FormatUploadDate("2022-12-31T23:59:59Z"))
	assert.Equal(t, "", services.FormatUploadDate(""))
	assert.Equal(t, "", services.FormatUploadDate("yesterday"))
}

// TestNormalizeVideo verifies the full assembly of a Video from a search
// item and its detail record: url construction, display formatting, and the
// category and tag defaults.
func TestNormalizeVideo(t *testing.T) {
	item := youtube.SearchItem{
		VideoID:      "dQw4w9WgXcQ",
		Title:        "Evening Discourse",
		Description:  "A talk on the Gita.",
		ChannelTitle: "Govardhan Math, Puri",
		PublishedAt:  "2023-09-14T10:00:00Z",
		ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
	}
	detail := &youtube.VideoDetail{
		ID:       "dQw4w9WgXcQ",
		Duration: "PT1H2M3S",
		Stats:    &youtube.VideoStats{ViewCount: 25000, LikeCount: 1200},
	}

	v := services.NormalizeVideo(3, item, detail, "Fallback Channel")

	assert.Equal(t, 3, v.ID)
	assert.Equal(t, "dQw4w9WgXcQ", v.YouTubeID)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", v.VideoURL)
	assert.Equal(t, "Evening Discourse", v.Title)
	assert.Equal(t, "Govardhan Math, Puri", v.Channel)
	assert.Equal(t, "1:2:03", v.Duration)
	assert.Equal(t, "25.0K views", v.Views)
	assert.Equal(t, 1200, v.Likes)
	assert.Equal(t, "14 Sept 2023", v.UploadDate)
	assert.Equal(t, "YouTube", v.Platform)
	assert.Equal(t, "Spirituality", v.Category)
	assert.NotNil(t, v.Tags)
	assert.Equal(t, 0, len(v.Tags))
}

// TestNormalizeVideoWithoutDetail verifies that a missing detail record
// leaves the duration and view fields empty rather than failing, and that
// the fallback channel fills an empty channel title.
func TestNormalizeVideoWithoutDetail(t *testing.T) {
	item := youtube.SearchItem{
		VideoID:     "abc123",
		Title:       "Morning Aarti",
		PublishedAt: "2024-01-05T06:00:00Z",
	}

	v := services.NormalizeVideo(0, item, nil, "Govardhan Math, Puri")

	assert.Equal(t, 0, v.ID)
	assert.Equal(t, "", v.Duration)
	assert.Equal(t, "", v.Views)
	assert.Equal(t, 0, v.Likes)
	assert.Equal(t, "Govardhan Math, Puri", v.Channel)
}
