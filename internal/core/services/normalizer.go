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

// Package services contains the business logic for the search layer. This
// file, `normalizer.go`, is the pure transformation step that converts one
// raw provider search item (plus its optional matching detail record) into
// the application's Video representation: ISO 8601 durations become "M:SS"
// text, raw view counts become abbreviated "25K views" text, and RFC 3339
// timestamps become short human dates matching the catalog's conventions.
//
// Functions:
//   - FormatDuration: ISO 8601 duration token to display text.
//   - FormatViewCount: Raw count to abbreviated display text.
//   - FormatUploadDate: RFC 3339 timestamp to short human date.
//   - NormalizeVideo: Assembles a full Video from a search item and detail.
package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/govardhan-digital/content-search/internal/core/model"
	"github.com/govardhan-digital/content-search/internal/youtube"
)

// defaultCategory is assigned to every externally sourced video; the
// provider has no equivalent field.
const defaultCategory = "Spirituality"

// durationPattern matches the provider's ISO 8601 duration tokens, e.g.
// "PT1H2M3S". Every component is optional.
var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// monthAbbrevs are the month abbreviations used across the catalog. Note
// "Sept", not "Sep", to match the seeded upload dates.
var monthAbbrevs = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sept", "Oct", "Nov", "Dec",
}

// FormatDuration converts an ISO 8601 duration token into the display form
// used throughout the catalog: hours appear only when present, minutes
// default to "0", and seconds are always two digits. "PT1H2M3S" becomes
// "1:2:03" and "PT45S" becomes "0:45". An empty or unrecognized token yields
// an empty string, not a zero default.
func FormatDuration(iso string) string {
	if iso == "" {
		return ""
	}
	m := durationPattern.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}
	hours := ""
	if m[1] != "" {
		hours = m[1] + ":"
	}
	minutes := "0:"
	if m[2] != "" {
		minutes = m[2] + ":"
	}
	seconds := "00"
	if m[3] != "" {
		seconds = m[3]
		if len(seconds) == 1 {
			seconds = "0" + seconds
		}
	}
	return hours + minutes + seconds
}

// FormatViewCount abbreviates a raw view count: at least a million becomes
// "<N.N>M views", at least a thousand "<N.N>K views", anything smaller the
// plain count.
func FormatViewCount(views uint64) string {
	switch {
	case views >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(views)/1_000_000)
	case views >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(views)/1_000)
	default:
		return fmt.Sprintf("%d views", views)
	}
}

// FormatUploadDate reformats the provider's RFC 3339 publish timestamp into
// the short human form used by the catalog, e.g. "14 Sept 2023". An empty or
// unparseable timestamp yields an empty string.
func FormatUploadDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthAbbrevs[t.Month()-1], t.Year())
}

// NormalizeVideo converts one raw provider search item into a Video.
//
// Inputs:
//   - id: The synthetic identifier assigned to this row, which is its
//     position in the provider response. It is not stable across repeated
//     searches; the provider's own identifier lands in YouTubeID.
//   - item: The raw search item.
//   - detail: The matching detail record, or nil when the provider's detail
//     endpoint omitted this id. A nil detail means the duration and view
//     fields stay empty; that is "no data available", not an error.
//   - fallbackChannel: Channel display name used when the snippet omits one.
//
// Outputs:
//   - *model.Video: A presentation-ready video. Title, description, and
//     thumbnail default to empty strings rather than staying absent, the
//     category defaults to "Spirituality", and tags are an empty sequence.
func NormalizeVideo(id int, item youtube.SearchItem, detail *youtube.VideoDetail, fallbackChannel string) *model.Video {
	v := &model.Video{
		ID:           id,
		Title:        item.Title,
		Description:  item.Description,
		ThumbnailURL: item.ThumbnailURL,
		VideoURL:     "https://www.youtube.com/watch?v=" + item.VideoID,
		YouTubeID:    item.VideoID,
		Platform:     "YouTube",
		Channel:      item.ChannelTitle,
		UploadDate:   FormatUploadDate(item.PublishedAt),
		Category:     defaultCategory,
		Tags:         []string{},
	}
	if v.Channel == "" {
		v.Channel = fallbackChannel
	}
	if detail != nil {
		v.Duration = FormatDuration(detail.Duration)
		if detail.Stats != nil {
			v.Views = FormatViewCount(detail.Stats.ViewCount)
			v.Likes = int(detail.Stats.LikeCount)
		}
	}
	return v
}
