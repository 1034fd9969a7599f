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
// file, `youtube.go`, implements the external search adapter: keyword and
// channel searches against the live video provider, normalized into the
// application's Video representation.
//
// Every method follows the same shape: one search call, then one batched
// detail call for the returned ids (batching avoids N per-video requests),
// then normalization preserving the provider's ordering. The provider is
// supplementary, not authoritative, so every transport or quota failure is
// logged and absorbed into an empty result. Nothing in this file raises an
// error to its caller, and nothing retries.
package services

import (
	"context"
	"log/slog"

	"github.com/govardhan-digital/content-search/internal/core/model"
	"github.com/govardhan-digital/content-search/internal/youtube"
)

// DefaultMaxResults is the result ceiling applied when a caller does not
// specify one.
const DefaultMaxResults = 20

// VideoProvider is the set of provider capabilities the adapter depends on.
// The concrete implementation is the rate-limited client in
// internal/youtube; tests substitute fakes.
type VideoProvider interface {
	SearchVideos(ctx context.Context, query string, channelID string, maxResults int64) ([]youtube.SearchItem, error)
	RecentChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]youtube.SearchItem, error)
	VideoDetails(ctx context.Context, ids []string) ([]youtube.VideoDetail, error)
}

// YouTubeService is the external search adapter. It owns no state beyond its
// collaborators and is safe for concurrent use.
type YouTubeService struct {
	Provider VideoProvider
	Resolver *ChannelResolver
	// FallbackChannel is substituted when the provider omits a channel
	// title on a channel-scoped result.
	FallbackChannel string
}

// SearchGlobal searches the whole provider by keyword and returns normalized
// videos in the provider's ordering. maxResults values of zero or below fall
// back to DefaultMaxResults. Provider failures yield an empty slice.
func (s *YouTubeService) SearchGlobal(ctx context.Context, query string, maxResults int64) []*model.Video {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	items, err := s.Provider.SearchVideos(ctx, query, "", maxResults)
	if err != nil {
		slog.ErrorContext(ctx, "youtube search failed", "op", "search_global", "query", query, "error", err)
		return []*model.Video{}
	}
	// Global results keep whatever channel title the provider reports,
	// with no fallback substitution.
	return s.collect(ctx, items, "")
}

// SearchInChannel searches one channel by keyword. The channel display name
// is resolved to a provider id first; when resolution fails the search
// returns an empty slice (the failure has already been logged by the
// resolver) rather than raising to the caller.
func (s *YouTubeService) SearchInChannel(ctx context.Context, query string, channelName string, maxResults int64) []*model.Video {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	channelID, ok := s.Resolver.Resolve(ctx, channelName)
	if !ok {
		return []*model.Video{}
	}
	items, err := s.Provider.SearchVideos(ctx, query, channelID, maxResults)
	if err != nil {
		slog.ErrorContext(ctx, "youtube search failed", "op", "search_in_channel", "query", query, "channel", channelName, "error", err)
		return []*model.Video{}
	}
	return s.collect(ctx, items, s.FallbackChannel)
}

// ListChannelVideos returns a channel's most recent uploads, no keyword
// constraint, ordered by upload recency. Resolution and provider failures
// yield an empty slice.
func (s *YouTubeService) ListChannelVideos(ctx context.Context, channelName string, maxResults int64) []*model.Video {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	channelID, ok := s.Resolver.Resolve(ctx, channelName)
	if !ok {
		return []*model.Video{}
	}
	items, err := s.Provider.RecentChannelVideos(ctx, channelID, maxResults)
	if err != nil {
		slog.ErrorContext(ctx, "youtube search failed", "op", "list_channel_videos", "channel", channelName, "error", err)
		return []*model.Video{}
	}
	return s.collect(ctx, items, s.FallbackChannel)
}

// collect runs the shared second half of every search: gather the returned
// video ids, fetch their details in one batched call, and normalize each
// search item in its original position.
//
// A detail record can be absent for an id the provider's detail endpoint
// omits; the video is still returned, just without duration or view data.
// Identifiers assigned here are positional within this response and are not
// stable across repeated calls.
func (s *YouTubeService) collect(ctx context.Context, items []youtube.SearchItem, fallbackChannel string) []*model.Video {
	out := make([]*model.Video, 0, len(items))
	if len(items) == 0 {
		return out
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.VideoID != "" {
			ids = append(ids, item.VideoID)
		}
	}
	if len(ids) == 0 {
		slog.WarnContext(ctx, "no valid video ids in search results")
		return out
	}

	details, err := s.Provider.VideoDetails(ctx, ids)
	if err != nil {
		slog.ErrorContext(ctx, "youtube detail fetch failed", "ids", len(ids), "error", err)
		return out
	}
	byID := make(map[string]*youtube.VideoDetail, len(details))
	for i := range details {
		byID[details[i].ID] = &details[i]
	}

	for i, item := range items {
		out = append(out, NormalizeVideo(i, item, byID[item.VideoID], fallbackChannel))
	}
	return out
}
