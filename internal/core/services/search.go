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
// file, `search.go`, defines the SearchService, the single entry point that
// reconciles "search the fixed local catalog" against "search the live
// provider". The two paths are modeled as implementations of one
// ContentSearcher capability, selected per request, so call sites never
// branch on a flag themselves.
//
// Every path returns the same `{videos, books}` shape, always successfully:
// all failure kinds are absorbed further down (resolver, adapter), so
// callers of SearchService have no error branches at all.
package services

import (
	"context"
	"strings"

	"github.com/govardhan-digital/content-search/internal/core/model"
	"github.com/govardhan-digital/content-search/internal/core/store"
)

// ContentSearcher is the shared capability of the local catalog and the live
// provider path: a keyword search with optional channel filters yielding the
// unified result shape.
type ContentSearcher interface {
	Search(ctx context.Context, query string, channelFilters []string) *model.SearchResult
}

// localSearcher answers searches entirely from the in-memory catalog.
type localSearcher struct {
	store *store.ContentStore
}

func (l *localSearcher) Search(_ context.Context, query string, channelFilters []string) *model.SearchResult {
	return l.store.SearchLocal(query, channelFilters)
}

// liveSearcher answers video searches from the external provider. Books
// still come from the local catalog; there is no external book source, and
// the full book list is returned unfiltered, matching the product's "live"
// view. Only single-channel scoping is supported externally, so just the
// first channel filter is honored.
type liveSearcher struct {
	youtube *YouTubeService
	store   *store.ContentStore
}

func (l *liveSearcher) Search(ctx context.Context, query string, channelFilters []string) *model.SearchResult {
	var videos []*model.Video
	if len(channelFilters) > 0 {
		videos = l.youtube.SearchInChannel(ctx, query, channelFilters[0], DefaultMaxResults)
	} else {
		videos = l.youtube.SearchGlobal(ctx, query, DefaultMaxResults)
	}
	return &model.SearchResult{Videos: videos, Books: l.store.GetAllBooks()}
}

// SearchService is the search orchestrator.
type SearchService struct {
	local ContentSearcher
	live  ContentSearcher
	// defaultChannels is applied when a caller passes no filter list at
	// all. Defaulting to the platform's primary content source (rather
	// than "all channels") is an explicit product policy; searching all
	// channels requires an empty-but-present filter list.
	defaultChannels []string
}

// NewSearchService wires the orchestrator over the local catalog and the
// external adapter.
//
// Inputs:
//   - contentStore: The seeded in-memory catalog.
//   - yt: The external search adapter.
//   - defaultChannels: Channel names substituted for an absent filter list,
//     typically the platform's primary channel.
//
// Outputs:
//   - *SearchService: The ready-to-use orchestrator.
func NewSearchService(contentStore *store.ContentStore, yt *YouTubeService, defaultChannels []string) *SearchService {
	return &SearchService{
		local:           &localSearcher{store: contentStore},
		live:            &liveSearcher{youtube: yt, store: contentStore},
		defaultChannels: defaultChannels,
	}
}

// Search runs a keyword search and returns the unified result shape.
//
// A blank or whitespace-only query short-circuits to the empty shape before
// any collaborator is touched. A nil channelFilters slice means "caller sent
// no filters" and is replaced with the configured default channels; a
// non-nil empty slice means "all channels" and is passed through untouched.
// useExternal selects the live provider path for videos; books always come
// from the local catalog either way.
func (s *SearchService) Search(ctx context.Context, query string, channelFilters []string, useExternal bool) *model.SearchResult {
	if strings.TrimSpace(query) == "" {
		return model.NewSearchResult()
	}
	if channelFilters == nil {
		channelFilters = s.defaultChannels
	}
	searcher := s.local
	if useExternal {
		searcher = s.live
	}
	return searcher.Search(ctx, query, channelFilters)
}
