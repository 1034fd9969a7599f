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
// This file tests the search orchestrator end to end over the seeded
// catalog: path selection, filter defaulting, and the blank-query
// short circuit.
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/govardhan-digital/content-search/internal/core/services"
	"github.com/govardhan-digital/content-search/internal/core/store"
	test "github.com/govardhan-digital/content-search/internal/testutil"
	"github.com/govardhan-digital/content-search/internal/youtube"
	"github.com/zeebo/assert"
)

// newSearchService builds an orchestrator over the full seeded catalog and
// the given provider fake, with the platform's default channel applied.
func newSearchService(provider *fakeProvider) (*services.SearchService, *store.ContentStore) {
	cfg := test.GetConfig()
	contentStore := store.NewWithCatalog()
	yt := &services.YouTubeService{
		Provider:        provider,
		Resolver:        services.NewChannelResolver(provider, cfg.YouTube.KnownChannels),
		FallbackChannel: cfg.YouTube.DefaultChannel,
	}
	return services.NewSearchService(contentStore, yt, []string{cfg.YouTube.DefaultChannel}), contentStore
}

// TestSearchLocalKeyword runs a local keyword search against the seeded
// catalog and checks that matching is case-insensitive and spans both
// videos and books.
func TestSearchLocalKeyword(t *testing.T) {
	searchService, _ := newSearchService(&fakeProvider{})

	out := searchService.Search(context.Background(), "advaita", nil, false)

	assert.Equal(t, 1, len(out.Videos))
	assert.Equal(t, "Exclusive interview with Puri Shankaracharya Ji | Govardhan Math", out.Videos[0].Title)
	assert.Equal(t, 2, len(out.Books))
	assert.Equal(t, "Advaita Vedanta: A Philosophical Reconstruction", out.Books[0].Title)
	assert.Equal(t, "SHANKARACHARYA: His Life and Times", out.Books[1].Title)

	// Same query uppercased yields the same results.
	upper := searchService.Search(context.Background(), "ADVAITA", nil, false)
	assert.Equal(t, len(out.Videos), len(upper.Videos))
	assert.Equal(t, len(out.Books), len(upper.Books))
}

// TestSearchBlankQuery verifies the short circuit: a blank or
// whitespace-only query returns the empty shape with both slices non-nil
// and no collaborator touched.
func TestSearchBlankQuery(t *testing.T) {
	provider := &fakeProvider{}
	searchService, _ := newSearchService(provider)

	for _, q := range []string{"", "   ", "\t\n"} {
		out := searchService.Search(context.Background(), q, nil, true)
		assert.NotNil(t, out.Videos)
		assert.NotNil(t, out.Books)
		assert.Equal(t, 0, len(out.Videos))
		assert.Equal(t, 0, len(out.Books))
	}
	assert.Equal(t, 0, provider.searchCalls)
}

// TestSearchFilterDefaulting verifies the nil-versus-empty filter contract:
// a nil filter list scopes videos to the default channel, an explicitly
// empty list searches every channel, and an unmatched explicit filter
// excludes all videos while leaving book matches untouched.
func TestSearchFilterDefaulting(t *testing.T) {
	searchService, _ := newSearchService(&fakeProvider{})

	// Every seeded video belongs to the default channel, so the nil
	// filter and the empty-but-present list agree on this catalog.
	defaulted := searchService.Search(context.Background(), "advaita", nil, false)
	assert.Equal(t, 1, len(defaulted.Videos))
	all := searchService.Search(context.Background(), "advaita", []string{}, false)
	assert.Equal(t, 1, len(all.Videos))

	// An explicit filter naming a channel with no seeded videos excludes
	// every video; books are never channel-scoped.
	scoped := searchService.Search(context.Background(), "advaita", []string{"Some Other Channel"}, false)
	assert.Equal(t, 0, len(scoped.Videos))
	assert.Equal(t, 2, len(scoped.Books))
}

// TestSearchExternalPath verifies that useExternal routes videos through the
// provider while books still come from the local catalog, unfiltered.
func TestSearchExternalPath(t *testing.T) {
	provider := &fakeProvider{
		searchItems: []youtube.SearchItem{{VideoID: "vid-a", Title: "Live Result"}},
		details:     []youtube.VideoDetail{{ID: "vid-a", Duration: "PT1M"}},
	}
	searchService, contentStore := newSearchService(provider)

	out := searchService.Search(context.Background(), "advaita", nil, true)

	assert.Equal(t, 1, len(out.Videos))
	assert.Equal(t, "Live Result", out.Videos[0].Title)
	assert.Equal(t, len(contentStore.GetAllBooks()), len(out.Books))
	// The default channel filter scoped the provider search to the seeded
	// channel id.
	assert.Equal(t, "UCqFCrpSpeqbzYaJbRn6vTkg", provider.lastChannelID)
}

// TestSearchExternalFailure verifies that a provider failure on the live
// path still returns the full result shape: empty videos, all books.
func TestSearchExternalFailure(t *testing.T) {
	provider := &fakeProvider{searchErr: errors.New("provider down")}
	searchService, contentStore := newSearchService(provider)

	out := searchService.Search(context.Background(), "advaita", nil, true)

	assert.NotNil(t, out.Videos)
	assert.Equal(t, 0, len(out.Videos))
	assert.Equal(t, len(contentStore.GetAllBooks()), len(out.Books))
}
