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
// file, `channels.go`, implements the channel resolver: it translates a
// channel display name (the only thing the catalog stores) into the
// provider's stable channel identifier, memoizing results for the lifetime
// of the resolver. Channel ids are effectively permanent, so entries are
// never invalidated or expired.
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/govardhan-digital/content-search/internal/youtube"
)

// ChannelSearcher is the single provider capability the resolver needs:
// a free-text channel search whose first result is the best name match.
type ChannelSearcher interface {
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]youtube.ChannelItem, error)
}

// ChannelResolver maps channel display names to provider channel ids with an
// instance-owned cache, so tests can construct isolated resolvers without
// cross-test pollution.
//
// The mutex guards the map itself, not the provider lookup: two concurrent
// resolutions of the same unseen name may both call the provider. That is
// accepted; the lookup is idempotent and both writers converge on the same
// value, which is cheaper than single-flighting.
type ChannelResolver struct {
	provider ChannelSearcher

	mu    sync.Mutex
	cache map[string]string
}

// NewChannelResolver creates a resolver backed by the given provider, with
// its cache pre-populated from seed. The seed carries the platform's
// well-known channels so the common case never touches the provider.
func NewChannelResolver(provider ChannelSearcher, seed map[string]string) *ChannelResolver {
	cache := make(map[string]string, len(seed))
	for name, id := range seed {
		cache[name] = id
	}
	return &ChannelResolver{provider: provider, cache: cache}
}

// Resolve returns the provider channel id for a display name.
//
// A cached name returns immediately with no external call. Otherwise the
// resolver issues a channel search with the name as a free-text query, takes
// the first match, caches it, and returns it. When the provider yields no
// match or fails, Resolve returns ("", false) and leaves the cache untouched;
// callers treat that as "this filter produces zero results", never as a
// fatal error.
func (r *ChannelResolver) Resolve(ctx context.Context, channelName string) (string, bool) {
	r.mu.Lock()
	id, ok := r.cache[channelName]
	r.mu.Unlock()
	if ok {
		return id, true
	}

	items, err := r.provider.SearchChannels(ctx, channelName, 1)
	if err != nil {
		slog.ErrorContext(ctx, "channel lookup failed", "channel", channelName, "error", err)
		return "", false
	}
	if len(items) == 0 {
		slog.WarnContext(ctx, "no channel found", "channel", channelName)
		return "", false
	}

	id = items[0].ChannelID
	slog.InfoContext(ctx, "resolved channel", "channel", channelName, "channel_id", id)
	r.mu.Lock()
	r.cache[channelName] = id
	r.mu.Unlock()
	return id, true
}
