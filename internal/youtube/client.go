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
// relies on. This file implements the client itself.
//
// The client decorates every outbound call with a rate limiter from
// golang.org/x/time so a burst of inbound searches cannot burn through the
// API quota. Errors from the API are returned to the caller untouched; the
// services layer decides how to absorb them.
//
// Functions:
//   - NewClient: Constructs a client authenticated with an API key.
//   - SearchVideos: Keyword video search, optionally scoped to a channel.
//   - RecentChannelVideos: Lists a channel's videos ordered by upload date.
//   - VideoDetails: Batched duration/statistics fetch for a set of video ids.
//   - SearchChannels: Free-text channel search, used for name resolution.
package youtube

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// Client is a thin wrapper over the YouTube Data API service. All methods
// wait on the shared rate limiter before issuing a request.
type Client struct {
	service *ytapi.Service
	limiter *rate.Limiter
}

// NewClient creates a Client authenticated with the given API key.
//
// Inputs:
//   - ctx: The context used to construct the underlying API service.
//   - apiKey: A YouTube Data API key. An empty key still produces a client;
//     every call will then fail and be absorbed upstream as empty results.
//   - requestsPerSecond: The quota ceiling enforced by the client-side
//     limiter. Values below 1 fall back to 1.
//
// Outputs:
//   - *Client: The constructed client.
//   - error: An error if the underlying API service cannot be created.
func NewClient(ctx context.Context, apiKey string, requestsPerSecond int) (*Client, error) {
	service, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	if requestsPerSecond < 1 {
		requestsPerSecond = 1
	}
	return &Client{
		service: service,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}, nil
}

// SearchVideos performs a keyword video search. When channelID is non-empty
// the search is scoped to that channel.
func (c *Client) SearchVideos(ctx context.Context, query string, channelID string, maxResults int64) ([]SearchItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx)
	if channelID != "" {
		call = call.ChannelId(channelID)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("video search %q failed: %w", query, err)
	}
	return searchItems(resp), nil
}

// RecentChannelVideos lists a channel's videos ordered by upload recency.
// There is no keyword constraint.
func (c *Client) RecentChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]SearchItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("channel listing for %q failed: %w", channelID, err)
	}
	return searchItems(resp), nil
}

// VideoDetails fetches durations and statistics for a batch of video ids in
// a single call. The API may omit rows for ids it cannot resolve; callers
// must tolerate missing entries.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]VideoDetail, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.service.Videos.List([]string{"contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video details fetch failed: %w", err)
	}
	out := make([]VideoDetail, 0, len(resp.Items))
	for _, item := range resp.Items {
		detail := VideoDetail{ID: item.Id}
		if item.ContentDetails != nil {
			detail.Duration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			detail.Stats = &VideoStats{
				ViewCount: item.Statistics.ViewCount,
				LikeCount: item.Statistics.LikeCount,
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

// SearchChannels performs a free-text channel search. The first result is
// conventionally the best name match.
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int64) ([]ChannelItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("channel search %q failed: %w", query, err)
	}
	out := make([]ChannelItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.ChannelId == "" {
			continue
		}
		entry := ChannelItem{ChannelID: item.Id.ChannelId}
		if item.Snippet != nil {
			entry.Title = item.Snippet.Title
		}
		out = append(out, entry)
	}
	return out, nil
}

// searchItems flattens an API search response into SearchItem values,
// skipping anything that is not a video row.
func searchItems(resp *ytapi.SearchListResponse) []SearchItem {
	out := make([]SearchItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		row := SearchItem{}
		if item.Id != nil {
			row.VideoID = item.Id.VideoId
		}
		if item.Snippet != nil {
			row.Title = item.Snippet.Title
			row.Description = item.Snippet.Description
			row.ChannelTitle = item.Snippet.ChannelTitle
			row.PublishedAt = item.Snippet.PublishedAt
			if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
				row.ThumbnailURL = item.Snippet.Thumbnails.High.Url
			}
		}
		out = append(out, row)
	}
	return out
}
