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
// This file provides the in-memory provider fake shared across the suite,
// so no test ever reaches the live video API.
package services_test

import (
	"context"

	"github.com/govardhan-digital/content-search/internal/youtube"
)

// fakeProvider is a scriptable stand-in for the rate-limited provider
// client. Each call records its arguments and returns the canned response
// (or error) assigned to it.
type fakeProvider struct {
	searchItems   []youtube.SearchItem
	searchErr     error
	recentItems   []youtube.SearchItem
	recentErr     error
	details       []youtube.VideoDetail
	detailsErr    error
	channels      []youtube.ChannelItem
	channelsErr   error
	searchCalls   int
	recentCalls   int
	detailCalls   int
	channelCalls  int
	lastQuery     string
	lastChannelID string
}

func (f *fakeProvider) SearchVideos(_ context.Context, query string, channelID string, _ int64) ([]youtube.SearchItem, error) {
	f.searchCalls++
	f.lastQuery = query
	f.lastChannelID = channelID
	return f.searchItems, f.searchErr
}

func (f *fakeProvider) RecentChannelVideos(_ context.Context, channelID string, _ int64) ([]youtube.SearchItem, error) {
	f.recentCalls++
	f.lastChannelID = channelID
	return f.recentItems, f.recentErr
}

func (f *fakeProvider) VideoDetails(_ context.Context, _ []string) ([]youtube.VideoDetail, error) {
	f.detailCalls++
	return f.details, f.detailsErr
}

func (f *fakeProvider) SearchChannels(_ context.Context, query string, _ int64) ([]youtube.ChannelItem, error) {
	f.channelCalls++
	f.lastQuery = query
	return f.channels, f.channelsErr
}
