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

// This file defines the HTTP route handlers for the content catalog and the
// search endpoints. Handlers stay thin: they decode query and path
// parameters, delegate to the store and services on the state manager, and
// encode the result as JSON.
//
// Routes (all under /api/v1):
//   - GET /videos, /videos/:id, /videos/related/:id
//   - GET /books, /books/:id, /books/related/:id
//   - GET /featured, /study-materials
//   - GET /search?q=...&channels=...&youtube=true
//   - GET /youtube/search?q=...&channel=...
//   - GET /youtube/channel?channel=...
package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/govardhan-digital/content-search/internal/core/model"
)

// ContentRouter registers the read-only catalog endpoints: videos, books,
// featured content, and study materials.
//
// Inputs:
//   - routerGroup: The gin router group to attach the routes to.
func ContentRouter(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/videos", func(c *gin.Context) {
		c.JSON(http.StatusOK, state.store.GetAllVideos())
	})

	routerGroup.GET("/videos/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
			return
		}
		video, ok := state.store.GetVideoByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
			return
		}
		c.JSON(http.StatusOK, video)
	})

	routerGroup.GET("/videos/related/:id", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		c.JSON(http.StatusOK, state.store.GetRelatedVideos(id))
	})

	routerGroup.GET("/books", func(c *gin.Context) {
		c.JSON(http.StatusOK, state.store.GetAllBooks())
	})

	routerGroup.GET("/books/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		book, ok := state.store.GetBookByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		c.JSON(http.StatusOK, book)
	})

	routerGroup.GET("/books/related/:id", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		c.JSON(http.StatusOK, state.store.GetRelatedBooks(id))
	})

	routerGroup.GET("/featured", func(c *gin.Context) {
		c.JSON(http.StatusOK, state.store.FeaturedContent())
	})

	routerGroup.GET("/study-materials", func(c *gin.Context) {
		c.JSON(http.StatusOK, state.store.StudyMaterials())
	})
}

// SearchRouter registers the search endpoints: the combined catalog search
// (optionally hitting the live provider) and the direct YouTube lookups.
//
// Inputs:
//   - routerGroup: The gin router group to attach the routes to.
func SearchRouter(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/search", func(c *gin.Context) {
		query := c.Query("q")

		// A present-but-empty channels parameter means "search every
		// channel", while an absent one falls back to the configured
		// default channels. Distinguishing the two requires looking at
		// the raw query values rather than gin's sugar. Each value may
		// itself carry a comma-separated list; empty entries are dropped
		// so "channels=" stays an empty filter list.
		var channelFilters []string
		if c.Request.URL.Query().Has("channels") {
			channelFilters = []string{}
			for _, raw := range c.QueryArray("channels") {
				for _, name := range strings.Split(raw, ",") {
					if name != "" {
						channelFilters = append(channelFilters, name)
					}
				}
			}
		}

		useExternal := c.Query("youtube") == "true"

		result := state.searchService.Search(c.Request.Context(), query, channelFilters, useExternal)
		c.JSON(http.StatusOK, result)
	})

	routerGroup.GET("/youtube/search", func(c *gin.Context) {
		query := c.Query("q")
		// A blank query never reaches the provider.
		if strings.TrimSpace(query) == "" {
			c.JSON(http.StatusOK, []*model.Video{})
			return
		}

		channel := c.Query("channel")
		maxResults := state.config.YouTube.MaxResults

		if channel != "" {
			c.JSON(http.StatusOK, state.youtubeService.SearchInChannel(c.Request.Context(), query, channel, maxResults))
			return
		}
		c.JSON(http.StatusOK, state.youtubeService.SearchGlobal(c.Request.Context(), query, maxResults))
	})

	routerGroup.GET("/youtube/channel", func(c *gin.Context) {
		channel := c.Query("channel")
		if channel == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Channel name is required"})
			return
		}
		c.JSON(http.StatusOK, state.youtubeService.ListChannelVideos(c.Request.Context(), channel, state.config.YouTube.MaxResults))
	})
}
