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

// Package middleware holds the gin middleware shared across routes.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header a caller may use to supply its own request
// id; it is echoed back on the response either way.
const RequestIDHeader = "X-Request-Id"

// requestIDKey is the gin context key under which the id is stored.
const requestIDKey = "request_id"

// RequestID assigns each request a unique identifier, preferring one the
// caller already sent, and echoes it on the response so client and server
// logs can be matched up.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set(requestIDKey, id)
		c.Next()
	}
}

// RequestIDFromContext returns the request id assigned by RequestID, or an
// empty string when the middleware did not run.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
