package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips screen snapshots and error envelopes for clients that accept it.
// Screen streams upgrade to websocket and must not be wrapped. The Prometheus
// handler negotiates its own gzip, so /metrics is skipped to avoid encoding twice.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{`^/api/screens/[^/]+/ws$`}),
	)
}
