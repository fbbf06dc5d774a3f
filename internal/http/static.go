package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// mimeTypes maps file extensions of the served front end to content types.
// Anything else is delivered as an opaque byte stream.
var mimeTypes = map[string]string{
	".html":        "text/html",
	".js":          "text/javascript",
	".css":         "text/css",
	".json":        "application/json",
	".png":         "image/png",
	".jpg":         "image/jpeg",
	".gif":         "image/gif",
	".svg":         "image/svg+xml",
	".ico":         "image/x-icon",
	".woff":        "font/woff",
	".woff2":       "font/woff2",
	".ttf":         "font/ttf",
	".eot":         "application/vnd.ms-fontobject",
	".otf":         "font/otf",
	".webmanifest": "application/manifest+json",
}

// StaticFileServer serves the front-end assets from root. Requests that
// resolve outside the root directory are refused with 403; the bare root
// path is rewritten to the index document.
func StaticFileServer(root string, logger *slog.Logger) gin.HandlerFunc {
	absRoot, absErr := filepath.Abs(root)

	return func(c *gin.Context) {
		if absErr != nil {
			c.String(http.StatusInternalServerError, "Server Error: %v", absErr)
			return
		}

		reqPath := c.Request.URL.Path
		if reqPath == "/" || reqPath == "" {
			reqPath = "/index.html"
		}

		resolved, err := filepath.Abs(filepath.Join(absRoot, filepath.FromSlash(reqPath)))
		if err != nil || !strings.HasPrefix(resolved, absRoot+string(filepath.Separator)) {
			logger.Warn("refused path outside static root",
				slog.String("path", c.Request.URL.Path),
				slog.String("resolved", resolved),
			)
			c.String(http.StatusForbidden, "403 - Forbidden")
			return
		}

		content, err := os.ReadFile(resolved)
		if err != nil {
			if os.IsNotExist(err) {
				c.String(http.StatusNotFound, "404 - File Not Found")
				return
			}
			logger.Error("static file read failed",
				slog.String("path", resolved),
				slog.String("error", err.Error()),
			)
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		contentType, ok := mimeTypes[strings.ToLower(filepath.Ext(resolved))]
		if !ok {
			contentType = "application/octet-stream"
		}
		c.Data(http.StatusOK, contentType, content)
	}
}
