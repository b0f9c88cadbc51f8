package api

import (
	"net/http"      // HTTP status codes
	"os"            // File existence checks
	"path"          // URL path cleaning
	"path/filepath" // Filesystem paths

	"github.com/gin-gonic/gin" // Gin web framework
)

// SPAHandler serves files from staticDir and answers every other GET with
// the single-page app's index.html so client-side routes resolve
func SPAHandler(staticDir string) gin.HandlerFunc {
	index := filepath.Join(staticDir, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		// Cleaning against "/" keeps the lookup inside staticDir
		rel := path.Clean("/" + c.Request.URL.Path)
		if rel != "/" {
			file := filepath.Join(staticDir, filepath.FromSlash(rel))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Frontend not built"})
			return
		}
		c.File(index)
	}
}
