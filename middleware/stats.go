package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/contentscore/contentscore/stats"
)

// VisitorTracker records the client IP of every request for the unique
// visitor count. Usage counters are recorded by the handlers themselves.
func VisitorTracker(storage *stats.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		storage.TrackVisitor(c.ClientIP())
		c.Next()
	}
}
