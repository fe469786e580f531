package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// OriginList is a parsed CORS_ORIGIN value.
type OriginList map[string]bool

// ParseOrigins -> allowed is a comma separated origin list, "*" allows any.
func ParseOrigins(allowed string) OriginList {
	origins := make(OriginList)
	for _, o := range strings.Split(allowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = true
		}
	}
	return origins
}

func (o OriginList) Any() bool { return o["*"] }

func (o OriginList) Allows(origin string) bool {
	return o.Any() || (origin != "" && o[origin])
}

func CORSMiddlewares(allowed string) gin.HandlerFunc {
	origins := ParseOrigins(allowed)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case origins.Any():
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origins.Allows(origin):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
