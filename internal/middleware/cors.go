package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsHeaders are listed explicitly since browsers do not read "*" as a
// wildcard on credentialed requests.
var corsHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}

// CORS lets the web client on the configured origins call the API.
// Requests from any other origin are served without CORS headers rather
// than rejected, leaving enforcement to the browser.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	handler := cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     corsHeaders,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
	})

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if _, ok := allowed[origin]; !ok {
				c.Next()
				return
			}
		}
		handler(c)
	}
}
