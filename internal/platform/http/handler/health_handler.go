// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import "github.com/gin-gonic/gin"

// Health handles the /healthz endpoint for service health checks.
func Health(c *gin.Context) {
	// Make sure the response is never cached
	c.Header("Cache-Control", "no-store")

	// GET/HEAD/OPTIONS all answer with 200 or 204
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
