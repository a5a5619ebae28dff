package handler

import "github.com/gin-gonic/gin"

// Every form/JSON endpoint answers with the same two-shape envelope:
// {"success": true, "data": …} or {"success": false, "error": "…"}.
// Callers branch on the success discriminant, never on exceptions.

func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
