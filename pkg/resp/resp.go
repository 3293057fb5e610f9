package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func Detail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"detail": msg})
}
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}
func ServerError(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}

// Error writes the {"error": msg} body shared by every failure.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
