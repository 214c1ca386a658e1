package httpresp

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

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

func List[T any](c *gin.Context, key string, data []T) {
	c.JSON(http.StatusOK, gin.H{key: data, "total": len(data)})
}
