package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Corpo de erro único da API: { "msg": <string> }.
type HTTPError struct {
	Msg string `json:"msg"`
}

func Write(c *gin.Context, status int, msg string) {
	c.JSON(status, HTTPError{Msg: msg})
}

func BadRequest(c *gin.Context, msg string) {
	Write(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Write(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Write(c, http.StatusForbidden, msg)
}

func NotFound(c *gin.Context, msg string) {
	Write(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Write(c, http.StatusConflict, msg)
}

func Unprocessable(c *gin.Context, msg string) {
	Write(c, http.StatusUnprocessableEntity, msg)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "Ocorreu um erro no servidor, tente novamente mais tarde!")
}
