package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"steakhouse/storefront/internal/handler/middleware"
)

var ErrNoSession = errors.New("session not found in context")

func getSessionIDFromContext(c *gin.Context) (string, error) {
	id := middleware.SessionID(c)
	if id == "" {
		return "", ErrNoSession
	}
	return id, nil
}

func parseIDParam(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}
