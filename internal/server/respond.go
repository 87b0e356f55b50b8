package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, dataResponse{Success: true, Data: data})
}

// respondList always serializes data as a JSON array, never null.
func respondList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, listResponse{Success: true, Count: len(items), Data: items})
}
