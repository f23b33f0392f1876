// Package httpresp holds the success-side response helpers; the error
// side lives in httperr.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// List never serializes a null body; an empty result is `"data": []`.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}

	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
