package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ord "github.com/MikeMC777/storefront/internal/order"
)

type healthServices struct {
	KV bool `json:"kv"`
	D1 bool `json:"d1"`
}

type healthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Services  healthServices `json:"services"`
}

// @Summary  Liveness and binding status
// @Tags     system
// @Produce  json
// @Success  200 {object} healthResponse
// @Router   /health [get]
func healthHandler(productsBound, ordersBound bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{
			Status:    "ok",
			Timestamp: ord.FormatTime(time.Now()),
			Services:  healthServices{KV: productsBound, D1: ordersBound},
		})
	}
}
