package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/storefront/internal/product"
)

const msgProductsUnbound = "Products KV binding not configured"

// @Summary  List all products
// @Tags     products
// @Produce  json
// @Success  200 {array}  object
// @Failure  500 {object} map[string]string
// @Router   /products [get]
func listProductsHandler(cat *product.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cat == nil {
			errorJSON(c, http.StatusInternalServerError, msgProductsUnbound)
			return
		}
		docs, err := cat.All(c.Request.Context())
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

// @Summary  Get a single product
// @Tags     products
// @Produce  json
// @Param    id  path  string  true  "Product key"
// @Success  200 {object} object
// @Failure  404 {object} map[string]string
// @Router   /product/{id} [get]
func getProductHandler(cat *product.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cat == nil {
			errorJSON(c, http.StatusInternalServerError, msgProductsUnbound)
			return
		}
		doc, err := cat.Get(c.Request.Context(), lastSegment(c))
		if errors.Is(err, product.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}
