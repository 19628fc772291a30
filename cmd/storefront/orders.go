package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	ord "github.com/MikeMC777/storefront/internal/order"
)

const msgListMissingTbl = "Orders table not found. No orders have been placed yet."

// @Summary  List all orders, newest first
// @Tags     orders
// @Produce  json
// @Success  200 {array}  ord.View
// @Failure  404 {object} map[string]string
// @Router   /orders [get]
func listOrdersHandler(repo ord.Repository, maxConcurrent int) gin.HandlerFunc {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	return func(c *gin.Context) {
		if repo == nil {
			errorJSON(c, http.StatusInternalServerError, msgOrdersUnbound)
			return
		}

		ctx := c.Request.Context()
		rows, err := repo.List(ctx)
		if err != nil {
			ordersError(c, err)
			return
		}

		views := make([]ord.View, len(rows))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxConcurrent)
		for i, row := range rows {
			g.Go(func() error {
				full, err := repo.GetByID(gctx, row.ID)
				if errors.Is(err, ord.ErrNotFound) {
					v, _ := row.View()
					v.ParseError = err.Error()
					views[i] = v
					return nil
				}
				if err != nil {
					return err
				}
				v, perr := full.View()
				if perr != nil {
					v.ParseError = perr.Error()
				}
				views[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			ordersError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

func ordersError(c *gin.Context, err error) {
	if ord.IsMissingTable(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgListMissingTbl, "details": err.Error()})
		return
	}
	errorJSON(c, http.StatusInternalServerError, err.Error())
}

// @Summary  Get a single order
// @Tags     orders
// @Produce  json
// @Param    id  path  string  true  "Order id"
// @Success  200 {object} ord.View
// @Failure  404 {object} map[string]string
// @Router   /order/{id} [get]
func getOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if repo == nil {
			errorJSON(c, http.StatusInternalServerError, msgOrdersUnbound)
			return
		}
		o, err := repo.GetByID(c.Request.Context(), lastSegment(c))
		if errors.Is(err, ord.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		v, err := o.View()
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, v)
	}
}
