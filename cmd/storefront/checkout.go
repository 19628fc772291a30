package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/storefront/internal/events"
	ord "github.com/MikeMC777/storefront/internal/order"
	"github.com/MikeMC777/storefront/internal/product"
)

const (
	msgOrdersUnbound      = "Database binding not configured"
	msgOrderPlaced        = "Order placed successfully"
	msgCheckoutMissingTbl = "Orders table not found. Please run the schema.sql file first."
	publishTimeout        = 5 * time.Second
)

// @Summary  Place an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     ord.CheckoutPayload true "Customer and cart"
// @Success  201  {object} ord.CheckoutResponse
// @Failure  400  {object} map[string]any
// @Failure  500  {object} map[string]string
// @Router   /checkout [post]
func checkoutHandler(cat *product.Catalog, repo ord.Repository, pub events.Publisher, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, verr := ord.ParseCheckout(c.Request.Body)
		if verr != nil {
			body := gin.H{"error": verr.Message}
			if verr.HasItem {
				body["invalidItem"] = verr.Item
			}
			c.JSON(http.StatusBadRequest, body)
			return
		}

		ctx := c.Request.Context()
		if cat != nil {
			checkProducts(ctx, cat, req.Items, log)
		}

		now := time.Now()
		o := &ord.Order{
			ID:        ord.NewID(now),
			Name:      req.Name,
			Phone:     req.Phone,
			Address:   req.Address,
			CreatedAt: now.Unix(),
		}

		if repo == nil {
			errorJSON(c, http.StatusInternalServerError, msgOrdersUnbound)
			return
		}

		items, err := req.ItemsJSON()
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		o.Items = items

		if err := repo.Insert(ctx, o); err != nil {
			if ord.IsMissingTable(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": msgCheckoutMissingTbl, "details": err.Error()})
				return
			}
			errorJSON(c, http.StatusInternalServerError, err.Error())
			return
		}

		if pub != nil {
			publishOrderPlaced(ctx, pub, o, req, log)
		}

		c.JSON(http.StatusCreated, ord.CheckoutResponse{
			Success:   true,
			OrderID:   o.ID,
			Message:   msgOrderPlaced,
			Timestamp: o.CreatedAt,
			CreatedAt: ord.FormatUnix(o.CreatedAt),
			Summary: ord.CheckoutSummary{
				Customer:   req.Name,
				ItemCount:  req.ItemCount(),
				TotalItems: req.TotalItems(),
			},
		})
	}
}

// checkProducts looks up every cart item in the catalog. Misses are logged,
// never returned.
func checkProducts(ctx context.Context, cat *product.Catalog, items []any, log *slog.Logger) {
	for _, it := range items {
		key := ord.ItemKey(it)
		_, err := cat.Get(ctx, key)
		switch {
		case errors.Is(err, product.ErrNotFound):
			log.Warn("checkout references unknown product", slog.String("product_id", key))
		case err != nil:
			log.Warn("product lookup failed", slog.String("product_id", key), slog.Any("err", err))
		}
	}
}

func publishOrderPlaced(ctx context.Context, pub events.Publisher, o *ord.Order, req *ord.CheckoutRequest, log *slog.Logger) {
	ev := events.NewOrderPlaced(o.ID, o.Name, req.ItemCount(), req.TotalItems(), o.CreatedAt)
	payload, err := ev.Payload()
	if err != nil {
		log.Warn("encode order event", slog.String("order_id", o.ID), slog.Any("err", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := pub.Publish(ctx, events.OrderPlacedKey, payload); err != nil {
		log.Warn("publish order event", slog.String("order_id", o.ID), slog.Any("err", err))
	}
}
