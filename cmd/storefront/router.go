package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/storefront/internal/docs"
	"github.com/MikeMC777/storefront/internal/events"
	"github.com/MikeMC777/storefront/internal/httpx"
	ord "github.com/MikeMC777/storefront/internal/order"
	"github.com/MikeMC777/storefront/internal/product"
)

// deps are the bindings handed to the router. A nil store means the binding
// is not configured.
type deps struct {
	products *product.Catalog
	orders   ord.Repository
	events   events.Publisher
	log      *slog.Logger

	fetchConcurrency int
	swagger          bool
}

var descriptor = gin.H{
	"message": "E-commerce API",
	"endpoints": []string{
		"GET /products - List all products",
		"GET /product/:id - Get a single product",
		"POST /checkout - Place an order",
		"GET /orders - List all orders",
		"GET /order/:id - Get a single order",
		"GET /health - Service health",
	},
	"note": "Products are read from the key-value store; orders are persisted in the SQL database.",
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(httpx.RequestID(), httpx.Logger(d.log), httpx.Recovery(d.log), httpx.CORS())

	r.GET("/products", listProductsHandler(d.products))
	r.GET("/product/*id", getProductHandler(d.products))
	r.POST("/checkout", checkoutHandler(d.products, d.orders, d.events, d.log))
	r.GET("/orders", listOrdersHandler(d.orders, d.fetchConcurrency))
	r.GET("/order/*id", getOrderHandler(d.orders))
	r.GET("/health", healthHandler(d.products != nil, d.orders != nil))

	if d.swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusOK, descriptor)
	})
	return r
}

// lastSegment returns the final segment of the request path as sent, without
// percent-decoding, so "/product/a%2Fb" yields "a%2Fb".
func lastSegment(c *gin.Context) string {
	p := c.Request.URL.EscapedPath()
	return p[strings.LastIndex(p, "/")+1:]
}

func errorJSON(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}
