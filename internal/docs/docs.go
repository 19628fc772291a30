// Package docs registers the storefront OpenAPI document with swag so
// gin-swagger can serve it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List all products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/product/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a single product",
                "parameters": [{"type": "string", "description": "Product key", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/checkout": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [{"description": "Customer and cart", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckoutPayload"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CheckoutResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List all orders, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/OrderView"}}},
                    "404": {"description": "Orders table missing", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/order/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get a single order",
                "parameters": [{"type": "string", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness and binding status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"},
                "invalidItem": {"type": "object"}
            }
        },
        "CheckoutItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "p1"},
                "quantity": {"type": "number", "example": 2}
            }
        },
        "CheckoutPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Ada Lovelace"},
                "phone": {"type": "string", "example": "+44 20 7946 0000"},
                "address": {"type": "string", "example": "12 St James's Square, London"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/CheckoutItem"}}
            }
        },
        "CheckoutSummary": {
            "type": "object",
            "properties": {
                "customer": {"type": "string"},
                "itemCount": {"type": "integer"},
                "totalItems": {"type": "number"}
            }
        },
        "CheckoutResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "orderId": {"type": "string", "example": "ord_1700000000000_k3j9x2m1q"},
                "message": {"type": "string", "example": "Order placed successfully"},
                "timestamp": {"type": "integer", "example": 1700000000},
                "created_at": {"type": "string", "example": "2023-11-14T22:13:20.000Z"},
                "summary": {"$ref": "#/definitions/CheckoutSummary"}
            }
        },
        "OrderView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "items": {"type": "array", "items": {"type": "object"}},
                "created_at": {"type": "string"},
                "parseError": {"type": "string"}
            }
        },
        "HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string"},
                "services": {
                    "type": "object",
                    "properties": {
                        "kv": {"type": "boolean"},
                        "d1": {"type": "boolean"}
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Product catalogue, checkout and order history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
