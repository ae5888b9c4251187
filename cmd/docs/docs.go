// Package docs holds the generated OpenAPI description of the HTTP API.
// Regenerate with: swag init -g cmd/comanda_backend/main.go -o cmd/docs
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
		"/attendants": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns only the attendants that are active and present",
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "List attendants on shift",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.AttendantResponse"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to list attendants",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"description": "Checks the operator's credentials and returns a signed token. Rate limited per client IP.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Log in an operator",
				"parameters": [
					{
						"description": "Operator credentials",
						"name": "credentials",
						"in": "body",
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						},
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoginResponse"
						}
					},
					"400": {
						"description": "Invalid input format or validation error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Invalid username or password",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to log in",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Tokens are stateless and stay valid until they expire. The client discards its token; the server only records the logout.",
				"tags": [
					"auth"
				],
				"summary": "Log out an operator",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/operators": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns every operator account without its password hash",
				"produces": [
					"application/json"
				],
				"tags": [
					"operators"
				],
				"summary": "List operators",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.OperatorResponse"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to list operators",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/products": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns the whole product catalog with prices as two-decimal strings",
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "List products",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ProductResponse"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to list products",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/sales": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Posts the cart to the tab for the authenticated operator, then prints the receipt and commission vouchers. A printer failure still answers 201 and the response carries the print error.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"sales"
				],
				"summary": "Post a sale",
				"parameters": [
					{
						"description": "Cart",
						"name": "sale",
						"in": "body",
						"schema": {
							"$ref": "#/definitions/dto.CreateSaleRequest"
						},
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.CheckoutResponse"
						}
					},
					"400": {
						"description": "Invalid input, unknown tab or unknown product",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Ledger record already exists",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to post sale",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns every tab ordered by id, optionally filtered by status",
				"produces": [
					"application/json"
				],
				"tags": [
					"tabs"
				],
				"summary": "List tabs",
				"parameters": [
					{
						"description": "OPEN or CLOSED",
						"name": "status",
						"in": "query",
						"type": "string",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.TabResponse"
							}
						}
					},
					"400": {
						"description": "Invalid status filter",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to list tabs",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Opens a tab for the customer. When an open tab already carries the label it is returned with 200 instead of 201.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"tabs"
				],
				"summary": "Open a tab",
				"parameters": [
					{
						"description": "Customer label",
						"name": "tab",
						"in": "body",
						"schema": {
							"$ref": "#/definitions/dto.CreateTabRequest"
						},
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.TabResponse"
						}
					},
					"200": {
						"description": "Open tab with the same label",
						"schema": {
							"$ref": "#/definitions/dto.TabResponse"
						}
					},
					"400": {
						"description": "Invalid input format or validation error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to create tab",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs/{tabID}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"tabs"
				],
				"summary": "Get a tab",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TabResponse"
						}
					},
					"400": {
						"description": "Invalid tab ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Tab not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to get tab",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Deletes the tab. Its ledger records are kept.",
				"tags": [
					"tabs"
				],
				"summary": "Remove a tab",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Invalid tab ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Tab not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to remove tab",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs/{tabID}/close": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Zeroes the balance and marks the tab closed, whatever it held",
				"produces": [
					"application/json"
				],
				"tags": [
					"tabs"
				],
				"summary": "Close a tab",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TabResponse"
						}
					},
					"400": {
						"description": "Invalid tab ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Tab not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to close tab",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs/{tabID}/sales": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns the sales recorded for the tab, newest first, with the running total",
				"produces": [
					"application/json"
				],
				"tags": [
					"sales"
				],
				"summary": "List a tab's sales",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListSalesResponse"
						}
					},
					"400": {
						"description": "Invalid tab ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to load sales",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs/{tabID}/sales/export": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Writes one CSV row per sale line in ledger order",
				"produces": [
					"text/csv"
				],
				"tags": [
					"sales"
				],
				"summary": "Export a tab's sales as CSV",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "CSV document",
						"schema": {
							"type": "string"
						}
					},
					"400": {
						"description": "Invalid tab ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to export sales",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs/{tabID}/sales/{sequenceID}/print": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"receipts"
				],
				"summary": "Reprint a sale receipt",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					},
					{
						"description": "Sale sequence ID",
						"name": "sequenceID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PrintResponse"
						}
					},
					"400": {
						"description": "Invalid tab or sequence ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Sale not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"502": {
						"description": "Printer unavailable",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs/{tabID}/sales/{sequenceID}/print-commissions": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Prints one voucher per attendant credited on the sale",
				"produces": [
					"application/json"
				],
				"tags": [
					"receipts"
				],
				"summary": "Reprint commission vouchers",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					},
					{
						"description": "Sale sequence ID",
						"name": "sequenceID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PrintResponse"
						}
					},
					"400": {
						"description": "Invalid tab or sequence ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Sale not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"502": {
						"description": "Printer unavailable",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tabs/{tabID}/sales/{sequenceID}/receipt": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Renders the customer receipt markup without sending it to the printer",
				"produces": [
					"application/json"
				],
				"tags": [
					"receipts"
				],
				"summary": "Preview a sale receipt",
				"parameters": [
					{
						"description": "Tab ID",
						"name": "tabID",
						"in": "path",
						"type": "integer",
						"required": true
					},
					{
						"description": "Sale sequence ID",
						"name": "sequenceID",
						"in": "path",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ReceiptPreviewResponse"
						}
					},
					"400": {
						"description": "Invalid tab or sequence ID",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Sale not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Failed to render receipt",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.AttendantResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"nickname": {
					"type": "string"
				}
			}
		},
		"dto.CartLineRequest": {
			"type": "object",
			"required": [
				"productId",
				"quantity"
			],
			"properties": {
				"productId": {
					"type": "integer"
				},
				"quantity": {
					"type": "integer"
				},
				"attendantIds": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"dto.CheckoutResponse": {
			"type": "object",
			"properties": {
				"sequenceId": {
					"type": "integer"
				},
				"recordName": {
					"type": "string"
				},
				"totalAmount": {
					"type": "string"
				},
				"printed": {
					"type": "boolean"
				},
				"printError": {
					"type": "string"
				},
				"commissions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CommissionResponse"
					}
				},
				"commissionReceipts": {
					"type": "integer"
				}
			}
		},
		"dto.CommissionLineResponse": {
			"type": "object",
			"properties": {
				"productId": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"share": {
					"type": "string"
				},
				"total": {
					"type": "string"
				}
			}
		},
		"dto.CommissionResponse": {
			"type": "object",
			"properties": {
				"attendantId": {
					"type": "integer"
				},
				"nickname": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CommissionLineResponse"
					}
				},
				"total": {
					"type": "string"
				}
			}
		},
		"dto.CreateSaleRequest": {
			"type": "object",
			"required": [
				"lines",
				"tabId"
			],
			"properties": {
				"tabId": {
					"type": "integer"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CartLineRequest"
					}
				},
				"attendantIds": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"dto.CreateTabRequest": {
			"type": "object",
			"properties": {
				"customerLabel": {
					"type": "string"
				}
			}
		},
		"dto.ListSalesResponse": {
			"type": "object",
			"properties": {
				"tabId": {
					"type": "integer"
				},
				"sales": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.SaleResponse"
					}
				},
				"total": {
					"type": "string"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"required": [
				"password",
				"username"
			],
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"dto.LoginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"expiresAt": {
					"type": "string"
				},
				"operator": {
					"$ref": "#/definitions/dto.OperatorResponse"
				}
			}
		},
		"dto.OperatorResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"level": {
					"type": "integer"
				},
				"active": {
					"type": "boolean"
				}
			}
		},
		"dto.PrintResponse": {
			"type": "object",
			"properties": {
				"printed": {
					"type": "boolean"
				},
				"receipts": {
					"type": "integer"
				}
			}
		},
		"dto.ProductResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"commissionPerUnit": {
					"type": "string"
				},
				"hasCommission": {
					"type": "boolean"
				},
				"sector": {
					"type": "string"
				}
			}
		},
		"dto.ReceiptPreviewResponse": {
			"type": "object",
			"properties": {
				"tabId": {
					"type": "integer"
				},
				"sequenceId": {
					"type": "integer"
				},
				"text": {
					"type": "string"
				}
			}
		},
		"dto.SaleItemResponse": {
			"type": "object",
			"properties": {
				"productId": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"attendantIds": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"unitPrice": {
					"type": "string"
				},
				"lineTotal": {
					"type": "string"
				}
			}
		},
		"dto.SaleResponse": {
			"type": "object",
			"properties": {
				"sequenceId": {
					"type": "integer"
				},
				"operatorId": {
					"type": "integer"
				},
				"recordName": {
					"type": "string"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.SaleItemResponse"
					}
				},
				"quantity": {
					"type": "integer"
				},
				"total": {
					"type": "string"
				}
			}
		},
		"dto.TabResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"customerLabel": {
					"type": "string"
				},
				"balance": {
					"type": "string"
				},
				"openedAt": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Comanda Backend API",
	Description:      "Tabs, sales ledger and commission vouchers for a bar point of sale.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
