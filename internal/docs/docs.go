// Package docs registers the OpenAPI description of the API with swag.
// Regenerate the full description with `swag init -g cmd/api/main.go -o internal/docs`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "User registered and tokens generated"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "responses": {"200": {"description": "User authenticated and tokens generated"}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh tokens", "responses": {"200": {"description": "New token pair"}}}},
        "/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Logout", "responses": {"204": {"description": "Logged out"}}}},
        "/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Get current user", "responses": {"200": {"description": "User"}}}},
        "/profiles/{profile_id}/transactions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "List transactions", "responses": {"200": {"description": "Page of records"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Create an entry", "responses": {"201": {"description": "Created records and notification"}}}
        },
        "/profiles/{profile_id}/transactions/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Get a transaction", "responses": {"200": {"description": "Record"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Update a transaction", "responses": {"200": {"description": "Number of records changed"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Delete a transaction", "responses": {"200": {"description": "Number of records deleted"}}}
        },
        "/profiles/{profile_id}/transactions/{id}/paid": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Toggle paid", "responses": {"200": {"description": "Updated record"}}}
        },
        "/profiles/{profile_id}/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Get categories", "responses": {"200": {"description": "Categories"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Create a category", "responses": {"201": {"description": "Category added"}}}
        },
        "/profiles/{profile_id}/categories/options": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Get category filter options", "responses": {"200": {"description": "Options"}}}
        },
        "/profiles/{profile_id}/categories/{flow_type}/{name}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Delete a category", "responses": {"200": {"description": "Notification"}, "428": {"description": "Confirmation required"}}}
        },
        "/profiles/{profile_id}/payment-methods": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["payment-methods"], "summary": "Get payment methods", "responses": {"200": {"description": "Payment methods"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["payment-methods"], "summary": "Add a bank", "responses": {"201": {"description": "Bank added"}}}
        },
        "/profiles/{profile_id}/payment-methods/{name}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["payment-methods"], "summary": "Delete a bank", "responses": {"200": {"description": "Notification"}, "428": {"description": "Confirmation required"}}}
        },
        "/profiles/{profile_id}/name": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "Get display name", "responses": {"200": {"description": "Name"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "Set display name", "responses": {"200": {"description": "Notification"}}}
        },
        "/profiles/{profile_id}/data": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "Clear profile data", "responses": {"200": {"description": "Notification"}, "428": {"description": "Confirmation required"}}}
        },
        "/profiles/{profile_id}/activity": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "Get activity", "responses": {"200": {"description": "Activity page"}}}
        },
        "/profiles/{profile_id}/reports/summary": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get summary", "responses": {"200": {"description": "Summary"}}}
        },
        "/profiles/{profile_id}/reports/breakdown": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get category breakdown", "responses": {"200": {"description": "Breakdown"}}}
        },
        "/profiles/{profile_id}/reports/breakdown/chart": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get category breakdown chart", "produces": ["image/png"], "responses": {"200": {"description": "PNG image"}, "404": {"description": "Nothing to chart"}}}
        },
        "/profiles/{profile_id}/reports/projection": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get projection", "responses": {"200": {"description": "Projection"}}}
        },
        "/profiles/{profile_id}/reports/projection/chart": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get projection chart", "produces": ["image/png"], "responses": {"200": {"description": "PNG image"}, "404": {"description": "Nothing to chart"}}}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fluxo API",
	Description:      "Fluxo is a personal finance tracker: monthly income and expenses, installments and recurring bills, per-category breakdowns and a twelve-month projection.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
