// Package docs holds the generated OpenAPI document served by the Swagger UI.
// Regenerate with: swag init -g internal/http/router.go -o docs
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
        "/register": {
            "post": {
                "description": "Creates a user profile, builds their cornerstone word pool from the birth data, and returns a bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {
                        "description": "Profile payload",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/daily-words": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the caller's deterministic word pair and motto for today, creating and caching it on first access.",
                "produces": ["application/json"],
                "tags": ["words"],
                "summary": "Today's words",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DailyWordsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/daily-words/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the caller's past daily words, newest first, with pagination and ETag support.",
                "produces": ["application/json"],
                "tags": ["words"],
                "summary": "Daily words history",
                "parameters": [
                    {"type": "integer", "description": "page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HistoryResponse"}},
                    "304": {"description": "Not Modified"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["birth_date", "birth_place", "first_name", "last_name"],
            "properties": {
                "birth_date": {"type": "string", "example": "1990-03-21T10:00"},
                "birth_place": {"type": "string", "example": "Niğde"},
                "first_name": {"type": "string", "example": "Ayşe"},
                "last_name": {"type": "string", "example": "Yılmaz"}
            }
        },
        "handlers.RegisterResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "token": {"type": "string"},
                "user_id": {"type": "string", "example": "0b9fd2a6-3a7e-4a6e-9f0d-6a9a5cddd111"}
            }
        },
        "handlers.DailyWordsPayload": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2025-06-01"},
                "motto": {"type": "string"},
                "word1": {"type": "string", "example": "Cesaret"},
                "word2": {"type": "string", "example": "Derinlik"}
            }
        },
        "handlers.DailyWordsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/handlers.DailyWordsPayload"},
                "error": {"type": "string"}
            }
        },
        "handlers.HistoryResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.DailyWord"}},
                "pagination": {"$ref": "#/definitions/handlers.Pagination"}
            }
        },
        "domain.DailyWord": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2025-06-01"},
                "motto": {"type": "string"},
                "word1": {"type": "string"},
                "word2": {"type": "string"}
            }
        },
        "handlers.Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "has_next": {"type": "boolean"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "code": {"type": "string", "example": "bad_request"},
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Daily Words API",
	Description:      "Deterministic daily word pair and motto service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
