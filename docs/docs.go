// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/courtside/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Store unreachable or circuit breaker open", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/admin/cache/clear": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Clear the result cache",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/pages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Navigation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/competitors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Competitors table",
                "parameters": [
                    {"type": "integer", "description": "Lowest rank (inclusive)", "name": "min_rank", "in": "query"},
                    {"type": "integer", "description": "Highest rank (inclusive)", "name": "max_rank", "in": "query"},
                    {"type": "string", "description": "Case-insensitive name substring", "name": "name", "in": "query"},
                    {"type": "string", "description": "Exact country, or All", "name": "country", "in": "query"},
                    {"type": "integer", "description": "Minimum points", "name": "min_points", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/competitors/detail": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Competitor detail",
                "parameters": [
                    {"type": "string", "description": "Exact name of the selected competitor", "name": "selected", "in": "query"},
                    {"type": "integer", "description": "Lowest rank (inclusive)", "name": "min_rank", "in": "query"},
                    {"type": "integer", "description": "Highest rank (inclusive)", "name": "max_rank", "in": "query"},
                    {"type": "string", "description": "Case-insensitive name substring", "name": "name", "in": "query"},
                    {"type": "string", "description": "Exact country, or All", "name": "country", "in": "query"},
                    {"type": "integer", "description": "Minimum points", "name": "min_points", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/countries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Country insights",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/countries/list": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Country options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/leaderboards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Leaderboards",
                "parameters": [
                    {"type": "integer", "description": "Rows per board", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/charts/countries.svg": {
            "get": {
                "produces": ["image/svg+xml"],
                "tags": ["Charts"],
                "summary": "Competitors per country chart",
                "responses": {
                    "200": {"description": "SVG document"},
                    "404": {"description": "No data to chart", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/charts/leaderboards/{board}.svg": {
            "get": {
                "produces": ["image/svg+xml"],
                "tags": ["Charts"],
                "summary": "Leaderboard points chart",
                "parameters": [
                    {"enum": ["top-ranked", "top-points", "stable-rank"], "type": "string", "name": "board", "in": "path", "required": true},
                    {"type": "integer", "description": "Rows to plot", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "SVG document"},
                    "400": {"description": "Unknown board", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "No data to chart", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data": {},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "query_time_ms": {"type": "integer"},
                "cached": {"type": "boolean"},
                "request_id": {"type": "string"}
            }
        },
        "models.CompetitorRanking": {
            "type": "object",
            "properties": {
                "competitor_id": {"type": "string"},
                "name": {"type": "string"},
                "country": {"type": "string"},
                "country_code": {"type": "string"},
                "rank": {"type": "integer"},
                "points": {"type": "integer"},
                "movement": {"type": "integer"},
                "competitions_played": {"type": "integer"}
            }
        },
        "models.CountryStat": {
            "type": "object",
            "properties": {
                "country": {"type": "string"},
                "competitors": {"type": "integer"},
                "avg_points": {"type": "number"}
            }
        },
        "models.Leaderboard": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "title": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/models.CompetitorRanking"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3860",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Courtside API",
	Description:      "Read-only analytics over tennis competitor rankings",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
