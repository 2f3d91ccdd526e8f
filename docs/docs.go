// Package docs holds the hand-maintained Swagger description of the API and
// registers it with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
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
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/health.Response"}
                    }
                }
            }
        },
        "/lookup": {
            "get": {
                "description": "Find songs whose artist, genre, album or title word exactly matches a term",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Look up songs",
                "parameters": [
                    {"type": "string", "description": "artist, genre, album or track", "name": "field", "in": "query", "required": true},
                    {"type": "string", "description": "Term to match (artist, genre, track)", "name": "term", "in": "query"},
                    {"type": "string", "description": "Album name (album)", "name": "album", "in": "query"},
                    {"type": "string", "description": "Album artist (album)", "name": "artist", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/options": {
            "get": {
                "description": "List supported moods and times of day, and the artists and genres in the corpus",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "List options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/options.OptionsResponse"}}
                }
            }
        },
        "/search": {
            "post": {
                "description": "Rank songs matching a mood and time of day, optionally personalized by favorite artists and genres",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Recommend songs",
                "parameters": [
                    {
                        "description": "Search request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/search.SearchRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "cadence.Result": {
            "type": "object",
            "properties": {
                "album_name": {"type": "string"},
                "artists": {"type": "string"},
                "track_name": {"type": "string"}
            }
        },
        "cadence.Unresolved": {
            "type": "object",
            "properties": {
                "reason": {"type": "string"},
                "spotify_id": {"type": "string"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "health.Response": {
            "type": "object",
            "properties": {
                "server": {"type": "boolean"},
                "songs": {"type": "integer"},
                "spotify": {"type": "boolean"}
            }
        },
        "options.OptionsResponse": {
            "type": "object",
            "properties": {
                "artists": {"type": "array", "items": {"type": "string"}},
                "genres": {"type": "array", "items": {"type": "string"}},
                "moods": {"type": "array", "items": {"type": "string"}},
                "times": {"type": "array", "items": {"type": "string"}}
            }
        },
        "recommend.Settings": {
            "type": "object",
            "properties": {
                "favoriteArtists": {"type": "array", "items": {"type": "string"}},
                "favoriteGenres": {"type": "array", "items": {"type": "string"}}
            }
        },
        "search.SearchRequest": {
            "type": "object",
            "required": ["mood", "time"],
            "properties": {
                "mood": {"type": "string"},
                "settings": {"$ref": "#/definitions/recommend.Settings"},
                "time": {"type": "string"}
            }
        },
        "search.SearchResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/cadence.Result"}},
                "unresolved": {"type": "array", "items": {"$ref": "#/definitions/cadence.Unresolved"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cadence",
	Description:      "Song recommendations by mood and time of day",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
