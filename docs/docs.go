// Package docs registers the OpenAPI document of the snapevents API with swag
// so that http-swagger can serve it under /swagger/.
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
		"/events": {
			"get": {
				"description": "Returns one page of published events starting today or later. Out of range or unparseable parameters are clamped or defaulted, never rejected. The body is not wrapped in the API envelope.",
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "List upcoming events",
				"parameters": [
					{
						"type": "integer",
						"default": 1,
						"description": "Page number (>= 1)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 6,
						"description": "Page size (1..100)",
						"name": "per_page",
						"in": "query"
					},
					{
						"enum": [
							"ASC",
							"DESC"
						],
						"type": "string",
						"default": "ASC",
						"description": "Sort by start date",
						"name": "order",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Exact city filter",
						"name": "city",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Exact state filter",
						"name": "state",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Exact country filter",
						"name": "country",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ListingResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/events.ics": {
			"get": {
				"description": "All upcoming published events as all-day VEVENTs, soonest first.",
				"produces": [
					"text/plain"
				],
				"tags": [
					"events"
				],
				"summary": "iCalendar feed",
				"responses": {
					"200": {
						"description": "text/calendar document",
						"schema": {
							"type": "string"
						}
					},
					"500": {
						"description": "storage failure",
						"schema": {
							"type": "string"
						}
					}
				}
			}
		},
		"/events/{slug}": {
			"get": {
				"description": "Renders the HTML page of a published event. Drafts and unknown slugs get a 404 page.",
				"produces": [
					"text/html"
				],
				"tags": [
					"events"
				],
				"summary": "Event page",
				"parameters": [
					{
						"type": "string",
						"description": "Event slug",
						"name": "slug",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "HTML page",
						"schema": {
							"type": "string"
						}
					},
					"404": {
						"description": "HTML page",
						"schema": {
							"type": "string"
						}
					}
				}
			}
		},
		"/blocks/{layout}/render": {
			"post": {
				"description": "Renders the grid or list block for the given attributes. Omitted attributes take their defaults. The markup embeds the resolved configuration for the client controller.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"blocks"
				],
				"summary": "Render a listing block",
				"parameters": [
					{
						"enum": [
							"grid",
							"list"
						],
						"type": "string",
						"description": "Block layout",
						"name": "layout",
						"in": "path",
						"required": true
					},
					{
						"description": "Block attributes",
						"name": "attributes",
						"in": "body",
						"schema": {
							"$ref": "#/definitions/domain.ListingConfig"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.RenderBlockResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"description": "Authenticate with email and password. Returns a JWT for the admin endpoints.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Log in as an editor",
				"parameters": [
					{
						"description": "Login credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "data contains token and token_type",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: invalid_credentials",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/admin/events": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an event. Text fields are stripped of markup, the slug is derived from the title and made unique. Status defaults to draft.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Create an event",
				"parameters": [
					{
						"description": "Event fields",
						"name": "event",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.EventRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/admin/events/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns the stored record including drafts and raw dates.",
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Get an event for editing",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Replaces every editable field. The slug is kept.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Replace an event's fields",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Event fields",
						"name": "event",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.EventRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.EventView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"permalink": {
					"type": "string"
				},
				"excerpt": {
					"type": "string"
				},
				"thumbnail_url": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"end_date": {
					"type": "string"
				},
				"venue": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"country": {
					"type": "string"
				}
			}
		},
		"domain.Event": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"slug": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"excerpt": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"thumbnail_url": {
					"type": "string"
				},
				"start_date": {
					"type": "string",
					"description": "YYYYMMDD"
				},
				"end_date": {
					"type": "string",
					"description": "YYYYMMDD, optional"
				},
				"venue": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"domain.ListingResponse": {
			"type": "object",
			"properties": {
				"events": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.EventView"
					}
				},
				"total": {
					"type": "integer"
				},
				"has_more": {
					"type": "boolean"
				},
				"current_page": {
					"type": "integer"
				}
			}
		},
		"domain.ListingConfig": {
			"type": "object",
			"properties": {
				"anchor": {
					"type": "string"
				},
				"borderColor": {
					"type": "string"
				},
				"borderWidth": {
					"type": "integer"
				},
				"buttonBackgroundColor": {
					"type": "string"
				},
				"buttonBorderColor": {
					"type": "string"
				},
				"buttonBorderRadius": {
					"type": "integer"
				},
				"buttonBorderWidth": {
					"type": "integer"
				},
				"buttonBoxShadow": {
					"type": "boolean"
				},
				"buttonTextColor": {
					"type": "string"
				},
				"cardBackgroundColor": {
					"type": "string"
				},
				"cardBorderColor": {
					"type": "string"
				},
				"cardBorderRadius": {
					"type": "integer"
				},
				"cardBorderWidth": {
					"type": "integer"
				},
				"cardBoxShadow": {
					"type": "boolean"
				},
				"cardHeadingColor": {
					"type": "string"
				},
				"cardLinkColor": {
					"type": "string"
				},
				"cardPadding": {
					"type": "integer"
				},
				"cardTextColor": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"columns": {
					"type": "integer"
				},
				"count": {
					"type": "integer"
				},
				"country": {
					"type": "string"
				},
				"defaultSortOrder": {
					"type": "string"
				},
				"enableLoadMore": {
					"type": "boolean"
				},
				"enableSort": {
					"type": "boolean"
				},
				"gridGap": {
					"type": "integer"
				},
				"headingColor": {
					"type": "string"
				},
				"itemPadding": {
					"type": "integer"
				},
				"layout": {
					"type": "string"
				},
				"linkColor": {
					"type": "string"
				},
				"restUrl": {
					"type": "string"
				},
				"showDate": {
					"type": "boolean"
				},
				"showExcerpt": {
					"type": "boolean"
				},
				"showImage": {
					"type": "boolean"
				},
				"showLocation": {
					"type": "boolean"
				},
				"state": {
					"type": "string"
				},
				"textColor": {
					"type": "string"
				}
			}
		},
		"controllers.EventRequest": {
			"type": "object",
			"required": [
				"title"
			],
			"properties": {
				"title": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"publish",
						"draft"
					],
					"description": "publish or draft (default draft)"
				},
				"excerpt": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"thumbnail_url": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"end_date": {
					"type": "string"
				},
				"venue": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"country": {
					"type": "string"
				}
			}
		},
		"controllers.EventSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.Event"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"controllers.LoginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				}
			}
		},
		"controllers.RenderBlockResponse": {
			"type": "object",
			"properties": {
				"rendered": {
					"type": "string"
				}
			}
		},
		"helpers.APIError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"helpers.APIResponse": {
			"type": "object",
			"properties": {
				"data": {},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the JWT.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "snapevents API",
	Description:      "Upcoming events listing, block rendering, iCalendar feed and editor endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
