// Package docs registers the Swagger document served at /swagger/doc.json.
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
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["category"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ListResult-dto_CategoryDTO"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["category"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.SingleResult-dto_CategoryDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/files": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["file"],
                "summary": "Upload a product image",
                "parameters": [
                    {"type": "file", "description": "jpg, jpeg, png or webp image", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.SingleResult-dto_FileDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Search products",
                "parameters": [
                    {"type": "integer", "description": "category id, 0 for all", "name": "categoryId", "in": "query"},
                    {"type": "string", "description": "CATEGORIES, NEWEST, OLDEST, HIGHPRICE, LOWPRICE or GRADE", "name": "sortStatus", "in": "query"},
                    {"type": "integer", "default": 20, "description": "page size", "name": "searchCount", "in": "query"},
                    {"type": "integer", "default": 0, "description": "offset", "name": "pagingStartOffset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ListResult-dto_ProductDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["product"],
                "summary": "Register a product for sale",
                "parameters": [
                    {"description": "product", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/products/my-products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "List the caller's products",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ListResult-dto_ProductDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/products/{productId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Get a product",
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "productId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SingleResult-dto_ProductDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            },
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Delete a product of the caller",
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "productId", "in": "path", "required": true},
                    {"description": "ignored", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handler.ProductDeleteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Update a product of the caller",
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "productId", "in": "path", "required": true},
                    {"description": "fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ProductPatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/products/{productId}/dibs": {
            "post": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Mark interest in a product",
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "productId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/user/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Get a user profile",
                "parameters": [
                    {"type": "string", "description": "account id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SingleResult-dto_UserDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            },
            "put": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Update a user profile",
                "parameters": [
                    {"type": "string", "description": "account id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "password", "name": "pw", "in": "formData", "required": true},
                    {"type": "string", "description": "name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "phone", "name": "phone", "in": "formData", "required": true},
                    {"type": "string", "description": "address", "name": "address", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SingleResult-int64"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Register a user",
                "parameters": [
                    {"type": "string", "description": "account id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "password", "name": "pw", "in": "formData", "required": true},
                    {"type": "string", "description": "name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "phone", "name": "phone", "in": "formData", "required": true},
                    {"type": "string", "description": "address", "name": "address", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SingleResult-int64"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "string", "description": "account id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/usermsg/{msrl}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Get a user profile by key",
                "parameters": [
                    {"type": "string", "description": "account id", "name": "msrl", "in": "path", "required": true},
                    {"type": "string", "description": "language", "name": "lang", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SingleResult-dto_UserDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SingleResult-dto_UserDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/users/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        },
        "/users/my-info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SingleResult-dto_UserDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.CommonResult"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CategoryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "pagingStartOffset": {"type": "integer"},
                "searchCount": {"type": "integer"},
                "sortStatus": {"$ref": "#/definitions/dto.SortStatus"}
            }
        },
        "dto.FileDTO": {
            "type": "object",
            "properties": {
                "accountId": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "originalName": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "dto.ProductDTO": {
            "type": "object",
            "properties": {
                "accountId": {"type": "string"},
                "categoryId": {"type": "integer"},
                "contents": {"type": "string"},
                "deliveryPrice": {"type": "integer"},
                "dibCount": {"type": "integer"},
                "fileId": {"type": "integer"},
                "id": {"type": "integer"},
                "isTrade": {"type": "boolean"},
                "price": {"type": "integer"},
                "status": {"$ref": "#/definitions/dto.ProductStatus"},
                "title": {"type": "string"},
                "updateTime": {"type": "string"}
            }
        },
        "dto.ProductStatus": {
            "type": "string",
            "enum": ["AVAILABLE", "RESERVED", "SOLD"]
        },
        "dto.SortStatus": {
            "type": "string",
            "enum": ["CATEGORIES", "NEWEST", "OLDEST", "HIGHPRICE", "LOWPRICE", "GRADE"]
        },
        "dto.UserDTO": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "userType": {"$ref": "#/definitions/dto.UserType"}
            }
        },
        "dto.UserType": {
            "type": "string",
            "enum": ["USER", "ADMIN"]
        },
        "handler.CategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 64}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["accountId", "password"],
            "properties": {
                "accountId": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.ProductDeleteRequest": {
            "type": "object",
            "properties": {
                "accountId": {"type": "string"},
                "id": {"type": "integer"}
            }
        },
        "handler.ProductPatchRequest": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "integer"},
                "contents": {"type": "string"},
                "deliveryPrice": {"type": "integer", "minimum": 0},
                "dibCount": {"type": "integer", "minimum": 0},
                "fileId": {"type": "integer"},
                "isTrade": {"type": "boolean"},
                "price": {"type": "integer", "minimum": 0},
                "status": {"$ref": "#/definitions/dto.ProductStatus"},
                "title": {"type": "string"}
            }
        },
        "handler.ProductRequest": {
            "type": "object",
            "required": ["categoryId", "title"],
            "properties": {
                "categoryId": {"type": "integer"},
                "contents": {"type": "string"},
                "deliveryPrice": {"type": "integer", "minimum": 0},
                "fileId": {"type": "integer"},
                "isTrade": {"type": "boolean"},
                "price": {"type": "integer", "minimum": 0},
                "status": {"$ref": "#/definitions/dto.ProductStatus"},
                "title": {"type": "string"}
            }
        },
        "response.CommonResult": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.ListResult-dto_CategoryDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "list": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryDTO"}},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.ListResult-dto_ProductDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "list": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductDTO"}},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.SingleResult-dto_CategoryDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {"$ref": "#/definitions/dto.CategoryDTO"},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.SingleResult-dto_FileDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {"$ref": "#/definitions/dto.FileDTO"},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.SingleResult-dto_ProductDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {"$ref": "#/definitions/dto.ProductDTO"},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.SingleResult-dto_UserDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {"$ref": "#/definitions/dto.UserDTO"},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.SingleResult-int64": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {"type": "integer"},
                "msg": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Secondhand Market API",
	Description:      "User profiles, product listings and categories of the secondhand market.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
