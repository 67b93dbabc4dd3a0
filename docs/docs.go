// Package docs registers the OpenAPI document served at /v1/swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/appointments": {
            "post": {
                "description": "Validates and stores a booking, then notifies the customer and the business by email.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Book an appointment",
                "parameters": [
                    {"description": "Booking", "name": "appointment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.AppointmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/appointments/options": {
            "get": {
                "description": "Returns the service catalogue and the bookable time slots.",
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Booking form options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/contact": {
            "post": {
                "description": "Send a message through the contact form. This is a public endpoint.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit Contact Form",
                "parameters": [
                    {"description": "Contact Form Data", "name": "contact", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/notifications/send": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sends the customer confirmation and the business alert for one submission.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Send notification emails",
                "parameters": [
                    {"description": "Submission kind and fields", "name": "notification", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Notification"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.NotificationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/v1.NotificationResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/v1.NotificationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/v1.NotificationResult"}}
                }
            }
        },
        "/auth/signup/validate": {
            "post": {
                "description": "Applies the sign-up rules (including matching passwords) without creating an account.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Validate a sign-up form",
                "parameters": [
                    {"description": "Sign-up form", "name": "signup", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SignupRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the authenticated caller and the role resolved from user_roles.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin/overview": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns recent appointments and contact messages with counts per status",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get dashboard overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin/appointments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns appointments newest first, optionally filtered by status",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List appointments",
                "parameters": [
                    {"type": "string", "description": "pending, confirmed, completed or cancelled", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Max rows (default 50)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Rows to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin/appointments/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Sets any status label; transitions are unrestricted",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update appointment status",
                "parameters": [
                    {"type": "string", "description": "Appointment ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.StatusUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin/contacts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns contact messages newest first, optionally filtered by status",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List contact messages",
                "parameters": [
                    {"type": "string", "description": "new, replied or archived", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Max rows (default 50)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Rows to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin/contacts/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Sets any status label; transitions are unrestricted",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update contact message status",
                "parameters": [
                    {"type": "string", "description": "Contact message ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.StatusUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "domain.AppointmentRequest": {
            "type": "object",
            "properties": {
                "company": {"type": "string", "example": "Patel Industries"},
                "description": {"type": "string", "example": "New 11kV panel"},
                "email": {"type": "string", "example": "asha@example.com"},
                "name": {"type": "string", "example": "Asha Patel"},
                "phone": {"type": "string", "example": "9825014775"},
                "preferred_date": {"type": "string", "example": "2025-01-10"},
                "preferred_time": {"type": "string", "example": "09:00 AM - 10:00 AM"},
                "service": {"type": "string", "example": "HT/LT Installation"}
            }
        },
        "domain.ContactRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "asha@example.com"},
                "message": {"type": "string", "example": "Please share a quote for cable laying."},
                "name": {"type": "string", "example": "Asha Patel"},
                "phone": {"type": "string", "example": "9825014775"},
                "subject": {"type": "string", "example": "Quotation"}
            }
        },
        "domain.SignupRequest": {
            "type": "object",
            "properties": {
                "confirm_password": {"type": "string", "example": "secret1"},
                "email": {"type": "string", "example": "asha@example.com"},
                "full_name": {"type": "string", "example": "Asha Patel"},
                "password": {"type": "string", "example": "secret1"}
            }
        },
        "domain.StatusUpdateRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "example": "confirmed"}
            }
        },
        "domain.Notification": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["appointment", "contact"]},
                "data": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "v1.NotificationResult": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Booking Backend API",
	Description:      "Appointment booking and contact intake with email notification and an authenticated review dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
