// Package docs registers the OpenAPI document served under /swagger.
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
        "/auth/register": {
            "post": {
                "description": "Creates a user together with its student, department or company profile in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new account",
                "parameters": [
                    {
                        "description": "Account information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Account registered",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.RegisterResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid request format or invalid role", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "description": "Returns the base account and its single role profile. The password hash is never returned.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get account by ID",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Account retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.AccountResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid user ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "REG_001"},
                "reason": {"type": "string", "example": "duplicate"},
                "message": {"type": "string", "example": "username or email already exists"},
                "field": {"type": "string", "example": "email"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "nickname", "password", "real_name", "role", "username"],
            "properties": {
                "real_name": {"type": "string", "example": "Alice Lin"},
                "email": {"type": "string", "example": "alice@example.edu"},
                "username": {"type": "string", "example": "alice01"},
                "password": {"type": "string", "maxLength": 72, "example": "secret123"},
                "nickname": {"type": "string", "example": "Ally"},
                "role": {"type": "string", "enum": ["student", "department", "company"], "example": "student"}
            }
        },
        "dto.RegisterResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string", "example": "5f0c3c1e-8a5b-4c49-9f7e-2b1d8a0c6e11"}
            }
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "real_name": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "nickname": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "department", "company"]},
                "created_at": {"type": "string"},
                "student_profile": {"$ref": "#/definitions/dto.StudentProfileData"},
                "department_profile": {"$ref": "#/definitions/dto.DepartmentData"},
                "company_profile": {"$ref": "#/definitions/dto.CompanyData"}
            }
        },
        "dto.StudentProfileData": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string", "example": "S5f0c3c1e"},
                "department_id": {"type": "string"},
                "entry_year": {"type": "integer", "example": 2024},
                "grade": {"type": "integer", "example": 1},
                "is_poor": {"type": "boolean", "example": false}
            }
        },
        "dto.DepartmentData": {
            "type": "object",
            "properties": {
                "department_id": {"type": "string"},
                "department_name": {"type": "string", "example": "Dept-CS"},
                "contact_person": {"type": "string"}
            }
        },
        "dto.CompanyData": {
            "type": "object",
            "properties": {
                "company_id": {"type": "string"},
                "company_name": {"type": "string", "example": "Acme"},
                "industry": {"type": "string", "example": "Unknown"},
                "contact_person": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CampusLink API",
	Description:      "Registration of student, department and company accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
