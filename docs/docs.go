// Package docs holds the Swagger document served under /swagger.
// Keep it in step with the handler annotations in internal/controller.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Reports readiness and the number of loaded questions",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/api/questions": {
            "get": {
                "description": "Returns every question with its steps. Answers and explanations are never included.",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PublicQuestionResponse"}}
                    },
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/questions/{id}": {
            "get": {
                "description": "Returns a single question without answers or explanations",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Get a question by ID",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PublicQuestionResponse"}},
                    "400": {"description": "Invalid ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/validate": {
            "post": {
                "description": "Compares the answer with the expected one, ignoring case and surrounding whitespace.\nA wrong answer is a 200 response with isCorrect=false and the expected answer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["validation"],
                "summary": "Validate an answer",
                "parameters": [
                    {
                        "description": "Question, step and answer",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ValidateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ValidationResponse"}},
                    "400": {"description": "Malformed request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Question or step not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "dto.PublicQuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "steps": {"type": "array", "items": {"$ref": "#/definitions/dto.PublicStepResponse"}},
                "title": {"type": "string"}
            }
        },
        "dto.PublicStepResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "instruction": {"type": "string"}
            }
        },
        "dto.ValidateRequest": {
            "type": "object",
            "required": ["questionId", "stepId", "userAnswer"],
            "properties": {
                "questionId": {"type": "integer", "example": 1},
                "stepId": {"type": "integer", "example": 1},
                "userAnswer": {"type": "string", "example": "ls -l"}
            }
        },
        "dto.ValidationResponse": {
            "type": "object",
            "properties": {
                "correctAnswer": {"type": "string"},
                "explanation": {"type": "string"},
                "isCorrect": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "RHCSA Command Practice API",
	Description:      "Serves practice questions and validates typed command answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
