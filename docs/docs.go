// Package docs registers the OpenAPI document served under /swagger.
// Keep it in sync with the godoc annotations on the HTTP handlers.
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
        "/api/answers": {
            "post": {
                "description": "Scores a mapping of question id to selected option index.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Grade submitted answers",
                "parameters": [
                    {
                        "description": "Selected option per question id",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/quiz.SubmitAnswersRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/quiz.GradeReport"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/questions": {
            "get": {
                "description": "Returns every question in bank order, without the answer key.",
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "List quiz questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/quiz.QuestionsResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "quiz.GradeReport": {
            "type": "object",
            "properties": {
                "percentage": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/quiz.QuestionResult"}},
                "score": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "quiz.PublicQuestion": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "options": {"type": "array", "items": {"type": "string"}},
                "question": {"type": "string"}
            }
        },
        "quiz.QuestionResult": {
            "type": "object",
            "properties": {
                "correct": {"type": "boolean"},
                "correct_answer": {"type": "integer"},
                "explanation": {"type": "string"},
                "id": {"type": "integer"},
                "selected": {"type": "integer", "x-nullable": true}
            }
        },
        "quiz.QuestionsResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/quiz.PublicQuestion"}}
            }
        },
        "quiz.SubmitAnswersRequest": {
            "type": "object",
            "properties": {
                "answers": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DevLLMOps Quiz",
	Description:      "Serves the DevLLMOps quiz questions and grades submitted answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
