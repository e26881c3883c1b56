// Package docs registra la especificación Swagger servida en /swagger/*.
// Se mantiene junto a las anotaciones godoc de los handlers.
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
    "securityDefinitions": {
        "AdminBasic": {"type": "basic"}
    },
    "paths": {
        "/register": {
            "post": {
                "tags": ["users"],
                "summary": "Registrar usuario",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/users.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/pets": {
            "get": {
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Response"}}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "tags": ["pets"],
                "summary": "Detalle de mascota",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "petID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/questionnaire": {
            "post": {
                "tags": ["questionnaires"],
                "summary": "Enviar cuestionario",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/questionnaires.submitRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/questionnaires.submission"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/questionnaire/{username}": {
            "get": {
                "tags": ["questionnaires"],
                "summary": "Estado actual del cuestionario y recomendaciones",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recommendations.currentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/adoptions": {
            "post": {
                "tags": ["adoptions"],
                "summary": "Crear solicitud de adopción",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/adoptions.createRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/adoptions.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/adoptions/{username}": {
            "get": {
                "tags": ["adoptions"],
                "summary": "Solicitudes de un usuario",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/adoptions.Response"}}}
                }
            }
        },
        "/admin/questionnaires": {
            "get": {
                "security": [{"AdminBasic": []}],
                "tags": ["admin"],
                "summary": "Cuestionarios pendientes",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/questionnaires.pending"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/admin/questionnaires/{questionnaireID}/approve": {
            "post": {
                "security": [{"AdminBasic": []}],
                "tags": ["admin"],
                "summary": "Aprobar cuestionario con mascotas",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "questionnaireID", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/questionnaires.approveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/questionnaires.approveResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/admin/questionnaires/{questionnaireID}/reject": {
            "post": {
                "security": [{"AdminBasic": []}],
                "tags": ["admin"],
                "summary": "Rechazar cuestionario",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "questionnaireID", "in": "path", "required": true},
                    {"in": "body", "name": "body", "schema": {"$ref": "#/definitions/workflow.expectedRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/questionnaires.rejectResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        },
        "/admin/adoptions": {
            "get": {
                "security": [{"AdminBasic": []}],
                "tags": ["admin"],
                "summary": "Todas las solicitudes de adopción",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/adoptions.Response"}}}
                }
            }
        },
        "/admin/adoptions/{requestID}/{action}": {
            "post": {
                "security": [{"AdminBasic": []}],
                "tags": ["admin"],
                "summary": "Aprobar o rechazar solicitud",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "requestID", "in": "path", "required": true},
                    {"type": "string", "enum": ["approve", "reject"], "name": "action", "in": "path", "required": true},
                    {"in": "body", "name": "body", "schema": {"$ref": "#/definitions/workflow.expectedRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/adoptions.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpio.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpio.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "users.registerRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "users.registerResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user": {
                    "type": "object",
                    "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "created_at": {"type": "string"}}
                }
            }
        },
        "pets.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "size": {"type": "string"},
                "activity_level": {"type": "string"},
                "maintenance_level": {"type": "string"},
                "budget": {"type": "string"}
            }
        },
        "questionnaires.Answers": {
            "type": "object",
            "required": ["living_space", "activity_level", "maintenance_level", "budget", "pet_type"],
            "properties": {
                "living_space": {"type": "string"},
                "activity_level": {"type": "string"},
                "maintenance_level": {"type": "string"},
                "budget": {"type": "string"},
                "pet_type": {"type": "string"}
            }
        },
        "questionnaires.submitRequest": {
            "type": "object",
            "required": ["username", "answers"],
            "properties": {"username": {"type": "string"}, "answers": {"$ref": "#/definitions/questionnaires.Answers"}}
        },
        "questionnaires.submission": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "APPROVED", "REJECTED"]},
                "answers": {"$ref": "#/definitions/questionnaires.Answers"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "questionnaires.pending": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "username": {"type": "string"},
                "status": {"type": "string"},
                "answers": {"$ref": "#/definitions/questionnaires.Answers"},
                "created_at": {"type": "string"}
            }
        },
        "questionnaires.approveRequest": {
            "type": "object",
            "required": ["pet_ids"],
            "properties": {"pet_ids": {"type": "array", "items": {"type": "integer"}}}
        },
        "questionnaires.approveResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "approved_pets": {"type": "array", "items": {"type": "integer"}},
                "questionnaire": {"$ref": "#/definitions/questionnaires.submission"}
            }
        },
        "questionnaires.rejectResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "questionnaire": {"$ref": "#/definitions/questionnaires.submission"}
            }
        },
        "workflow.expectedRequest": {
            "type": "object",
            "properties": {"expected_status": {"type": "string", "enum": ["PENDING", "APPROVED", "REJECTED"]}}
        },
        "recommendations.currentResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "answers": {"$ref": "#/definitions/questionnaires.Answers"},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/pets.Response"}},
                "count": {"type": "integer"}
            }
        },
        "adoptions.createRequest": {
            "type": "object",
            "required": ["pet_id", "username"],
            "properties": {"pet_id": {"type": "integer"}, "username": {"type": "string"}}
        },
        "adoptions.Response": {
            "type": "object",
            "properties": {
                "request_id": {"type": "integer"},
                "pet_id": {"type": "integer"},
                "pet_name": {"type": "string"},
                "username": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "APPROVED", "REJECTED"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pet Adoption Workflow API",
	Description:      "Cuestionarios de adopción, recomendaciones aprobadas por admin y solicitudes de adopción.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
