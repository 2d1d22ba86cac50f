// Package docs registra la especificación Swagger del backend de
// desarrollo. Regenerar con: swag init -g internal/mockapi/router.go -o internal/mockapi/docs
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
        "/Animales": {
            "get": {"tags": ["recursos"], "summary": "Listar animales", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}},
            "post": {"tags": ["recursos"], "summary": "Crear animal", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/record"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem"}}}}
        },
        "/Animales/{id}": {
            "get": {"tags": ["recursos"], "summary": "Obtener animal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/messageResponse"}}}},
            "put": {"tags": ["recursos"], "summary": "Reemplazar animal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem"}}}},
            "delete": {"tags": ["recursos"], "summary": "Eliminar animal, sus tratamientos y su historia", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/messageResponse"}}}}
        },
        "/Duenos": {
            "get": {"tags": ["recursos"], "summary": "Listar dueños", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}},
            "post": {"tags": ["recursos"], "summary": "Crear dueño", "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/record"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem"}}}}
        },
        "/Duenos/{id}": {
            "get": {"tags": ["recursos"], "summary": "Obtener dueño", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}},
            "put": {"tags": ["recursos"], "summary": "Reemplazar dueño", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}},
            "delete": {"tags": ["recursos"], "summary": "Eliminar dueño (los animales quedan sin dueño)", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/Veterinarios": {
            "get": {"tags": ["recursos"], "summary": "Listar veterinarios", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}},
            "post": {"tags": ["recursos"], "summary": "Crear veterinario", "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/record"}}}}
        },
        "/Veterinarios/{id}": {
            "put": {"tags": ["recursos"], "summary": "Reemplazar veterinario", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}},
            "delete": {"tags": ["recursos"], "summary": "Eliminar veterinario y sus tratamientos", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/Tratamientos": {
            "get": {"tags": ["recursos"], "summary": "Listar tratamientos", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}},
            "post": {"tags": ["recursos"], "summary": "Crear tratamiento", "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/record"}}}}
        },
        "/Tratamientos/{id}": {
            "put": {"tags": ["recursos"], "summary": "Reemplazar tratamiento", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}},
            "delete": {"tags": ["recursos"], "summary": "Eliminar tratamiento", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/Especies": {
            "get": {"tags": ["recursos"], "summary": "Listar especies", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}},
            "post": {"tags": ["recursos"], "summary": "Crear especie", "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/record"}}}}
        },
        "/Especies/{id}": {
            "put": {"tags": ["recursos"], "summary": "Reemplazar especie", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}},
            "delete": {"tags": ["recursos"], "summary": "Eliminar especie (409 si tiene animales)", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/messageResponse"}}}}
        },
        "/Razas": {
            "get": {"tags": ["recursos"], "summary": "Listar razas", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}},
            "post": {"tags": ["recursos"], "summary": "Crear raza", "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/record"}}}}
        },
        "/Razas/{id}": {
            "put": {"tags": ["recursos"], "summary": "Reemplazar raza", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}},
            "delete": {"tags": ["recursos"], "summary": "Eliminar raza", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/Razas/por-especie/{especieID}": {
            "get": {"tags": ["recursos"], "summary": "Listar razas de una especie", "parameters": [{"type": "integer", "name": "especieID", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}}
        },
        "/Medicamentos": {
            "get": {"tags": ["recursos"], "summary": "Listar medicamentos", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/record"}}}}},
            "post": {"tags": ["recursos"], "summary": "Crear medicamento", "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/record"}}}}
        },
        "/Medicamentos/{id}": {
            "put": {"tags": ["recursos"], "summary": "Reemplazar medicamento", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/record"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}},
            "delete": {"tags": ["recursos"], "summary": "Eliminar medicamento", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/HistoriasClinicas/animal/{animalID}": {
            "get": {"tags": ["historias"], "summary": "Obtener la historia clínica de un animal", "description": "404 mientras el animal no tenga historia; se crea con el primer PUT.", "parameters": [{"type": "integer", "name": "animalID", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/messageResponse"}}}},
            "put": {"tags": ["historias"], "summary": "Crear o actualizar la historia clínica de un animal", "parameters": [{"type": "integer", "name": "animalID", "in": "path", "required": true}, {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/historyRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/record"}}}}
        }
    },
    "definitions": {
        "record": {"type": "object", "additionalProperties": true},
        "historyRequest": {"type": "object", "properties": {"animalId": {"type": "integer"}, "observaciones": {"type": "string"}}},
        "messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "problem": {"type": "object", "properties": {"type": {"type": "string"}, "title": {"type": "string"}, "status": {"type": "integer"}, "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Vet Clinic mock API",
	Description:      "Backend de desarrollo con el contrato REST de la clínica veterinaria.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
