// Package docs registers the Swagger document served at /swagger/*.
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
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Signup details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/auth/current": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SessionUser"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/auth/user": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SessionUser"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/advisory/crops": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Crop recommendation",
                "parameters": [
                    {"description": "Soil sample", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.cropsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.cropsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/advisory/fertilizer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Fertilizer advice",
                "parameters": [
                    {"description": "Crop and NPK readings", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.fertilizerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.fertilizerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/advisory/yield": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Yield prediction",
                "parameters": [
                    {"description": "Field description", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.yieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.YieldForecast"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/advisory/disease": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Disease detection",
                "parameters": [
                    {"type": "file", "description": "Leaf image", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Diagnosis"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/advisory/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "AI assistant",
                "parameters": [
                    {"description": "Question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.chatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.chatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/advisory/weather": {
            "get": {
                "produces": ["application/json"],
                "tags": ["advisory"],
                "summary": "Weather",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WeatherReport"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/advisory/speech": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["audio/mpeg"],
                "tags": ["advisory"],
                "summary": "Text to speech",
                "parameters": [
                    {"description": "Text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.speechRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.SessionUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.CropPrediction": {
            "type": "object",
            "properties": {
                "crop": {"type": "string"},
                "confidence": {"type": "number"}
            }
        },
        "domain.MonthlyForecast": {
            "type": "object",
            "properties": {
                "month": {"type": "string"},
                "rainfall": {"type": "number"},
                "temperature": {"type": "number"},
                "production": {"type": "number"}
            }
        },
        "domain.EnvironmentalFactors": {
            "type": "object",
            "properties": {
                "rainfall": {"type": "number"},
                "temperature_range": {"type": "string"},
                "soil_type": {"type": "string"},
                "growing_period": {"type": "string"}
            }
        },
        "domain.Revenue": {
            "type": "object",
            "properties": {
                "price_per_kg": {"type": "number"},
                "monthly_revenue": {"type": "number"}
            }
        },
        "domain.YieldForecast": {
            "type": "object",
            "properties": {
                "predicted_production": {"type": "number"},
                "predicted_yield": {"type": "number"},
                "confidence": {"type": "number"},
                "monthly_forecast": {"type": "array", "items": {"$ref": "#/definitions/domain.MonthlyForecast"}},
                "environmental_factors": {"$ref": "#/definitions/domain.EnvironmentalFactors"},
                "revenue": {"$ref": "#/definitions/domain.Revenue"}
            }
        },
        "domain.Diagnosis": {
            "type": "object",
            "properties": {
                "disease": {"type": "string"},
                "confidence": {"type": "number"},
                "description": {"type": "string"},
                "treatments": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.CurrentWeather": {
            "type": "object",
            "properties": {
                "temp": {"type": "integer"},
                "condition": {"type": "string"},
                "wind_speed": {"type": "number"},
                "humidity": {"type": "integer"}
            }
        },
        "domain.DailyForecast": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "temp": {"type": "integer"},
                "condition": {"type": "string"}
            }
        },
        "domain.WeatherReport": {
            "type": "object",
            "properties": {
                "location": {"type": "string"},
                "current": {"$ref": "#/definitions/domain.CurrentWeather"},
                "forecast": {"type": "array", "items": {"$ref": "#/definitions/domain.DailyForecast"}}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["name", "email", "password", "confirmPassword"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "confirmPassword": {"type": "string"}
            }
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.SessionUser"}
            }
        },
        "handler.cropsRequest": {
            "type": "object",
            "required": ["n", "p", "k", "ph"],
            "properties": {
                "n": {"type": "number"},
                "p": {"type": "number"},
                "k": {"type": "number"},
                "ph": {"type": "number", "maximum": 14, "minimum": 0},
                "temperature": {"type": "number"},
                "humidity": {"type": "number"},
                "rainfall": {"type": "number"}
            }
        },
        "handler.cropsResponse": {
            "type": "object",
            "properties": {
                "predictions": {"type": "array", "items": {"$ref": "#/definitions/domain.CropPrediction"}}
            }
        },
        "handler.fertilizerRequest": {
            "type": "object",
            "required": ["crop", "n", "p", "k"],
            "properties": {
                "crop": {"type": "string"},
                "n": {"type": "number"},
                "p": {"type": "number"},
                "k": {"type": "number"}
            }
        },
        "handler.fertilizerResponse": {
            "type": "object",
            "properties": {
                "advice": {"type": "string"}
            }
        },
        "handler.yieldRequest": {
            "type": "object",
            "required": ["state", "district", "crop", "season", "year"],
            "properties": {
                "state": {"type": "string"},
                "district": {"type": "string"},
                "crop": {"type": "string"},
                "season": {"type": "string"},
                "area": {"type": "number"},
                "year": {"type": "integer"},
                "price_per_quintal": {"type": "number"}
            }
        },
        "handler.chatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "language": {"type": "string", "enum": ["en", "bn", "hi", "ta", "te", "mr"]}
            }
        },
        "handler.chatResponse": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"}
            }
        },
        "handler.speechRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "language": {"type": "string", "enum": ["en", "bn", "hi", "ta", "te", "mr"]}
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
	Title:            "Agrinova API",
	Description:      "Session-based authentication and farm advisory endpoints for the Agrinova dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
