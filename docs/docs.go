// Package docs contiene el documento OpenAPI de la API (formato generado por swaggo/swag).
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
        "/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Calcular totales GST",
                "parameters": [
                    {
                        "description": "datos de la factura",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.InvoiceRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TotalsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/generate-invoice": {
            "post": {
                "description": "Devuelve el PDF como adjunto; los totales viajan en X-Subtotal, X-GST-Amount y X-Total.",
                "consumes": ["application/json"],
                "produces": ["application/pdf"],
                "tags": ["invoices"],
                "summary": "Generar factura PDF",
                "parameters": [
                    {
                        "description": "datos de la factura",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.InvoiceRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "detail": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldDetail"}}
            }
        },
        "dto.FieldDetail": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "dto.InvoiceRequest": {
            "type": "object",
            "properties": {
                "business_name": {"type": "string"},
                "business_address": {"type": "string"},
                "business_gst_number": {"type": "string"},
                "customer_name": {"type": "string"},
                "customer_phone": {"type": "string"},
                "invoice_number": {"type": "string"},
                "invoice_date": {"type": "string"},
                "item_name": {"type": "string"},
                "quantity": {"type": "number"},
                "unit_price": {"type": "number"},
                "gst_rate": {"type": "integer", "enum": [5, 12, 18, 28]}
            }
        },
        "dto.TotalsResponse": {
            "type": "object",
            "properties": {
                "subtotal": {"type": "number"},
                "gst_amount": {"type": "number"},
                "total": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo información de la API expuesta en /openapi.json.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GST Invoice API",
	Description:      "Cálculo de GST y generación de facturas PDF.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
