package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "DealDesk API",
        "description": "Deal pipeline tracker: configurable columns, saved filter views and dashboard metrics",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Deals", "description": "Deal pipeline CRUD and filtered listing"},
        {"name": "Columns", "description": "Per-table column configuration"},
        {"name": "Views", "description": "Saved filter views"},
        {"name": "Dashboard", "description": "Pipeline aggregates"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/deals": {
            "get": {
                "tags": ["Deals"],
                "summary": "List deals with filters applied",
                "description": "Any query parameter other than searchTerm is treated as a column filter keyed by column key.",
                "parameters": [
                    {"name": "searchTerm", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "sector", "in": "query", "type": "string"},
                    {"name": "amount", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Deals"],
                "summary": "Add a deal to the pipeline",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDealRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/deals/{id}": {
            "get": {
                "tags": ["Deals"],
                "summary": "Fetch one deal",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Deals"],
                "summary": "Edit a deal",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateDealRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Deals"],
                "summary": "Remove a deal",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/deals/values/{key}": {
            "get": {
                "tags": ["Deals"],
                "summary": "Distinct values for a column key",
                "parameters": [
                    {"name": "key", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{table}/columns": {
            "get": {
                "tags": ["Columns"],
                "summary": "Column configuration for a table",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Columns"],
                "summary": "Add a column",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateColumnRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Columns"],
                "summary": "Replace the column set wholesale",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplaceColumnsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{table}/columns/{id}": {
            "put": {
                "tags": ["Columns"],
                "summary": "Edit a column",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateColumnRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Columns"],
                "summary": "Remove a column",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{table}/columns/{id}/move": {
            "post": {
                "tags": ["Columns"],
                "summary": "Move a column up or down",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MoveColumnRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{table}/columns/{id}/visibility": {
            "post": {
                "tags": ["Columns"],
                "summary": "Toggle a column's visibility",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tables/{table}/rows": {
            "get": {
                "tags": ["Columns"],
                "summary": "Display-ready table rows",
                "parameters": [
                    {"name": "table", "in": "path", "required": true, "type": "string", "enum": ["deals", "lists"]},
                    {"name": "searchTerm", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/views": {
            "get": {
                "tags": ["Views"],
                "summary": "List saved views",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Views"],
                "summary": "Save the current filter state as a named view",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveViewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/views/{id}": {
            "delete": {
                "tags": ["Views"],
                "summary": "Delete a saved view",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/views/{id}/select": {
            "post": {
                "tags": ["Views"],
                "summary": "Activate a view and return its filter snapshot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/summary": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Pipeline dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateDealRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "company": {"type": "string"},
                "status": {"type": "string", "enum": ["Pass", "Engage", "OnHold", "BusinessDD", "TermSheet", "Portfolio"]},
                "amount": {"type": "number"},
                "stage": {"type": "string"},
                "assignedTo": {"type": "string"},
                "description": {"type": "string"},
                "contactName": {"type": "string"},
                "contactEmail": {"type": "string"},
                "notes": {"type": "string"},
                "sector": {"type": "string"},
                "weekDeals": {"type": "string"}
            },
            "required": ["name", "company", "status"]
        },
        "UpdateDealRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "company": {"type": "string"},
                "status": {"type": "string", "enum": ["Pass", "Engage", "OnHold", "BusinessDD", "TermSheet", "Portfolio"]},
                "amount": {"type": "number"},
                "stage": {"type": "string"},
                "assignedTo": {"type": "string"},
                "description": {"type": "string"},
                "contactName": {"type": "string"},
                "contactEmail": {"type": "string"},
                "notes": {"type": "string"},
                "sector": {"type": "string"},
                "weekDeals": {"type": "string"}
            },
            "required": ["name", "company", "status"]
        },
        "CreateColumnRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "key": {"type": "string"},
                "type": {"type": "string", "enum": ["text", "number", "date", "singleSelect", "multiSelect", "currency"]},
                "options": {"type": "array", "items": {"type": "string"}},
                "required": {"type": "boolean"},
                "visible": {"type": "boolean"}
            },
            "required": ["name", "key", "type"]
        },
        "UpdateColumnRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["text", "number", "date", "singleSelect", "multiSelect", "currency"]},
                "options": {"type": "array", "items": {"type": "string"}},
                "required": {"type": "boolean"},
                "visible": {"type": "boolean"}
            },
            "required": ["name", "type"]
        },
        "MoveColumnRequest": {
            "type": "object",
            "properties": {
                "direction": {"type": "string", "enum": ["up", "down"]}
            },
            "required": ["direction"]
        },
        "ReplaceColumnsRequest": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"$ref": "#/definitions/ColumnDefinition"}}
            },
            "required": ["columns"]
        },
        "ColumnDefinition": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "key": {"type": "string"},
                "type": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "required": {"type": "boolean"},
                "visible": {"type": "boolean"},
                "order": {"type": "integer"}
            }
        },
        "SaveViewRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "filters": {"type": "object", "additionalProperties": {"type": "string"}},
                "searchTerm": {"type": "string"},
                "include": {"type": "object", "additionalProperties": {"type": "boolean"}}
            },
            "required": ["name"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
