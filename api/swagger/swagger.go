package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Exam Logistics API",
        "description": "Surveillance, room and convocation schedules for mock exams",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Datasets", "description": "Exam datasets and authoring issues"},
        {"name": "Dashboard", "description": "Teacher, room and day schedule views"},
        {"name": "Students", "description": "Classes and student convocations"},
        {"name": "Exports", "description": "PDF, CSV and XLSX documents behind signed links"}
    ],
    "paths": {
        "/datasets": {
            "get": {
                "tags": ["Datasets"],
                "summary": "List exam datasets",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/datasets/{id}": {
            "get": {
                "tags": ["Datasets"],
                "summary": "Dataset overview",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/datasets/{id}/issues": {
            "get": {
                "tags": ["Datasets"],
                "summary": "Authoring issues of a dataset",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/datasets/{id}/classes": {
            "get": {
                "tags": ["Students"],
                "summary": "Classes with convoked students",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/datasets/{id}/classes/{class}/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Students of a class",
                "parameters": [
                    {"$ref": "#/parameters/DatasetID"},
                    {"name": "class", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown class", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/datasets/{id}/teachers": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Missions grouped by teacher",
                "parameters": [
                    {"$ref": "#/parameters/DatasetID"},
                    {"name": "teacher", "in": "query", "type": "string", "description": "Teacher short name, e.g. CAPEL E."}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown teacher", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/datasets/{id}/rooms": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Room grid merged with support missions",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/datasets/{id}/rooms/timeline": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Merged room grid pivoted per room",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/datasets/{id}/rooms/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Students grouped by exam room",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown dataset", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/datasets/{id}/days": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Day by day slot view",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/datasets/{id}/cache": {
            "delete": {
                "tags": ["Dashboard"],
                "summary": "Drop the cached views of a dataset",
                "parameters": [{"$ref": "#/parameters/DatasetID"}],
                "responses": {
                    "204": {"description": "Invalidated"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/datasets/{id}/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Generate a document export",
                "consumes": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/DatasetID"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unsupported export", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Nothing to export", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/datasets/{id}/exports/batch": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue a whole-dataset export",
                "consumes": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/DatasetID"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBatchExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Nothing to export", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/jobs/{jobId}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Batch export status",
                "parameters": [{"name": "jobId", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown job", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/download/{token}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a generated export",
                "produces": ["application/pdf", "text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [{"name": "token", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "410": {"description": "Link expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "summary": "JSON snapshot of service metrics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "parameters": {
        "DatasetID": {"name": "id", "in": "path", "required": true, "type": "string", "description": "Dataset ID, e.g. bac-blanc-2025-12"}
    },
    "definitions": {
        "CreateExportRequest": {
            "type": "object",
            "required": ["kind"],
            "properties": {
                "kind": {"type": "string", "enum": ["teacher-convocation", "attendance-list", "teacher-schedule", "student-convocations"]},
                "format": {"type": "string", "enum": ["pdf", "csv", "xlsx"]},
                "teacher": {"type": "string"},
                "className": {"type": "string"}
            }
        },
        "CreateBatchExportRequest": {
            "type": "object",
            "required": ["kind"],
            "properties": {
                "kind": {"type": "string", "enum": ["all-student-convocations", "all-teacher-convocations"]},
                "format": {"type": "string", "enum": ["pdf", "xlsx"]}
            }
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
