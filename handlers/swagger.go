package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the blog API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>blogai — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "blogai", "version": "v0.1.0" },
  "paths": {
    "/": {
      "get": { "summary": "Welcome message", "responses": { "200": { "description": "welcome text", "content": { "text/plain": {} } } } }
    },
    "/generate_blog": {
      "get": {
        "summary": "Generate a blog for a topic with the language model, validate it and store it",
        "parameters": [ { "name": "topic", "in": "query", "required": true, "schema": { "type": "string" } } ],
        "responses": {
          "200": { "description": "one of: 'Topic is required', 'Invalid JSON format', 'Blog schema is invalid', 'Blog has been validated and saved to the database'", "content": { "text/plain": {} } },
          "429": { "description": "rate limited (when enabled)" },
          "500": { "description": "model or database failure" }
        }
      }
    },
    "/get_blogs": {
      "get": {
        "summary": "List every stored blog",
        "responses": {
          "200": { "description": "stored blogs", "content": { "application/json": { "schema": { "type": "array", "items": { "$ref": "#/components/schemas/Blog" } } } } },
          "500": { "description": "database failure" }
        }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  },
  "components": {
    "schemas": {
      "Blog": {
        "type": "object",
        "required": ["title", "conclusion"],
        "properties": {
          "_id": { "type": "string" },
          "title": { "type": "string" },
          "sections": { "type": "array", "items": { "$ref": "#/components/schemas/Section" } },
          "conclusion": { "type": "string" }
        }
      },
      "Section": {
        "type": "object",
        "required": ["heading", "content"],
        "properties": {
          "heading": { "type": "string" },
          "content": { "type": "string" },
          "subheadings": { "type": "array", "items": { "type": "object" } }
        }
      }
    }
  }
}`
