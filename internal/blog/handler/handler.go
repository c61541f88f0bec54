package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blogai/blogai/backend/go-services/internal/blog"
	"github.com/blogai/blogai/backend/go-services/internal/blog/service"
	"github.com/blogai/blogai/backend/go-services/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Response bodies. Logical failures are reported with HTTP 200 and one of
// these messages; clients match on the text.
const (
	MsgWelcome        = "Welcome to the Blog Generator API!"
	MsgTopicRequired  = "Topic is required"
	MsgInvalidJSON    = "Invalid JSON format"
	MsgInvalidSchema  = "Blog schema is invalid"
	MsgSaved          = "Blog has been validated and saved to the database"
	MsgInternalServer = "Internal Server Error"
)

// RegisterBlogRoutes mounts the welcome, generate and list routes. Extra
// handlers (rate limiting) run before generate only.
func RegisterBlogRoutes(r gin.IRoutes, svc service.Service, generateMiddleware ...gin.HandlerFunc) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, MsgWelcome)
	})

	generate := append(append([]gin.HandlerFunc{}, generateMiddleware...), func(c *gin.Context) {
		topic := c.Query("topic")
		res, err := svc.Generate(c.Request.Context(), topic)
		if err != nil {
			if errors.Is(err, service.ErrTopicRequired) {
				c.String(http.StatusOK, MsgTopicRequired)
				return
			}
			logger.Errorf("generate_blog topic=%q: %v", topic, err)
			c.String(http.StatusInternalServerError, MsgInternalServer)
			return
		}
		switch res.Outcome {
		case blog.OutcomeInvalidJSON:
			c.String(http.StatusOK, MsgInvalidJSON)
		case blog.OutcomeInvalidSchema:
			c.String(http.StatusOK, MsgInvalidSchema)
		default:
			c.String(http.StatusOK, MsgSaved)
		}
	})
	r.GET("/generate_blog", generate...)

	r.GET("/get_blogs", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Errorf("get_blogs: %v", err)
			c.String(http.StatusInternalServerError, MsgInternalServer)
			return
		}
		b, err := json.Marshal(list)
		if err != nil {
			logger.Errorf("get_blogs encode: %v", err)
			c.String(http.StatusInternalServerError, MsgInternalServer)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
	})
}
