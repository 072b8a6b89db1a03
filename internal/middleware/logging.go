package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/api"
)

// RequestIDHeader carries the correlation id between the browser, the
// console and the backend API.
const RequestIDHeader = "X-Request-Id"

// Logging assigns each request a correlation id, propagates it to upstream
// API calls through the request context, and logs the outcome.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Request = c.Request.WithContext(api.WithRequestID(c.Request.Context(), id))

		c.Next()

		log.Printf("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), id)
	}
}
