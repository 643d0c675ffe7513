package server

import (
	"time"

	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = utils.GenerateID()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	}
	if lotID := c.Param("lot_id"); lotID != "" {
		fields["lot_id"] = lotID
	}
	if sellerID := c.Param("seller_id"); sellerID != "" {
		fields["seller_id"] = sellerID
	}
	utils.Info("HTTP Request", fields)
}
