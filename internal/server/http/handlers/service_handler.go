package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// ServiceHandler serves the unauthenticated service metadata endpoints.
type ServiceHandler struct {
	started time.Time
}

// NewServiceHandler constructs ServiceHandler.
func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{started: time.Now()}
}

// Root handles GET /.
func (h *ServiceHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Bengal Bay API Server",
		"version": serviceVersion,
		"endpoints": gin.H{
			"health":              "/health",
			"ready":               "/ready",
			"test":                "/api/test",
			"createOrder":         "/api/create-razorpay-order",
			"verifyPayment":       "/api/verify-payment",
			"logOrder":            "/api/log-order",
			"updatePaymentStatus": "/api/update-payment-status",
			"getOrders":           "/api/orders",
			"testSheets":          "/api/test-sheets",
		},
	})
}

// Health handles GET /health.
func (h *ServiceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.started).String(),
	})
}

// Ready handles GET /ready, the deployment platform's startup probe.
func (h *ServiceHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Test handles GET /api/test.
func (h *ServiceHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Bengal Bay Server is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
