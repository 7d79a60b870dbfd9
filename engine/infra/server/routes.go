package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/infra/server/router"
)

type chatRequest struct {
	Query string `json:"query" binding:"required"`
}

type orderStatusRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

type createReturnRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	engine.GET("/healthz", s.handleHealth)
	engine.POST("/chat", s.handleChat)
	api := engine.Group("/api")
	{
		api.POST("/order-status", s.handleOrderStatus)
		api.POST("/create-return", s.handleCreateReturn)
		api.GET("/refund-policy", s.handleRefundPolicy)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	router.RespondOK(c, "Success", gin.H{"status": "ok"})
}

// handleChat routes one free-text message through the intent router. Empty
// queries are rejected here; the router assumes non-empty input.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reqErr := router.NewRequestError(http.StatusBadRequest, "query is required", err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
		return
	}
	answer := s.agent.Respond(c.Request.Context(), req.Query)
	router.RespondOK(c, "Success", gin.H{"response": answer})
}

func (s *Server) handleOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reqErr := router.NewRequestError(http.StatusBadRequest, "order_id is required", err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
		return
	}
	router.RespondOK(c, "Success", gin.H{"response": s.orders.OrderStatus(req.OrderID)})
}

func (s *Server) handleCreateReturn(c *gin.Context) {
	var req createReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reqErr := router.NewRequestError(http.StatusBadRequest, "order_id and reason are required", err)
		router.RespondWithError(c, reqErr.StatusCode, reqErr)
		return
	}
	router.RespondOK(c, "Success", gin.H{"response": s.orders.CreateReturn(req.OrderID, req.Reason)})
}

func (s *Server) handleRefundPolicy(c *gin.Context) {
	router.RespondOK(c, "Success", gin.H{"response": s.orders.RefundPolicy()})
}
