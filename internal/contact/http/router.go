package http

import "github.com/gin-gonic/gin"

// Register attaches contact routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
	rg.GET("/contact", h.probe)
}
