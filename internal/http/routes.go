package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the control API on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/autosell", h.Autosell)
	rg.POST("/mall", h.ListInMall)

	rg.GET("/character", h.GetCharacter)
	rg.PUT("/inventory", h.UpdateInventory)
	rg.PUT("/autosell-mode", h.SetAutosellMode)

	compose := rg.Group("/compose")
	compose.GET("", h.GetCompose)
	compose.PUT("", h.UpdateCompose)
	compose.POST("/attachments", h.AttachItem)
	compose.DELETE("/attachments", h.ClearAttachments)
	compose.POST("/send", h.SendMessage)
	compose.GET("/tasks/:id", h.GetTask)

	rg.GET("/status", h.GetStatus)
	rg.GET("/store/snapshot", h.GetStoreSnapshot)
	rg.GET("/store/snapshots", h.ListStoreSnapshots)
}
