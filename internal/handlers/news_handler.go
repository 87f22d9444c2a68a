package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/httpresp"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

type NewsHandler struct {
	db *gorm.DB
}

func NewNewsHandler(db *gorm.DB) *NewsHandler {
	return &NewsHandler{db: db}
}

func (h *NewsHandler) List(c *gin.Context) {
	var items []models.NewsItem
	if err := h.db.Order("created_at DESC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_news", "Could not load news.")
		return
	}

	httpresp.List(c, items)
}
