package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareLinkServices/care-scheduler/internal/cache"
	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/httpresp"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

const categoriesCacheKey = "categories:all"

type CategoryHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCategoryHandler(db *gorm.DB, cacheClient *cache.Cache) *CategoryHandler {
	return &CategoryHandler{db: db, cache: cacheClient}
}

// List serves the category catalogue. It changes rarely, so a short cache
// TTL keeps the filter panel cheap.
func (h *CategoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var categories []models.Category
	if h.cache.Get(ctx, categoriesCacheKey, &categories) {
		httpresp.List(c, categories)
		return
	}

	if err := h.db.Order("label ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not load categories.")
		return
	}

	h.cache.Set(ctx, categoriesCacheKey, categories, 5*time.Minute)
	httpresp.List(c, categories)
}

type CreateCategoryRequest struct {
	Label       string `json:"label" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Label is required.")
		return
	}

	category := models.Category{
		Label:       req.Label,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not save the category.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), categoriesCacheKey)
	httpresp.Created(c, category)
}
