package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/httpresp"
	"github.com/CareLinkServices/care-scheduler/internal/models"
)

type RelativeHandler struct {
	db *gorm.DB
}

func NewRelativeHandler(db *gorm.DB) *RelativeHandler {
	return &RelativeHandler{db: db}
}

func (h *RelativeHandler) List(c *gin.Context) {
	var relatives []models.Relative

	q := h.db.Order("lastname ASC, firstname ASC")
	if patientID := c.Query("patient_id"); patientID != "" {
		q = q.Where("patient_id = ?", patientID)
	}

	if err := q.Find(&relatives).Error; err != nil {
		httperr.Internal(c, "failed_to_list_relatives", "Could not load relatives.")
		return
	}

	httpresp.List(c, relatives)
}

type CreateRelativeRequest struct {
	PatientID uint   `json:"patient_id"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Notes     string `json:"notes"`
}

func (h *RelativeHandler) Create(c *gin.Context) {
	var req CreateRelativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Firstname and lastname are required.")
		return
	}

	relative := models.Relative{
		PatientID: req.PatientID,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Notes:     req.Notes,
	}

	if err := h.db.Create(&relative).Error; err != nil {
		httperr.Internal(c, "failed_to_create_relative", "Could not save the relative.")
		return
	}

	httpresp.Created(c, relative)
}
