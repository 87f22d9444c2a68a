package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CareLinkServices/care-scheduler/internal/audit"
	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/httpresp"
	"github.com/CareLinkServices/care-scheduler/internal/images"
	"github.com/CareLinkServices/care-scheduler/internal/middleware"
	"github.com/CareLinkServices/care-scheduler/internal/models"
	"github.com/CareLinkServices/care-scheduler/internal/storage"
)

type PatientHandler struct {
	db      *gorm.DB
	storage *storage.Client
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewPatientHandler(db *gorm.DB, st *storage.Client, auditDispatcher *audit.Dispatcher, log *zap.Logger) *PatientHandler {
	return &PatientHandler{db: db, storage: st, audit: auditDispatcher, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePatientRequest struct {
	Firstname   string `json:"firstname" binding:"required"`
	Lastname    string `json:"lastname" binding:"required"`
	Email       string `json:"email"`
	BirthDate   string `json:"birth_date"`
	CareLevel   int    `json:"care_level"`
	Pronoun     string `json:"pronoun"`
	Active      *bool  `json:"active"`
	ActiveSince string `json:"active_since"`
}

type UpdatePatientRequest struct {
	Notes    *string `json:"notes"`
	PhotoURL *string `json:"photo_url"`
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	var patients []models.Patient

	q := h.db.Order("lastname ASC, firstname ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(firstname || ' ' || lastname) LIKE ?", like)
	}

	if err := q.Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Could not load patients.")
		return
	}

	httpresp.List(c, patients)
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Firstname and lastname are required.")
		return
	}

	careLevel := req.CareLevel
	if careLevel <= 0 {
		careLevel = 1
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	patient := models.Patient{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
		CareLevel:   careLevel,
		Pronoun:     req.Pronoun,
		Active:      active,
		ActiveSince: req.ActiveSince,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Could not save the patient.")
		return
	}

	httpresp.Created(c, patient)
}

// ======================================================
// UPDATE (notes / photo url)
// ======================================================

func (h *PatientHandler) Update(c *gin.Context) {
	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Notes != nil {
		patient.Notes = *req.Notes
	}
	if req.PhotoURL != nil {
		patient.PhotoURL = *req.PhotoURL
	}

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not save the patient.")
		return
	}

	httpresp.OK(c, patient)
}

// ======================================================
// PHOTO UPLOAD
// ======================================================

// UploadPhoto normalises the uploaded image to webp, stores it in the
// photo bucket and persists the public URL only after the upload is
// confirmed. No optimistic update on failure.
func (h *PatientHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the uploaded file.")
		return
	}

	encoded, contentType, err := images.NormalizePhoto(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "The file must be a JPEG or PNG image.")
		return
	}

	path := fmt.Sprintf("patient-photos/%d.webp", patient.ID)
	url, err := h.storage.Upload(c.Request.Context(), path, encoded, contentType)
	if err != nil {
		h.log.Error("photo upload failed", zap.Uint("patient_id", patient.ID), zap.Error(err))
		httperr.Internal(c, "failed_to_upload_photo", "Could not upload the photo.")
		return
	}

	patient.PhotoURL = url
	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not save the photo URL.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "patient_photo_uploaded",
		Entity:   "patient",
		EntityID: fmt.Sprintf("%d", patient.ID),
	})

	httpresp.OK(c, gin.H{"photo_url": url})
}
