package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CareLinkServices/care-scheduler/internal/domain/schedule"
	"github.com/CareLinkServices/care-scheduler/internal/httperr"
	"github.com/CareLinkServices/care-scheduler/internal/httpresp"
	"github.com/CareLinkServices/care-scheduler/internal/middleware"
	ucAppointment "github.com/CareLinkServices/care-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListWindow
	searchUC *ucAppointment.SearchAppointments
	layoutUC *ucAppointment.DayLayout
	loc      *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListWindow,
	searchUC *ucAppointment.SearchAppointments,
	layoutUC *ucAppointment.DayLayout,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		searchUC: searchUC,
		layoutUC: layoutUC,
		loc:      loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
	Patient   string `json:"patient"`
	Category  string `json:"category"`
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) refDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now().In(h.loc), true
	}

	ref, err := schedule.ParseDate(dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, schedule.CodeInvalidDate, "Date must be DD.MM.YYYY and exist on the calendar.")
		return time.Time{}, false
	}
	return ref, true
}

func writeValidationError(c *gin.Context, err error) bool {
	switch httperr.BusinessCode(err) {
	case schedule.CodeMissingField:
		httperr.BadRequest(c, schedule.CodeMissingField, "All required fields must be filled in.")
	case schedule.CodeInvalidDate:
		httperr.BadRequest(c, schedule.CodeInvalidDate, "Date must be DD.MM.YYYY and exist on the calendar.")
	case schedule.CodeInvalidTime:
		httperr.BadRequest(c, schedule.CodeInvalidTime, "Times must be HH:mm in 24-hour format.")
	case schedule.CodeEndBeforeStart:
		httperr.BadRequest(c, schedule.CodeEndBeforeStart, "Start time must be before end time.")
	default:
		return false
	}
	return true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), userID, schedule.CreateInput{
		Date:     req.Date,
		Title:    req.Title,
		Start:    req.StartTime,
		End:      req.EndTime,
		Location: req.Location,
		Notes:    req.Notes,
		Patient:  req.Patient,
		Category: req.Category,
	})
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not save the appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (window filter)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	view, ok := schedule.ParseView(c.DefaultQuery("view", string(schedule.ViewWeek)))
	if !ok {
		httperr.BadRequest(c, "invalid_view", "View must be week, month or all.")
		return
	}

	ref, ok := h.refDate(c)
	if !ok {
		return
	}

	window, err := h.listUC.Execute(c.Request.Context(), view, ref)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.OK(c, window)
}

// ======================================================
// SHIFT (reference-date navigation)
// ======================================================

func (h *AppointmentHandler) Shift(c *gin.Context) {
	view, ok := schedule.ParseView(c.DefaultQuery("view", string(schedule.ViewWeek)))
	if !ok || view == schedule.ViewAll {
		httperr.BadRequest(c, "invalid_view", "Shift only applies to week and month views.")
		return
	}

	ref, ok := h.refDate(c)
	if !ok {
		return
	}

	steps := 1
	if c.Query("dir") == "prev" {
		steps = -1
	}

	ref = schedule.Shift(view, ref, steps)

	window, err := h.listUC.Execute(c.Request.Context(), view, ref)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":   ref.Format("02.01.2006"),
		"window": window,
	})
}

// ======================================================
// SEARCH (attribute filter)
// ======================================================

func (h *AppointmentHandler) Search(c *gin.Context) {
	view, ok := schedule.ParseView(c.DefaultQuery("view", string(schedule.ViewAll)))
	if !ok {
		httperr.BadRequest(c, "invalid_view", "View must be week, month or all.")
		return
	}

	ref, ok := h.refDate(c)
	if !ok {
		return
	}

	filter := schedule.Filter{
		Term:     c.Query("term"),
		Category: c.Query("category"),
		Patient:  c.Query("patient"),
		Bucket:   c.Query("period"),
	}

	if from := c.Query("from"); from != "" {
		t, err := schedule.ParseDate(from, h.loc)
		if err != nil {
			httperr.BadRequest(c, schedule.CodeInvalidDate, "from must be DD.MM.YYYY.")
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := schedule.ParseDate(to, h.loc)
		if err != nil {
			httperr.BadRequest(c, schedule.CodeInvalidDate, "to must be DD.MM.YYYY.")
			return
		}
		// inclusive upper bound covers the whole day
		t = t.Add(24*time.Hour - time.Millisecond)
		filter.To = &t
	}

	results, err := h.searchUC.Execute(c.Request.Context(), view, ref, filter)
	if err != nil {
		httperr.Internal(c, "failed_to_search_appointments", "Could not search appointments.")
		return
	}

	httpresp.List(c, results)
}

// ======================================================
// DAY-GRID LAYOUT
// ======================================================

func (h *AppointmentHandler) Layout(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := schedule.ParseDate(dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, schedule.CodeInvalidDate, "Date must be DD.MM.YYYY and exist on the calendar.")
		return
	}

	blocks, err := h.layoutUC.Execute(c.Request.Context(), day, c.Query("columns") == "true")
	if err != nil {
		httperr.Internal(c, "failed_to_compute_layout", "Could not compute the day layout.")
		return
	}

	httpresp.List(c, blocks)
}
