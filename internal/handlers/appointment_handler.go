package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stylehub/barber-api/internal/config"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	"github.com/stylehub/barber-api/internal/middleware"
	ucappointment "github.com/stylehub/barber-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	config *config.Config

	create      *ucappointment.CreateAppointment
	reschedule  *ucappointment.RescheduleAppointment
	cancel      *ucappointment.CancelAppointment
	complete    *ucappointment.CompleteAppointment
	confirm     *ucappointment.ConfirmAppointment
	linkClient  *ucappointment.LinkGuestToClient
	listByDate  *ucappointment.ListAppointmentsByDate
	listByMonth *ucappointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	cfg *config.Config,
	create *ucappointment.CreateAppointment,
	reschedule *ucappointment.RescheduleAppointment,
	cancel *ucappointment.CancelAppointment,
	complete *ucappointment.CompleteAppointment,
	confirm *ucappointment.ConfirmAppointment,
	linkClient *ucappointment.LinkGuestToClient,
	listByDate *ucappointment.ListAppointmentsByDate,
	listByMonth *ucappointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:      cfg,
		create:      create,
		reschedule:  reschedule,
		cancel:      cancel,
		complete:    complete,
		confirm:     confirm,
		linkClient:  linkClient,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID      uint  `json:"barber_id" binding:"required"`
	ServiceTypeID *uint `json:"service_type_id"`

	// Either a registered client id or the guest fields.
	ClientID    *uint  `json:"client_id"`
	GuestName   string `json:"guest_name"`
	GuestEmail  string `json:"guest_email"`
	GuestPhone  string `json:"guest_phone"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
	// Optional explicit end, "15:04"; defaults to the service duration.
	EndTime string `json:"end_time"`

	Notes  string `json:"notes"`
	Source string `json:"source"`
}

type RescheduleAppointmentRequest struct {
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	EndTime string `json:"end_time"`
}

type LinkClientRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func actorID(c *gin.Context) *uint {
	if id, ok := middleware.UserID(c); ok {
		return &id
	}
	return nil
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) parseWindow(
	c *gin.Context,
	date, startStr, endStr string,
) (time.Time, *time.Time, bool) {

	start, err := parseDateTime(h.config.Timezone, date, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return time.Time{}, nil, false
	}

	var end *time.Time
	if endStr != "" {
		e, err := parseDateTime(h.config.Timezone, date, endStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
			return time.Time{}, nil, false
		}
		end = &e
	}

	return start, end, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, end, ok := h.parseWindow(c, req.Date, req.Time, req.EndTime)
	if !ok {
		return
	}

	var client domain.Client
	if req.ClientID != nil {
		client = domain.RegisteredClient(*req.ClientID)
	} else {
		client = domain.GuestClient(req.GuestName, req.GuestEmail, req.GuestPhone)
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarberID:      req.BarberID,
		Client:        client,
		ServiceTypeID: req.ServiceTypeID,
		Start:         start,
		End:           end,
		Notes:         req.Notes,
		Source:        req.Source,
		ActorID:       actorID(c),
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE / LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, end, ok := h.parseWindow(c, req.Date, req.Time, req.EndTime)
	if !ok {
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucappointment.RescheduleAppointmentInput{
		AppointmentID: id,
		Start:         start,
		End:           end,
		ActorID:       actorID(c),
		ActorRole:     middleware.UserRole(c),
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, actorID(c))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id, actorID(c))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, actorID(c))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) LinkClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req LinkClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.linkClient.Execute(c.Request.Context(), id, req.UserID, actorID(c))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTINGS
// ======================================================

// ListByDate serves the day calendar: ?barber_id=&date=2026-08-30
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	date, err := parseDate(h.config.Timezone, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ListByMonth serves the month overview: ?barber_id=&year=2026&month=8
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	aps, err := h.listByMonth.Execute(
		c.Request.Context(),
		uint(barberID),
		year,
		time.Month(month),
		shopLocation(h.config.Timezone),
	)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, aps)
}
