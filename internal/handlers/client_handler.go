package handlers

import (
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

// ClientHandler is the self-service surface for registered clients:
// they book under their own account, see their own history and cancel
// their own appointments, nothing else.
type ClientHandler struct {
	config *config.Config

	create *ucappointment.CreateAppointment
	cancel *ucappointment.CancelAppointment
	list   *ucappointment.ListMyAppointments
}

func NewClientHandler(
	cfg *config.Config,
	create *ucappointment.CreateAppointment,
	cancel *ucappointment.CancelAppointment,
	list *ucappointment.ListMyAppointments,
) *ClientHandler {
	return &ClientHandler{
		config: cfg,
		create: create,
		cancel: cancel,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientBookingRequest struct {
	BarberID      uint  `json:"barber_id" binding:"required"`
	ServiceTypeID *uint `json:"service_type_id"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	Notes string `json:"notes"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ClientHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "No autorizado.")
		return
	}

	aps, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *ClientHandler) Book(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "No autorizado.")
		return
	}

	var req ClientBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, err := parseDateTime(h.config.Timezone, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	// The account on the token books; the body cannot name someone
	// else.
	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarberID:      req.BarberID,
		Client:        domain.RegisteredClient(userID),
		ServiceTypeID: req.ServiceTypeID,
		Start:         start,
		Notes:         req.Notes,
		Source:        domain.SourceWeb,
		ActorID:       &userID,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *ClientHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "No autorizado.")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.ExecuteForOwner(c.Request.Context(), id, userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
