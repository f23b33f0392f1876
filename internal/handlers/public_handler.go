package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stylehub/barber-api/internal/config"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	"github.com/stylehub/barber-api/internal/models"
	ucappointment "github.com/stylehub/barber-api/internal/usecase/appointment"
	"github.com/stylehub/barber-api/internal/validators"
)

// PublicHandler serves the booking site: no auth, guests welcome.
type PublicHandler struct {
	db     *gorm.DB
	config *config.Config

	availability *ucappointment.GetAvailability
	create       *ucappointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	availability *ucappointment.GetAvailability,
	create *ucappointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		config:       cfg,
		availability: availability,
		create:       create,
	}
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServiceTypes(c *gin.Context) {
	var services []models.ServiceType
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// AVAILABILITY
// ======================================================

// GetAvailability answers "what times are free":
// ?barber_id=&service_type_id=&date=2026-08-30
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	var serviceTypeID uint
	if raw := c.Query("service_type_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_type_id", "Servicio inválido.")
			return
		}
		serviceTypeID = uint(id)
	}

	date, err := parseDate(h.config.Timezone, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:      uint(barberID),
		ServiceTypeID: serviceTypeID,
		Date:          date,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// GUEST BOOKING
// ======================================================

type GuestBookingRequest struct {
	BarberID      uint  `json:"barber_id" binding:"required"`
	ServiceTypeID *uint `json:"service_type_id"`

	GuestName  string `json:"guest_name" binding:"required"`
	GuestEmail string `json:"guest_email" binding:"required,email"`
	GuestPhone string `json:"guest_phone"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	Notes string `json:"notes"`
}

func (h *PublicHandler) Book(c *gin.Context) {
	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.IsEmailFormatValid(req.GuestEmail) {
		httperr.BadRequest(c, "invalid_email", "El correo no es válido.")
		return
	}

	start, err := parseDateTime(h.config.Timezone, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarberID:      req.BarberID,
		Client:        domain.GuestClient(req.GuestName, req.GuestEmail, req.GuestPhone),
		ServiceTypeID: req.ServiceTypeID,
		Start:         start,
		Notes:         req.Notes,
		Source:        domain.SourceWeb,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}
