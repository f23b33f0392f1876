package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	"github.com/stylehub/barber-api/internal/models"
	"github.com/stylehub/barber-api/internal/storage"
)

// BarberHandler is the admin surface for the team roster.
type BarberHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewBarberHandler(db *gorm.DB, photos *storage.PhotoStore) *BarberHandler {
	return &BarberHandler{db: db, photos: photos}
}

// ======================================================
// REQUESTS
// ======================================================

type BarberRequest struct {
	Name   string `json:"name" binding:"required"`
	Color  string `json:"color"`
	Active *bool  `json:"active"`
	UserID *uint  `json:"user_id"`
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	barber := models.Barber{
		Name:   req.Name,
		Color:  req.Color,
		Active: true,
		UserID: req.UserID,
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Error interno.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	barber.Name = req.Name
	barber.Color = req.Color
	barber.UserID = req.UserID
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Error interno.")
		return
	}

	httpresp.OK(c, barber)
}

// Deactivate keeps history; barbers are never hard-deleted.
func (h *BarberHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	barber.Active = false
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Error interno.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// PHOTO
// ======================================================

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Archivo de foto requerido.")
		return
	}
	defer file.Close()

	url, err := h.photos.UploadBarberPhoto(c.Request.Context(), barber.ID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "No se pudo procesar la foto.")
		return
	}

	barber.PhotoURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Error interno.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) DeletePhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	if err := h.photos.DeleteBarberPhoto(c.Request.Context(), barber.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_photo", "Error interno.")
		return
	}

	barber.PhotoURL = ""
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Error interno.")
		return
	}

	httpresp.OK(c, barber)
}
