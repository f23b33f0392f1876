package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	"github.com/stylehub/barber-api/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Error interno.")
		return
	}

	httpresp.List(c, hours)
}

// Update replaces the barber's whole weekly template in one shot.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, d := range req.Days {
		if d.Active && !validClockPair(d.StartTime, d.EndTime) {
			httperr.BadRequest(c, "invalid_working_hours", "Horario inválido.")
			return
		}
	}

	if err := h.db.Where("barber_id = ?", barberID).
		Delete(&models.WorkingHours{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Error interno.")
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingHours{
			BarberID:   barberID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Error interno.")
			return
		}
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

func validClockPair(start, end string) bool {
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && s.Before(e)
}
