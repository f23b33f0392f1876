package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	"github.com/stylehub/barber-api/internal/models"
	uccrm "github.com/stylehub/barber-api/internal/usecase/crm"
)

type CRMHandler struct {
	service *uccrm.Service
}

func NewCRMHandler(service *uccrm.Service) *CRMHandler {
	return &CRMHandler{service: service}
}

// ======================================================
// REQUESTS
// ======================================================

type LeadRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Source string `json:"source"`
}

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ConvertToOpportunityRequest struct {
	ServiceTypeID uint `json:"service_type_id" binding:"required"`
}

type OpportunityUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type ConvertToClientRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// ======================================================
// LEADS
// ======================================================

func (h *CRMHandler) ListLeads(c *gin.Context) {
	leads, err := h.service.ListLeads(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, leads)
}

func (h *CRMHandler) CreateLead(c *gin.Context) {
	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	lead := models.Lead{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Source: req.Source,
	}
	if err := h.service.CreateLead(c.Request.Context(), &lead); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, lead)
}

func (h *CRMHandler) UpdateLeadStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req LeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	lead, err := h.service.UpdateLeadStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, lead)
}

func (h *CRMHandler) ConvertToOpportunity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ConvertToOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	opp, err := h.service.ConvertLeadToOpportunity(c.Request.Context(), id, req.ServiceTypeID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, opp)
}

func (h *CRMHandler) ConvertToClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ConvertToClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	user, err := h.service.ConvertLeadToClient(c.Request.Context(), id, req.Password, actorID(c))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, user)
}

// ======================================================
// OPPORTUNITIES
// ======================================================

func (h *CRMHandler) ListOpportunities(c *gin.Context) {
	opps, err := h.service.ListOpportunities(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, opps)
}

func (h *CRMHandler) UpdateOpportunity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req OpportunityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	opp, err := h.service.UpdateOpportunity(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, opp)
}
