package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	"github.com/stylehub/barber-api/internal/middleware"
	uccash "github.com/stylehub/barber-api/internal/usecase/cash"
)

type CashHandler struct {
	register *uccash.Register
}

func NewCashHandler(register *uccash.Register) *CashHandler {
	return &CashHandler{register: register}
}

// ======================================================
// REQUESTS
// ======================================================

type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

type CashCutRequest struct {
	// Physically counted cash; omitted means a blind cut.
	CountedAmount *decimal.Decimal `json:"counted_amount"`
	Notes         string           `json:"notes"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *CashHandler) GetState(c *gin.Context) {
	st, err := h.register.GetState(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "cash_error", "Error interno.")
		return
	}

	httpresp.OK(c, st)
}

func (h *CashHandler) Withdraw(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "No autorizado.")
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	w, err := h.register.Withdraw(c.Request.Context(), req.Amount, req.Description, userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, w)
}

func (h *CashHandler) PerformCut(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "No autorizado.")
		return
	}

	var req CashCutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	cut, err := h.register.PerformCut(c.Request.Context(), req.CountedAmount, req.Notes, userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, cut)
}

func (h *CashHandler) History(c *gin.Context) {
	entries, err := h.register.History(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "cash_error", "Error interno.")
		return
	}

	httpresp.List(c, entries)
}

func (h *CashHandler) ListCuts(c *gin.Context) {
	cuts, err := h.register.ListCuts(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "cash_error", "Error interno.")
		return
	}

	httpresp.List(c, cuts)
}
