package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/stylehub/barber-api/internal/domain/pos"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	ucpos "github.com/stylehub/barber-api/internal/usecase/pos"
)

// ======================================================
// HANDLER
// ======================================================

type POSHandler struct {
	cart     *ucpos.CartService
	checkout *ucpos.Checkout
}

func NewPOSHandler(cart *ucpos.CartService, checkout *ucpos.Checkout) *POSHandler {
	return &POSHandler{cart: cart, checkout: checkout}
}

// ======================================================
// SESSION
// ======================================================

// Each till screen carries its own cart, keyed by the X-Session-ID
// header. A missing header starts a fresh session.
func sessionID(c *gin.Context) string {
	if sid := strings.TrimSpace(c.GetHeader("X-Session-ID")); sid != "" {
		return sid
	}

	sid := uuid.NewString()
	c.Header("X-Session-ID", sid)
	return sid
}

// ======================================================
// REQUESTS
// ======================================================

type AddCartItemRequest struct {
	Type          string `json:"type" binding:"required"`
	RefID         uint   `json:"ref_id" binding:"required"`
	AppointmentID *uint  `json:"appointment_id"`
}

type SetItemBarberRequest struct {
	Type     string `json:"type" binding:"required"`
	BarberID uint   `json:"barber_id" binding:"required"`
}

// parseItemType normalizes the wire value; ids are only unique within
// a type, so every line operation carries one.
func parseItemType(raw string) (domain.ItemType, bool) {
	t := domain.ItemType(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case domain.ItemService, domain.ItemProduct, domain.ItemPromotion:
		return t, true
	}
	return "", false
}

type CheckoutRequest struct {
	PaymentMethod  string           `json:"payment_method" binding:"required"`
	AmountReceived *decimal.Decimal `json:"amount_received"`

	ClientID  *uint  `json:"client_id"`
	GuestName string `json:"guest_name"`
	Notes     string `json:"notes"`
}

// ======================================================
// CART
// ======================================================

func (h *POSHandler) GetCart(c *gin.Context) {
	cart, err := h.cart.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		httperr.Internal(c, "cart_error", "Error interno.")
		return
	}

	httpresp.OK(c, cart)
}

func (h *POSHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	itemType, ok := parseItemType(req.Type)
	if !ok {
		httperr.BadRequest(c, "invalid_item_type", "Tipo de artículo inválido.")
		return
	}

	cart, err := h.cart.AddItem(c.Request.Context(), ucpos.AddItemInput{
		SessionID:     sessionID(c),
		Type:          itemType,
		RefID:         req.RefID,
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, cart)
}

func (h *POSHandler) RemoveItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	itemType, ok := parseItemType(c.Query("type"))
	if !ok {
		httperr.BadRequest(c, "invalid_item_type", "Tipo de artículo inválido.")
		return
	}

	cart, err := h.cart.RemoveItem(c.Request.Context(), sessionID(c), itemType, itemID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, cart)
}

func (h *POSHandler) SetItemBarber(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req SetItemBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	itemType, ok := parseItemType(req.Type)
	if !ok {
		httperr.BadRequest(c, "invalid_item_type", "Tipo de artículo inválido.")
		return
	}

	cart, err := h.cart.SetItemBarber(c.Request.Context(), sessionID(c), itemType, itemID, req.BarberID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, cart)
}

func (h *POSHandler) ClearCart(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), sessionID(c)); err != nil {
		httperr.Internal(c, "cart_error", "Error interno.")
		return
	}

	httpresp.OK(c, domain.NewCart())
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *POSHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	// Retried submits reuse the client's key; without one each attempt
	// is its own sale.
	key := strings.TrimSpace(c.GetHeader("X-Idempotency-Key"))
	if key == "" {
		key = uuid.NewString()
	}

	result, err := h.checkout.Execute(c.Request.Context(), ucpos.CheckoutInput{
		SessionID:      sessionID(c),
		PaymentMethod:  strings.ToUpper(req.PaymentMethod),
		AmountReceived: req.AmountReceived,
		ClientID:       req.ClientID,
		GuestName:      req.GuestName,
		Notes:          req.Notes,
		IdempotencyKey: key,
		ActorID:        actorID(c),
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, result)
}
