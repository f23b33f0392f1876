package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/httpresp"
	"github.com/stylehub/barber-api/internal/models"
)

// CatalogHandler administers the three POS catalogs.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	DurationMin int             `json:"duration_min"`
	Color       string          `json:"color"`
}

type ProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type PromotionRequest struct {
	Name               string          `json:"name" binding:"required"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	ValidUntil         *time.Time      `json:"valid_until"`
}

// ======================================================
// SERVICE TYPES
// ======================================================

func (h *CatalogHandler) ListServiceTypes(c *gin.Context) {
	var services []models.ServiceType
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) CreateServiceType(c *gin.Context) {
	var req ServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if req.Price.IsNegative() || req.DurationMin < 0 {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	svc := models.ServiceType{
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Color:       req.Color,
	}
	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error interno.")
		return
	}
	httpresp.Created(c, svc)
}

func (h *CatalogHandler) UpdateServiceType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var svc models.ServiceType
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	var req ServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	svc.Name = req.Name
	svc.Price = req.Price
	svc.DurationMin = req.DurationMin
	svc.Color = req.Color

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error interno.")
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) DeleteServiceType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.db.Delete(&models.ServiceType{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error interno.")
		return
	}
	httpresp.OK(c, gin.H{"status": "ok"})
}

// ======================================================
// PRODUCTS
// ======================================================

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := h.db.Order("name ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, products)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	product := models.Product{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	}
	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Error interno.")
		return
	}
	httpresp.Created(c, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producto no encontrado.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Stock = req.Stock

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Error interno.")
		return
	}
	httpresp.OK(c, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.db.Delete(&models.Product{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Error interno.")
		return
	}
	httpresp.OK(c, gin.H{"status": "ok"})
}

// ======================================================
// PROMOTIONS
// ======================================================

func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	var promos []models.Promotion
	if err := h.db.Order("name ASC").Find(&promos).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, promos)
}

func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	// A promotion is either fixed-price or a percentage, not both.
	if req.DiscountPercentage.IsPositive() && !req.Price.IsZero() {
		httperr.BadRequest(c, "invalid_promotion", "Promoción inválida.")
		return
	}

	promo := models.Promotion{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		ValidUntil:         req.ValidUntil,
	}
	if err := h.db.Create(&promo).Error; err != nil {
		httperr.Internal(c, "failed_to_create_promotion", "Error interno.")
		return
	}
	httpresp.Created(c, promo)
}

func (h *CatalogHandler) UpdatePromotion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var promo models.Promotion
	if err := h.db.First(&promo, id).Error; err != nil {
		httperr.NotFound(c, "promotion_not_found", "Promoción no encontrada.")
		return
	}

	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if req.DiscountPercentage.IsPositive() && !req.Price.IsZero() {
		httperr.BadRequest(c, "invalid_promotion", "Promoción inválida.")
		return
	}

	promo.Name = req.Name
	promo.Description = req.Description
	promo.Price = req.Price
	promo.DiscountPercentage = req.DiscountPercentage
	promo.ValidUntil = req.ValidUntil

	if err := h.db.Save(&promo).Error; err != nil {
		httperr.Internal(c, "failed_to_update_promotion", "Error interno.")
		return
	}
	httpresp.OK(c, promo)
}

func (h *CatalogHandler) DeletePromotion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.db.Delete(&models.Promotion{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_promotion", "Error interno.")
		return
	}
	httpresp.OK(c, gin.H{"status": "ok"})
}
