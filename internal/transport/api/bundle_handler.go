package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BundleHandler struct {
	bundleService BundleServicer
}

func NewBundleHandler(bundleService BundleServicer) *BundleHandler {
	return &BundleHandler{bundleService: bundleService}
}

// Index GET RouteGroup + BundlesRoute. Доступные тарифы, фильтр по оператору через ?provider=.
func (h *BundleHandler) Index(c *gin.Context) {
	h.list(c, true)
}

// AdminIndex GET RouteGroup + AdminBundlesRoute. Все тарифы, включая отключенные.
func (h *BundleHandler) AdminIndex(c *gin.Context) {
	h.list(c, false)
}

func (h *BundleHandler) list(c *gin.Context, onlyAvailable bool) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bundles, err := h.bundleService.List(ctx, c.Query("provider"), onlyAvailable)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if bundles == nil {
		bundles = []domain.Bundle{}
	}
	c.JSON(http.StatusOK, bundles)
}

type BundleParams struct {
	PlanID      string          `binding:"max=50"                                     json:"planId"`
	Provider    string          `binding:"required"                                   json:"provider"`
	Type        domain.PlanType `binding:"required,oneof=SME GIFTING CORPORATE CABLE" json:"type"`
	Name        string          `binding:"required,max=100"                           json:"name"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	DataAmount  string          `binding:"max=50"                                     json:"dataAmount"`
	Validity    string          `binding:"max=50"                                     json:"validity"`
	IsBestValue bool            `json:"isBestValue"`
	IsAvailable bool            `json:"isAvailable"`
}

func (p BundleParams) bundle(id int64) domain.Bundle {
	return domain.Bundle{
		ID:          id,
		PlanID:      p.PlanID,
		Provider:    p.Provider,
		Type:        p.Type,
		Name:        p.Name,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		DataAmount:  p.DataAmount,
		Validity:    p.Validity,
		IsBestValue: p.IsBestValue,
		IsAvailable: p.IsAvailable,
	}
}

// Create POST RouteGroup + AdminBundlesRoute.
func (h *BundleHandler) Create(c *gin.Context) {
	h.save(c, 0)
}

// Update PUT RouteGroup + AdminBundleRoute.
func (h *BundleHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.save(c, id)
}

func (h *BundleHandler) save(c *gin.Context, id int64) {
	var params BundleParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bundle, err := h.bundleService.Save(ctx, params.bundle(id))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// Delete DELETE RouteGroup + AdminBundleRoute.
func (h *BundleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.bundleService.Delete(ctx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
