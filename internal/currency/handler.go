package currency

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/agency-site/pkg/common"
)

// CountryResolver resolves the caller's country; implemented by the locale service.
type CountryResolver interface {
	Country(ctx context.Context, ip, acceptLanguage string, forceRefresh bool) string
}

// Handler handles HTTP requests for currency
type Handler struct {
	service  *Service
	resolver CountryResolver
}

// NewHandler creates a new currency handler
func NewHandler(service *Service, resolver CountryResolver) *Handler {
	return &Handler{service: service, resolver: resolver}
}

// GetConfig returns the currency configuration for the caller's country.
// An explicit ?country= overrides geolocation.
func (h *Handler) GetConfig(c *gin.Context) {
	country := h.country(c)
	common.SuccessResponse(c, ConfigResponse{
		Country: country,
		Config:  ConfigFor(country),
	})
}

// GetRates returns the active exchange rate table
func (h *Handler) GetRates(c *gin.Context) {
	table := h.service.Rates(c.Request.Context())
	common.SuccessResponse(c, RatesResponse{
		Base:      "USD",
		Source:    table.Source,
		FetchedAt: table.FetchedAt,
		Rates:     table.Rates,
	})
}

// GetPrice returns a USD amount formatted for the caller's locale
func (h *Handler) GetPrice(c *gin.Context) {
	amountStr := c.Query("amount")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount < 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "amount must be a non-negative number")
		return
	}

	country := h.country(c)
	cfg := ConfigFor(country)
	formatted := h.service.FormatPrice(c.Request.Context(), amount, cfg)

	common.SuccessResponse(c, PriceResponse{
		AmountUSD: amount,
		Currency:  cfg.CurrencyCode,
		Formatted: formatted,
	})
}

// RegisterRoutes registers currency routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	curr := rg.Group("/currency")
	{
		curr.GET("/config", h.GetConfig)
		curr.GET("/rates", h.GetRates)
		curr.GET("/price", h.GetPrice)
	}
}

func (h *Handler) country(c *gin.Context) string {
	if country := c.Query("country"); country != "" {
		return country
	}
	return h.resolver.Country(
		c.Request.Context(),
		c.ClientIP(),
		c.GetHeader("Accept-Language"),
		false,
	)
}
