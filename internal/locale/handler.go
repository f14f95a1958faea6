package locale

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/agency-site/pkg/common"
	"github.com/richxcame/agency-site/pkg/i18n"
)

// Handler handles HTTP requests for locale detection and language selection
type Handler struct {
	service *Service
}

// NewHandler creates a new locale handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetLocale returns the visitor's resolved locale state.
// ?refresh=true re-runs geolocation instead of using the cached country.
func (h *Handler) GetLocale(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	detection := h.service.Detect(
		c.Request.Context(),
		c.ClientIP(),
		c.GetHeader("Accept-Language"),
		refresh,
	)
	common.SuccessResponse(c, detection)
}

type setLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// SetLanguage pins the visitor's language choice
func (h *Handler) SetLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "language is required")
		return
	}

	if !h.service.SetLanguage(c.ClientIP(), req.Language) {
		common.ErrorResponse(c, http.StatusBadRequest, "unsupported language")
		return
	}

	detection := h.service.Detect(c.Request.Context(), c.ClientIP(), c.GetHeader("Accept-Language"), false)
	common.SuccessResponse(c, detection)
}

// ResetLanguage drops the visitor's language override and re-detects
func (h *Handler) ResetLanguage(c *gin.Context) {
	h.service.ResetLanguage(c.ClientIP())

	detection := h.service.Detect(c.Request.Context(), c.ClientIP(), c.GetHeader("Accept-Language"), true)
	common.SuccessResponse(c, detection)
}

// GetTranslations returns the full translation tree for a language, with
// English filling any gaps.
func (h *Handler) GetTranslations(c *gin.Context) {
	lang := c.Param("lang")
	if !i18n.IsSupported(lang) {
		common.ErrorResponse(c, http.StatusNotFound, "unsupported language")
		return
	}
	common.SuccessResponse(c, gin.H{
		"language":     lang,
		"translations": i18n.LanguageTree(lang),
	})
}

// GetLanguages lists the supported language codes
func (h *Handler) GetLanguages(c *gin.Context) {
	common.SuccessResponse(c, gin.H{
		"languages": i18n.SupportedLanguages(),
		"default":   i18n.DefaultLang,
	})
}

// RegisterRoutes registers locale and translation routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locale", h.GetLocale)
	rg.PUT("/locale/language", h.SetLanguage)
	rg.DELETE("/locale/language", h.ResetLanguage)

	i18nGroup := rg.Group("/i18n")
	{
		i18nGroup.GET("/languages", h.GetLanguages)
		i18nGroup.GET("/:lang", h.GetTranslations)
	}
}
