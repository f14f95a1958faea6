package contact

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/richxcame/agency-site/pkg/common"
	"github.com/richxcame/agency-site/pkg/config"
	"github.com/richxcame/agency-site/pkg/logger"
	"github.com/richxcame/agency-site/pkg/validation"
)

// Handler handles HTTP requests for the contact form
type Handler struct {
	service *Service
	limits  config.ContactConfig
}

// NewHandler creates a new contact handler
func NewHandler(service *Service, limits config.ContactConfig) *Handler {
	return &Handler{service: service, limits: limits}
}

// Submit accepts a multipart contact form submission, validates it and
// relays it over email. Validation problems return 400 before anything is
// sent; a delivery failure returns 500.
func (h *Handler) Submit(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBind(&sub); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid form payload")
		return
	}

	attachments, err := h.readAttachments(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Submit(c.Request.Context(), &sub, attachments); err != nil {
		var valErr *validation.ValidationError
		if errors.As(err, &valErr) {
			common.ErrorResponse(c, http.StatusBadRequest, valErr.Error())
			return
		}

		logger.WithContext(c.Request.Context()).Error("Contact submission failed",
			zap.Error(err))
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to send message, please try again later")
		return
	}

	common.SuccessMessageResponse(c, "Thanks for reaching out, we'll get back to you shortly")
}

// RegisterRoutes registers contact routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

// readAttachments pulls uploaded files out of the multipart form, enforcing
// the count and per-file size limits. A request with no files is fine.
func (h *Handler) readAttachments(c *gin.Context) ([]Attachment, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	files := form.File["attachments"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > h.limits.MaxAttachments {
		return nil, fmt.Errorf("too many attachments: at most %d allowed", h.limits.MaxAttachments)
	}

	maxBytes := h.limits.MaxAttachmentBytes()
	attachments := make([]Attachment, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxBytes {
			return nil, fmt.Errorf("attachment %q exceeds the %dMB limit", fh.Filename, h.limits.MaxAttachmentMB)
		}
		data, err := readFile(fh)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %q", fh.Filename)
		}
		attachments = append(attachments, Attachment{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return attachments, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
