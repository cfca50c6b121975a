package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"quotation-engine/internal/assistant"
	apperrors "quotation-engine/internal/common/errors"
	"quotation-engine/internal/common/logger"
)

type Handler struct {
	svc    *assistant.Service
	logger logger.Logger
}

func NewHandler(svc *assistant.Service, log logger.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: log.WithFields(map[string]interface{}{"component": "http"}),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/process-text", h.ProcessText)
	e.POST("/process-image", h.ProcessImage)
	e.GET("/quotation-status/:id", h.QuotationStatus)
	e.GET("/export-quotation/:id", h.ExportQuotation)
	e.GET("/all-quotations", h.AllQuotations)
}

type processTextRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

func (h *Handler) ProcessText(c echo.Context) error {
	var req processTextRequest
	if err := c.Bind(&req); err != nil || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No message provided"})
	}

	resp, err := h.svc.ProcessText(c.Request().Context(), req.ConversationID, req.Message)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ProcessImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image provided"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image provided"})
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image provided"})
	}

	return c.JSON(http.StatusOK, h.svc.ProcessImage(c.Request().Context(), raw))
}

func (h *Handler) QuotationStatus(c echo.Context) error {
	resp, err := h.svc.QuotationStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ExportQuotation(c echo.Context) error {
	resp, err := h.svc.ExportQuotation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) AllQuotations(c echo.Context) error {
	resp, err := h.svc.AllQuotations(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) fail(c echo.Context, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Conversation not found"})
	}

	h.logger.Error("request failed", map[string]interface{}{
		"path":  c.Path(),
		"error": err.Error(),
	})
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
