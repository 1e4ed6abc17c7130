package ledger

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fredyfurtado/salon-manager/internal/handler"
	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/service/ledger"
)

type Handler struct {
	service *ledger.Service
}

func NewHandler(service *ledger.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	entries := rg.Group("/ledger")
	{
		entries.POST("", h.RecordEntry)
		entries.GET("", h.ListEntries)
	}
}

func (h *Handler) RecordEntry(c *gin.Context) {
	var req model.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.RecordEntry(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(entries))
}
