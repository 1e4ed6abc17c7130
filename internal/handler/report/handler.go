package report

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fredyfurtado/salon-manager/internal/handler"
	"github.com/fredyfurtado/salon-manager/internal/report"
	reportsvc "github.com/fredyfurtado/salon-manager/internal/service/report"
)

type Handler struct {
	service *reportsvc.Service
}

func NewHandler(service *reportsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/revenue", h.Revenue)
		reports.GET("/ledger", h.Ledger)
	}
}

func (h *Handler) Revenue(c *gin.Context) {
	period, ok := h.period(c)
	if !ok {
		return
	}

	result, err := h.service.Revenue(c.Request.Context(), period, time.Now())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) Ledger(c *gin.Context) {
	period, ok := h.period(c)
	if !ok {
		return
	}

	result, err := h.service.Ledger(c.Request.Context(), period, time.Now())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) period(c *gin.Context) (report.Period, bool) {
	period, err := report.ParsePeriod(c.DefaultQuery("period", string(report.PeriodAll)))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return "", false
	}
	return period, true
}
