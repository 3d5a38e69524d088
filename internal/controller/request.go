package controller

import (
	"net/http"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/service"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type requestRoutesHandler struct {
	catalogService service.Catalog
	validate       *validator.Validate
	logger         *zap.Logger
}

func newRequestRoutesHandler(outer *echo.Group, services *service.Services, g *guard, v *validator.Validate, logger *zap.Logger) *requestRoutesHandler {
	h := &requestRoutesHandler{catalogService: services.Catalog, validate: v, logger: logger}
	outer.GET("/solicitudes", h.ListOpen, g.requireActiveSupplier)
	outer.POST("/solicitudes", h.Publish, g.requireAdmin)

	return h
}

type publishRequestInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Deadline    string `json:"deadline" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
	Units       string `json:"units" validate:"required,max=50"`
	Tags        string `json:"tags"`
	Status      string `json:"status" validate:"omitempty,oneof=open published"`
}

// /solicitudes
func (h *requestRoutesHandler) Publish(c echo.Context) error {
	var input publishRequestInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	deadline, err := time.Parse(time.RFC3339, input.Deadline)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Deadline must be an RFC3339 timestamp"}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateRequestInput{
		Title: input.Title, Description: input.Description, Deadline: deadline,
		Quantity: input.Quantity, Units: input.Units, Tags: input.Tags,
		Status: input.Status,
	}

	request, err := h.catalogService.PublishManual(c.Request().Context(), model)
	if err == nil {
		return c.JSON(http.StatusOK, request)
	}

	h.logger.Error("request publication failed", zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}

// /solicitudes
func (h *requestRoutesHandler) ListOpen(c echo.Context) error {
	requests, err := h.catalogService.ListOpen(c.Request().Context())
	if err == nil {
		return c.JSON(http.StatusOK, requests)
	}

	h.logger.Error("open requests listing failed", zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}
