package controller

import (
	"net/http"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/service"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type erpRoutesHandler struct {
	catalogService service.Catalog
	logger         *zap.Logger
}

func newERPRoutesHandler(outer *echo.Group, services *service.Services, g *guard, logger *zap.Logger) *erpRoutesHandler {
	h := &erpRoutesHandler{catalogService: services.Catalog, logger: logger}
	outer.POST("/erp/import", h.Import, g.requireERPKey)

	return h
}

// /erp/import
func (h *erpRoutesHandler) Import(c echo.Context) error {
	var items []entity.ERPItem
	if err := c.Bind(&items); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	summary, err := h.catalogService.ImportBatch(c.Request().Context(), items)
	if err == nil {
		return c.JSON(http.StatusOK, summary)
	}

	h.logger.Error("erp import failed", zap.Int("items", len(items)), zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}
