package controller

import (
	"net/http"
	"procurement-portal/internal/service"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type supplierRoutesHandler struct {
	supplierService service.Supplier
	validate        *validator.Validate
	logger          *zap.Logger
}

func newSupplierRoutesHandler(outer *echo.Group, services *service.Services, g *guard, v *validator.Validate, logger *zap.Logger) *supplierRoutesHandler {
	h := &supplierRoutesHandler{supplierService: services.Supplier, validate: v, logger: logger}
	outer.GET("/suppliers/:id", h.GetSupplier, g.requireSession)
	outer.PUT("/suppliers/:id/docs", h.UpdateDocuments, g.requireSession)

	return h
}

// /suppliers/:id
func (h *supplierRoutesHandler) GetSupplier(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier id must be an integer"}); e != nil {
			return e
		}

		return err
	}

	supplier, err := h.supplierService.GetSupplier(c.Request().Context(), id)
	if err == nil {
		return c.JSON(http.StatusOK, supplier)
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	default:
		h.logger.Error("supplier lookup failed", zap.Int64("supplier_id", id), zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}

type updateDocumentsInput struct {
	Documents string `json:"documents" validate:"required"`
}

// /suppliers/:id/docs
func (h *supplierRoutesHandler) UpdateDocuments(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier id must be an integer"}); e != nil {
			return e
		}

		return err
	}

	var input updateDocumentsInput
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

	// A supplier may only touch its own document reference.
	if session := sessionSupplier(c); session == nil || session.Id != id {
		return c.JSON(http.StatusForbidden, errorResponse{"You may only update your own documents"})
	}

	err = h.supplierService.UpdateDocuments(c.Request().Context(), id, input.Documents)
	if err == nil {
		return c.JSON(http.StatusOK, "Documentación actualizada correctamente")
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	default:
		h.logger.Error("documents update failed", zap.Int64("supplier_id", id), zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}
