package controller

import (
	"net/http"
	"procurement-portal/internal/service"
	"strconv"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type adminRoutesHandler struct {
	supplierService service.Supplier
	logger          *zap.Logger
}

func newAdminRoutesHandler(outer *echo.Group, services *service.Services, g *guard, logger *zap.Logger) *adminRoutesHandler {
	h := &adminRoutesHandler{supplierService: services.Supplier, logger: logger}
	outer.GET("/admin/suppliers", h.ListPending, g.requireAdmin)
	outer.GET("/admin/suppliers/approved", h.ListApproved, g.requireAdmin)
	outer.PUT("/admin/approve/:id", h.Approve, g.requireAdmin)
	outer.DELETE("/admin/reject/:id", h.Reject, g.requireAdmin)
	outer.PUT("/admin/compliance/:id", h.UpdateCompliance, g.requireAdmin)

	return h
}

// /admin/suppliers
func (h *adminRoutesHandler) ListPending(c echo.Context) error {
	return h.listByActiveState(c, false)
}

// /admin/suppliers/approved
func (h *adminRoutesHandler) ListApproved(c echo.Context) error {
	return h.listByActiveState(c, true)
}

func (h *adminRoutesHandler) listByActiveState(c echo.Context, active bool) error {
	suppliers, err := h.supplierService.ListByActiveState(c.Request().Context(), active)
	if err == nil {
		return c.JSON(http.StatusOK, suppliers)
	}

	h.logger.Error("supplier listing failed", zap.Bool("active", active), zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}

// /admin/approve/:id
func (h *adminRoutesHandler) Approve(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier id must be an integer"}); e != nil {
			return e
		}

		return err
	}

	supplier, err := h.supplierService.Approve(c.Request().Context(), id)
	if err == nil {
		return c.JSON(http.StatusOK, supplier)
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	default:
		h.logger.Error("supplier approval failed", zap.Int64("supplier_id", id), zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/reject/:id
func (h *adminRoutesHandler) Reject(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier id must be an integer"}); e != nil {
			return e
		}

		return err
	}

	err = h.supplierService.Reject(c.Request().Context(), id)
	if err == nil {
		return c.JSON(http.StatusOK, "Deleted")
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	default:
		h.logger.Error("supplier rejection failed", zap.Int64("supplier_id", id), zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}

type complianceInput struct {
	IsReviewed bool `json:"is_reviewed"`
	IsApproved bool `json:"is_approved"`
	IsAudited  bool `json:"is_audited"`
}

// /admin/compliance/:id
func (h *adminRoutesHandler) UpdateCompliance(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier id must be an integer"}); e != nil {
			return e
		}

		return err
	}

	var input complianceInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	supplier, err := h.supplierService.SetCompliance(c.Request().Context(), id, input.IsReviewed, input.IsApproved, input.IsAudited)
	if err == nil {
		return c.JSON(http.StatusOK, supplier)
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	default:
		h.logger.Error("compliance update failed", zap.Int64("supplier_id", id), zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}
