package controller

import (
	"net/http"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type authRoutesHandler struct {
	supplierService service.Supplier
	validate        *validator.Validate
	logger          *zap.Logger
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, logger *zap.Logger) *authRoutesHandler {
	h := &authRoutesHandler{supplierService: services.Supplier, validate: v, logger: logger}
	outer.POST("/register", h.Register)
	outer.POST("/login", h.Login)

	return h
}

type registerInput struct {
	Name      string `json:"name" validate:"required,max=200"`
	Contact   string `json:"contact" validate:"max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	Documents string `json:"documents"`
}

// /register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
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

	model := &entity.RegisterSupplierInput{
		Name: input.Name, Contact: input.Contact, Email: input.Email,
		Phone: input.Phone, Password: input.Password, Documents: input.Documents,
	}

	supplier, err := h.supplierService.Register(c.Request().Context(), model)
	if err == nil {
		return c.JSON(http.StatusOK, supplier)
	}

	switch err {
	case service.ErrEmailAlreadyRegistered:
		if e := c.JSON(http.StatusConflict, errorResponse{"El correo ya ha sido registrado por otro proveedor."}); e != nil {
			return e
		}
	default:
		h.logger.Error("supplier registration failed", zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
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

	claim, err := h.supplierService.Authenticate(c.Request().Context(), input.Email, input.Password)
	if err == nil {
		return c.JSON(http.StatusOK, claim)
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"User not found"}); e != nil {
			return e
		}
	case service.ErrInvalidCredentials:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid credentials"}); e != nil {
			return e
		}
	case service.ErrPendingApproval:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Cuenta pendiente de aprobación por el administrador."}); e != nil {
			return e
		}
	default:
		h.logger.Error("authentication failed", zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}
