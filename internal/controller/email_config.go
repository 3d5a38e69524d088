package controller

import (
	"net/http"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type emailConfigRoutesHandler struct {
	emailSettings service.EmailSettings
	validate      *validator.Validate
	logger        *zap.Logger
}

func newEmailConfigRoutesHandler(outer *echo.Group, services *service.Services, g *guard, v *validator.Validate, logger *zap.Logger) *emailConfigRoutesHandler {
	h := &emailConfigRoutesHandler{emailSettings: services.EmailSettings, validate: v, logger: logger}
	outer.GET("/admin/config/email", h.Get, g.requireAdmin)
	outer.POST("/admin/config/email", h.Save, g.requireAdmin)
	outer.POST("/admin/config/test", h.TestSend, g.requireAdmin)

	return h
}

// /admin/config/email
func (h *emailConfigRoutesHandler) Get(c echo.Context) error {
	config, err := h.emailSettings.Get(c.Request().Context())
	if err == nil {
		return c.JSON(http.StatusOK, config)
	}

	switch err {
	case service.ErrEmailConfigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Config not found"}); e != nil {
			return e
		}
	default:
		h.logger.Error("email config lookup failed", zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}

type emailConfigInput struct {
	SMTPHost      string `json:"smtpHost" validate:"required,max=200"`
	SMTPPort      int    `json:"smtpPort" validate:"required,gte=1,lte=65535"`
	SMTPUser      string `json:"smtpUser" validate:"max=200"`
	SMTPPassword  string `json:"smtpPassword"`
	SMTPFrom      string `json:"smtpFrom" validate:"required,email"`
	UITheme       string `json:"uiTheme" validate:"max=50"`
	LoginImageURL string `json:"loginImageUrl" validate:"max=500"`
}

// /admin/config/email
func (h *emailConfigRoutesHandler) Save(c echo.Context) error {
	var input emailConfigInput
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

	config, err := h.emailSettings.Save(c.Request().Context(), mapEmailConfigInput(&input))
	if err == nil {
		return c.JSON(http.StatusOK, config)
	}

	switch err {
	case service.ErrEmailConfigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Config not found"}); e != nil {
			return e
		}
	default:
		h.logger.Error("email config save failed", zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/config/test
func (h *emailConfigRoutesHandler) TestSend(c echo.Context) error {
	var input emailConfigInput
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

	err := h.emailSettings.TestSend(c.Request().Context(), mapEmailConfigInput(&input), "")
	if err == nil {
		return c.JSON(http.StatusOK, "Test email sent successfully")
	}

	// The whole point of this endpoint is telling the admin why delivery
	// failed, so the transport error is returned, not masked.
	if e := c.JSON(http.StatusBadRequest, errorResponse{"Failed to send email: " + err.Error()}); e != nil {
		return e
	}

	return err
}

func mapEmailConfigInput(input *emailConfigInput) *entity.SaveEmailConfigInput {
	return &entity.SaveEmailConfigInput{
		SMTPHost:      input.SMTPHost,
		SMTPPort:      input.SMTPPort,
		SMTPUser:      input.SMTPUser,
		SMTPPassword:  input.SMTPPassword,
		SMTPFrom:      input.SMTPFrom,
		UITheme:       input.UITheme,
		LoginImageURL: input.LoginImageURL,
	}
}
