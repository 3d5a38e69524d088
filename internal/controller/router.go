package controller

import (
	"procurement-portal/internal/config"
	"procurement-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, cfg *config.Config, logger *zap.Logger) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	guard := newGuard(services.Supplier, cfg)

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate, logger)
	newSupplierRoutesHandler(api, services, guard, validate, logger)
	newRequestRoutesHandler(api, services, guard, validate, logger)
	newOfferRoutesHandler(api, services, guard, validate, logger)
	newAdminRoutesHandler(api, services, guard, logger)
	newEmailConfigRoutesHandler(api, services, guard, validate, logger)
	newERPRoutesHandler(api, services, guard, logger)
	newFileRoutesHandler(api, guard, cfg, logger)

	handler.Static("/uploads", cfg.UploadsDir)
}
