package controller

import (
	"errors"
	"net/http"
	"procurement-portal/internal/config"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/service"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo"
)

const supplierContextKey = "supplier"

type guard struct {
	suppliers service.Supplier
	cfg       *config.Config
}

func newGuard(suppliers service.Supplier, cfg *config.Config) *guard {
	return &guard{suppliers: suppliers, cfg: cfg}
}

// requireSession accepts any supplier with a valid, unexpired claim,
// approved or not. Profile routes use this: a pending supplier may manage
// its own record while waiting for approval.
func (g *guard) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		supplier, err := g.resolveSession(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid or expired session"})
		}

		c.Set(supplierContextKey, supplier)

		return next(c)
	}
}

// requireActiveSupplier additionally rejects suppliers that have not been
// approved yet: they may authenticate, but may not view requests or submit
// offers.
func (g *guard) requireActiveSupplier(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		supplier, err := g.resolveSession(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid or expired session"})
		}

		if !supplier.Active {
			return c.JSON(http.StatusForbidden, errorResponse{"Account pending administrator approval"})
		}

		c.Set(supplierContextKey, supplier)

		return next(c)
	}
}

// requireAdmin guards the administrative surface with the static token from
// configuration. An empty configured token disables the check; that is the
// single-operator desktop deployment.
func (g *guard) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if g.cfg.AdminToken != "" && c.Request().Header.Get("X-Admin-Token") != g.cfg.AdminToken {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid admin token"})
		}

		return next(c)
	}
}

// requireERPKey performs the shared-secret check for bulk imports. The
// catalog itself never sees the key.
func (g *guard) requireERPKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get("X-API-KEY")
		if key == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Missing X-API-KEY"})
		}
		if key != g.cfg.ERPAPIKey {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid API key"})
		}

		return next(c)
	}
}

func (g *guard) resolveSession(c echo.Context) (*entity.SupplierOutputModel, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}

			return []byte(g.cfg.JWTSecret), nil
		})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return g.suppliers.GetSupplierByEmail(c.Request().Context(), claims.Subject)
}

func sessionSupplier(c echo.Context) *entity.SupplierOutputModel {
	supplier, _ := c.Get(supplierContextKey).(*entity.SupplierOutputModel)

	return supplier
}
