package controller

import (
	"net/http"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/service"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type offerRoutesHandler struct {
	offerService service.Offer
	validate     *validator.Validate
	logger       *zap.Logger
}

func newOfferRoutesHandler(outer *echo.Group, services *service.Services, g *guard, v *validator.Validate, logger *zap.Logger) *offerRoutesHandler {
	h := &offerRoutesHandler{offerService: services.Offer, validate: v, logger: logger}
	outer.POST("/ofertas", h.Submit, g.requireActiveSupplier)
	outer.GET("/ofertas/:requestId", h.ListForRequest, g.requireSession)
	outer.PUT("/ganadora/:id", h.SelectWinner, g.requireAdmin)
	outer.GET("/admin/ofertas", h.ListAll, g.requireAdmin)

	return h
}

type submitOfferInput struct {
	RequestId    int64   `json:"requestId" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	DeliveryTime string  `json:"deliveryTime" validate:"required,max=200"`
	Conditions   string  `json:"conditions"`
	Attachments  string  `json:"attachments"`
	Photo        *string `json:"photo"`
}

// /ofertas
func (h *offerRoutesHandler) Submit(c echo.Context) error {
	var input submitOfferInput
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

	// The owning supplier comes from the session, never from the payload.
	session := sessionSupplier(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid or expired session"})
	}

	model := &entity.SubmitOfferInput{
		SupplierId: session.Id, RequestId: input.RequestId, Price: input.Price,
		DeliveryTime: input.DeliveryTime, Conditions: input.Conditions,
		Attachments: input.Attachments, Photo: input.Photo,
	}

	offer, err := h.offerService.Submit(c.Request().Context(), model)
	if err == nil {
		return c.JSON(http.StatusOK, offer)
	}

	h.logger.Error("offer submission failed", zap.Int64("supplier_id", session.Id), zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}

// /ofertas/:requestId
func (h *offerRoutesHandler) ListForRequest(c echo.Context) error {
	requestId, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Request id must be an integer"}); e != nil {
			return e
		}

		return err
	}

	offers, err := h.offerService.ListForRequest(c.Request().Context(), requestId)
	if err == nil {
		return c.JSON(http.StatusOK, offers)
	}

	h.logger.Error("offer listing failed", zap.Int64("request_id", requestId), zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}

// /admin/ofertas
func (h *offerRoutesHandler) ListAll(c echo.Context) error {
	offers, err := h.offerService.ListAll(c.Request().Context())
	if err == nil {
		return c.JSON(http.StatusOK, offers)
	}

	h.logger.Error("offer listing failed", zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}

// /ganadora/:id
func (h *offerRoutesHandler) SelectWinner(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Offer id must be an integer"}); e != nil {
			return e
		}

		return err
	}

	offer, err := h.offerService.SelectWinner(c.Request().Context(), id)
	if err == nil {
		return c.JSON(http.StatusOK, offer)
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no offer with given id"}); e != nil {
			return e
		}
	case service.ErrWinnerAlreadySelected:
		if e := c.JSON(http.StatusConflict, errorResponse{"Another offer on this request already won"}); e != nil {
			return e
		}
	default:
		h.logger.Error("winner selection failed", zap.Int64("offer_id", id), zap.Error(err))
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
			return e
		}
	}

	return err
}
