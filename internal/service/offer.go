package service

import (
	"context"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo"
	"procurement-portal/internal/repo/repo_errors"

	"go.uber.org/zap"
)

type OfferService struct {
	offers    repo.Offer
	suppliers repo.Supplier
	mailer    Mailer
	logger    *zap.Logger
}

func NewOfferService(repos *repo.Repositories, mailer Mailer, logger *zap.Logger) *OfferService {
	return &OfferService{
		offers:    repos.Offer,
		suppliers: repos.Supplier,
		mailer:    mailer,
		logger:    logger,
	}
}

// Submit inserts a pending offer. Whether the submitting supplier may offer
// at all is an authorization question answered at the boundary, not here.
func (s *OfferService) Submit(ctx context.Context, input *entity.SubmitOfferInput) (*entity.OfferOutputModel, error) {
	offer, err := s.offers.CreateOffer(ctx, input)
	if err != nil {
		return nil, err
	}

	return mapOffer(offer), nil
}

func (s *OfferService) ListForRequest(ctx context.Context, requestId int64) ([]entity.OfferOutputModel, error) {
	offers, err := s.offers.GetRequestOffers(ctx, requestId)
	if err != nil {
		return nil, err
	}

	return mapOffers(offers), nil
}

func (s *OfferService) ListAll(ctx context.Context) ([]entity.OfferOutputModel, error) {
	offers, err := s.offers.GetAllOffers(ctx)
	if err != nil {
		return nil, err
	}

	return mapOffers(offers), nil
}

// SelectWinner closes out a request: the target offer becomes "ganadora",
// every sibling becomes "rechazada" and the request is closed, all in one
// store transaction. Only after that commit are the winner and each losing
// supplier notified, sequentially and best-effort — a refused delivery
// neither skips the remaining siblings nor reverts the decision.
func (s *OfferService) SelectWinner(ctx context.Context, offerId int64) (*entity.OfferOutputModel, error) {
	winner, siblings, err := s.offers.SelectWinner(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrWinnerAlreadySelected
		}

		return nil, err
	}

	notes := make([]notification, 0, len(siblings)+1)
	if email := s.supplierEmail(ctx, winner.SupplierId); email != "" {
		notes = append(notes, notification{to: email, subject: subjectWinner, body: bodyWinner})
	}
	for _, sibling := range siblings {
		if email := s.supplierEmail(ctx, sibling.SupplierId); email != "" {
			notes = append(notes, notification{to: email, subject: subjectRequestClosed, body: bodyRequestClosed})
		}
	}

	if failed := dispatch(ctx, s.mailer, s.logger, notes); failed > 0 {
		s.logger.Warn("winner selection committed with undelivered notifications",
			zap.Int64("offer_id", offerId),
			zap.Int("failed", failed),
			zap.Int("total", len(notes)))
	}

	return mapOffer(winner), nil
}

// supplierEmail resolves the owner's address for a notification. A supplier
// that vanished since the offer was stored simply gets no mail.
func (s *OfferService) supplierEmail(ctx context.Context, supplierId int64) string {
	supplier, err := s.suppliers.GetSupplierById(ctx, supplierId)
	if err != nil {
		s.logger.Warn("cannot resolve supplier email for notification",
			zap.Int64("supplier_id", supplierId),
			zap.Error(err))

		return ""
	}

	return supplier.Email
}
