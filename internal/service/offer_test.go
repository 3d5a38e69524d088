package service

import (
	"context"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo"
	"procurement-portal/internal/repo/repo_errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOfferService(offers *fakeOfferRepo, suppliers *fakeSupplierRepo, mailer *fakeMailer) *OfferService {
	return NewOfferService(&repo.Repositories{Offer: offers, Supplier: suppliers}, mailer, zap.NewNop())
}

func TestSubmitStartsPending(t *testing.T) {
	offers := newFakeOfferRepo()
	s := newOfferService(offers, newFakeSupplierRepo(), newFakeMailer())

	out, err := s.Submit(context.Background(), &entity.SubmitOfferInput{
		SupplierId: 7,
		RequestId:  3,
		Price:      1250.50,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OfferPending, out.Status)
	assert.Equal(t, int64(7), out.SupplierId)
	assert.InDelta(t, 1250.50, out.Price, 0.001)
}

func TestSelectWinnerNotifiesWinnerAndSiblings(t *testing.T) {
	suppliers := newFakeSupplierRepo()
	winner := suppliers.add(&entity.Supplier{Email: "ganador@example.com"})
	loserA := suppliers.add(&entity.Supplier{Email: "a@example.com"})
	loserB := suppliers.add(&entity.Supplier{Email: "b@example.com"})

	offers := newFakeOfferRepo()
	offers.winner = &entity.Offer{Id: 10, SupplierId: winner.Id, RequestId: 3, Status: entity.OfferWinning}
	offers.siblings = []entity.Offer{
		{Id: 11, SupplierId: loserA.Id, RequestId: 3, Status: entity.OfferRejected},
		{Id: 12, SupplierId: loserB.Id, RequestId: 3, Status: entity.OfferRejected},
	}

	mailer := newFakeMailer()
	s := newOfferService(offers, suppliers, mailer)

	out, err := s.SelectWinner(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, entity.OfferWinning, out.Status)
	assert.Equal(t, int64(10), offers.selectedId)

	require.Len(t, mailer.sent, 3)
	assert.Equal(t, "ganador@example.com", mailer.sent[0].to)
	assert.Equal(t, subjectWinner, mailer.sent[0].subject)
	assert.Equal(t, subjectRequestClosed, mailer.sent[1].subject)
	assert.Equal(t, subjectRequestClosed, mailer.sent[2].subject)
}

func TestSelectWinnerMailFailureDoesNotAbort(t *testing.T) {
	suppliers := newFakeSupplierRepo()
	winner := suppliers.add(&entity.Supplier{Email: "ganador@example.com"})
	loser := suppliers.add(&entity.Supplier{Email: "a@example.com"})

	offers := newFakeOfferRepo()
	offers.winner = &entity.Offer{Id: 10, SupplierId: winner.Id, RequestId: 3, Status: entity.OfferWinning}
	offers.siblings = []entity.Offer{
		{Id: 11, SupplierId: loser.Id, RequestId: 3, Status: entity.OfferRejected},
	}

	mailer := newFakeMailer()
	mailer.failFor["ganador@example.com"] = errors.New("smtp refused")
	s := newOfferService(offers, suppliers, mailer)

	out, err := s.SelectWinner(context.Background(), 10)

	// The decision stands and the sibling still hears about it.
	require.NoError(t, err)
	assert.Equal(t, entity.OfferWinning, out.Status)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "a@example.com", mailer.sent[0].to)
}

func TestSelectWinnerVanishedSupplierSkipped(t *testing.T) {
	suppliers := newFakeSupplierRepo()
	loser := suppliers.add(&entity.Supplier{Email: "a@example.com"})

	offers := newFakeOfferRepo()
	offers.winner = &entity.Offer{Id: 10, SupplierId: 999, RequestId: 3, Status: entity.OfferWinning}
	offers.siblings = []entity.Offer{
		{Id: 11, SupplierId: loser.Id, RequestId: 3, Status: entity.OfferRejected},
	}

	mailer := newFakeMailer()
	s := newOfferService(offers, suppliers, mailer)

	_, err := s.SelectWinner(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "a@example.com", mailer.sent[0].to)
}

func TestSelectWinnerUnknownOffer(t *testing.T) {
	offers := newFakeOfferRepo()
	offers.selectErr = repo_errors.ErrNotFound
	s := newOfferService(offers, newFakeSupplierRepo(), newFakeMailer())

	_, err := s.SelectWinner(context.Background(), 42)

	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestSelectWinnerAlreadyDecided(t *testing.T) {
	offers := newFakeOfferRepo()
	offers.selectErr = repo_errors.ErrConflict
	mailer := newFakeMailer()
	s := newOfferService(offers, newFakeSupplierRepo(), mailer)

	_, err := s.SelectWinner(context.Background(), 42)

	assert.ErrorIs(t, err, ErrWinnerAlreadySelected)
	assert.Empty(t, mailer.sent)
}
