package pgdb

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo/repo_errors"
)

var offerColumnNames = []string{
	"id", "supplier_id", "request_id", "price", "delivery_time",
	"conditions", "attachments", "photo", "status", "created_at",
}

func offerRow(id, supplierId, requestId int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows(offerColumnNames).
		AddRow(id, supplierId, requestId, 100.0, "5 días", "", "", nil, status, time.Now())
}

func TestCreateOfferInsertsPending(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewOfferRepo(pg)

	mock.ExpectQuery(`INSERT INTO offers .+ RETURNING`).
		WithArgs(int64(7), int64(3), 1250.5, "5 días", "contado", "", nil, entity.OfferPending).
		WillReturnRows(offerRow(1, 7, 3, entity.OfferPending))

	offer, err := repo.CreateOffer(context.Background(), &entity.SubmitOfferInput{
		SupplierId:   7,
		RequestId:    3,
		Price:        1250.5,
		DeliveryTime: "5 días",
		Conditions:   "contado",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), offer.Id)
	assert.Equal(t, entity.OfferPending, offer.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectWinnerCommitsWholeDecision(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewOfferRepo(pg)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM offers WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(10)).
		WillReturnRows(offerRow(10, 7, 3, entity.OfferPending))
	mock.ExpectQuery(`SELECT count\(\*\) FROM offers`).
		WithArgs(int64(3), entity.OfferWinning, int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`UPDATE offers SET status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(entity.OfferWinning, int64(10)).
		WillReturnRows(offerRow(10, 7, 3, entity.OfferWinning))
	mock.ExpectQuery(`UPDATE offers SET status = \$1 WHERE request_id = \$2 AND id <> \$3 RETURNING`).
		WithArgs(entity.OfferRejected, int64(3), int64(10)).
		WillReturnRows(offerRow(11, 8, 3, entity.OfferRejected).
			AddRow(12, 9, 3, 90.0, "3 días", "", "", nil, entity.OfferRejected, time.Now()))
	mock.ExpectExec(`UPDATE requests SET status = \$1 WHERE id = \$2`).
		WithArgs(entity.RequestClosed, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	winner, siblings, err := repo.SelectWinner(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, entity.OfferWinning, winner.Status)
	require.Len(t, siblings, 2)
	assert.Equal(t, entity.OfferRejected, siblings[0].Status)
	assert.Equal(t, entity.OfferRejected, siblings[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectWinnerRefusesSecondWinner(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewOfferRepo(pg)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM offers WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(10)).
		WillReturnRows(offerRow(10, 7, 3, entity.OfferPending))
	mock.ExpectQuery(`SELECT count\(\*\) FROM offers`).
		WithArgs(int64(3), entity.OfferWinning, int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, _, err := repo.SelectWinner(context.Background(), 10)

	assert.ErrorIs(t, err, repo_errors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectWinnerUnknownOfferRollsBack(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewOfferRepo(pg)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM offers WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(offerColumnNames))
	mock.ExpectRollback()

	_, _, err := repo.SelectWinner(context.Background(), 42)

	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectWinnerSoleOfferNoSiblings(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewOfferRepo(pg)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM offers WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(10)).
		WillReturnRows(offerRow(10, 7, 3, entity.OfferPending))
	mock.ExpectQuery(`SELECT count\(\*\) FROM offers`).
		WithArgs(int64(3), entity.OfferWinning, int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`UPDATE offers SET status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(entity.OfferWinning, int64(10)).
		WillReturnRows(offerRow(10, 7, 3, entity.OfferWinning))
	mock.ExpectQuery(`UPDATE offers SET status = \$1 WHERE request_id = \$2 AND id <> \$3 RETURNING`).
		WithArgs(entity.OfferRejected, int64(3), int64(10)).
		WillReturnRows(sqlmock.NewRows(offerColumnNames))
	mock.ExpectExec(`UPDATE requests SET status = \$1 WHERE id = \$2`).
		WithArgs(entity.RequestClosed, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	winner, siblings, err := repo.SelectWinner(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, entity.OfferWinning, winner.Status)
	assert.Empty(t, siblings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOfferByIdNotFound(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewOfferRepo(pg)

	mock.ExpectQuery(`SELECT .+ FROM offers WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(offerColumnNames))

	_, err := repo.GetOfferById(context.Background(), 42)

	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}
