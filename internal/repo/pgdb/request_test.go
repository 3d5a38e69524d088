package pgdb

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procurement-portal/internal/entity"
)

var requestColumnNames = []string{
	"id", "title", "description", "deadline", "quantity", "units", "tags", "status", "origin_erp",
}

func TestCreateRequestFromERPInsertsNewItem(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewRequestRepo(pg)
	deadline := time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO requests .+ ON CONFLICT \(origin_erp\) WHERE origin_erp <> '' DO NOTHING`).
		WithArgs("Tornillos M8", "", deadline, 500, "pzas", "", entity.RequestOpen, "REQ-001").
		WillReturnResult(sqlmock.NewResult(1, 1))

	inserted, err := repo.CreateRequestFromERP(context.Background(), &entity.CreateRequestInput{
		Title:     "Tornillos M8",
		Deadline:  deadline,
		Quantity:  500,
		Units:     "pzas",
		Status:    entity.RequestOpen,
		OriginERP: "REQ-001",
	})

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequestFromERPSkipsKnownItem(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewRequestRepo(pg)

	mock.ExpectExec(`INSERT INTO requests .+ DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.CreateRequestFromERP(context.Background(), &entity.CreateRequestInput{
		Title:     "Tornillos M8",
		Deadline:  time.Now(),
		Status:    entity.RequestOpen,
		OriginERP: "REQ-001",
	})

	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestGetOpenRequestsFiltersStatuses(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewRequestRepo(pg)
	deadline := time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM requests WHERE status IN \(\$1,\$2\) ORDER BY deadline ASC`).
		WithArgs(entity.RequestOpen, entity.RequestPublished).
		WillReturnRows(sqlmock.NewRows(requestColumnNames).
			AddRow(1, "Tornillos M8", "", deadline, 500, "pzas", "", entity.RequestOpen, "REQ-001").
			AddRow(2, "Cables", "", deadline, 100, "m", "", entity.RequestPublished, ""))

	requests, err := repo.GetOpenRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "REQ-001", requests[0].OriginERP)
	assert.Empty(t, requests[1].OriginERP)
	assert.NoError(t, mock.ExpectationsWereMet())
}
