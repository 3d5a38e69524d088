package pgdb

import (
	"context"
	"procurement-portal/internal/entity"
	"procurement-portal/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

const requestColumns = "id, title, description, deadline, quantity, units, tags, status, origin_erp"

type RequestRepo struct {
	*postgres.Postgres
}

func NewRequestRepo(pgdb *postgres.Postgres) *RequestRepo {
	return &RequestRepo{pgdb}
}

func scanRequest(row rowScanner) (*entity.Request, error) {
	var request entity.Request
	err := row.Scan(&request.Id, &request.Title, &request.Description, &request.Deadline,
		&request.Quantity, &request.Units, &request.Tags, &request.Status, &request.OriginERP)
	if err != nil {
		return nil, err
	}

	return &request, nil
}

func (r *RequestRepo) CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (*entity.Request, error) {
	createRequestSql, args, _ := r.SqlBuilder.
		Insert("requests").
		Columns("title", "description", "deadline", "quantity", "units", "tags", "status", "origin_erp").
		Values(input.Title, input.Description, input.Deadline, input.Quantity, input.Units, input.Tags, input.Status, input.OriginERP).
		Suffix("RETURNING " + requestColumns).
		ToSql()

	request, err := scanRequest(r.Database.QueryRowContext(ctx, createRequestSql, args...))
	if err != nil {
		return nil, err
	}

	return request, nil
}

// CreateRequestFromERP relies on the partial unique index on origin_erp:
// a concurrent import of the same external id becomes a silent no-op
// instead of a duplicate row.
func (r *RequestRepo) CreateRequestFromERP(ctx context.Context, input *entity.CreateRequestInput) (bool, error) {
	createRequestSql, args, _ := r.SqlBuilder.
		Insert("requests").
		Columns("title", "description", "deadline", "quantity", "units", "tags", "status", "origin_erp").
		Values(input.Title, input.Description, input.Deadline, input.Quantity, input.Units, input.Tags, input.Status, input.OriginERP).
		Suffix("ON CONFLICT (origin_erp) WHERE origin_erp <> '' DO NOTHING").
		ToSql()

	res, err := r.Database.ExecContext(ctx, createRequestSql, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *RequestRepo) GetOpenRequests(ctx context.Context) ([]entity.Request, error) {
	getRequestsSql, args, _ := r.SqlBuilder.
		Select(requestColumns).
		From("requests").
		Where(squirrel.Eq{"status": []string{entity.RequestOpen, entity.RequestPublished}}).
		OrderBy("deadline ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getRequestsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entity.Request, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return requests, err
		}
		requests = append(requests, *request)
	}
	if err = rows.Err(); err != nil {
		return requests, err
	}

	return requests, nil
}
