package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo/repo_errors"
	"procurement-portal/pkg/postgres"
	"time"
)

const offerColumns = "id, supplier_id, request_id, price, delivery_time, conditions, attachments, photo, status, created_at"

type OfferRepo struct {
	*postgres.Postgres
}

func NewOfferRepo(pgdb *postgres.Postgres) *OfferRepo {
	return &OfferRepo{pgdb}
}

func scanOffer(row rowScanner) (*entity.Offer, error) {
	var offer entity.Offer
	var createdAt time.Time
	err := row.Scan(&offer.Id, &offer.SupplierId, &offer.RequestId, &offer.Price,
		&offer.DeliveryTime, &offer.Conditions, &offer.Attachments, &offer.Photo,
		&offer.Status, &createdAt)
	if err != nil {
		return nil, err
	}
	offer.CreatedAt = createdAt.Format(time.RFC3339)

	return &offer, nil
}

func (r *OfferRepo) CreateOffer(ctx context.Context, input *entity.SubmitOfferInput) (*entity.Offer, error) {
	createOfferSql, args, _ := r.SqlBuilder.
		Insert("offers").
		Columns("supplier_id", "request_id", "price", "delivery_time", "conditions", "attachments", "photo", "status").
		Values(input.SupplierId, input.RequestId, input.Price, input.DeliveryTime, input.Conditions, input.Attachments, input.Photo, entity.OfferPending).
		Suffix("RETURNING " + offerColumns).
		ToSql()

	offer, err := scanOffer(r.Database.QueryRowContext(ctx, createOfferSql, args...))
	if err != nil {
		return nil, err
	}

	return offer, nil
}

func (r *OfferRepo) GetOfferById(ctx context.Context, id int64) (*entity.Offer, error) {
	getOfferSql, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("offers").
		Where("id = ?", id).
		ToSql()

	offer, err := scanOffer(r.Database.QueryRowContext(ctx, getOfferSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return offer, nil
}

func (r *OfferRepo) GetRequestOffers(ctx context.Context, requestId int64) ([]entity.Offer, error) {
	getOffersSql, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("offers").
		Where("request_id = ?", requestId).
		OrderBy("created_at ASC").
		ToSql()

	return r.queryOffers(ctx, getOffersSql, args...)
}

func (r *OfferRepo) GetAllOffers(ctx context.Context) ([]entity.Offer, error) {
	getOffersSql, _, _ := r.SqlBuilder.
		Select(offerColumns).
		From("offers").
		OrderBy("created_at ASC").
		ToSql()

	return r.queryOffers(ctx, getOffersSql)
}

func (r *OfferRepo) queryOffers(ctx context.Context, query string, args ...any) ([]entity.Offer, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]entity.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return offers, err
		}
		offers = append(offers, *offer)
	}
	if err = rows.Err(); err != nil {
		return offers, err
	}

	return offers, nil
}

// SelectWinner promotes one offer to "ganadora" and demotes every sibling on
// the same request to "rechazada" inside a single transaction. The target row
// is locked first, and the promotion is refused while another offer on the
// request already holds winning status, so two concurrent selections cannot
// both succeed. The parent request is closed in the same transaction.
func (r *OfferRepo) SelectWinner(ctx context.Context, offerId int64) (*entity.Offer, []entity.Offer, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	getOfferSql, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("offers").
		Where("id = ?", offerId).
		Suffix("FOR UPDATE").
		ToSql()

	target, err := scanOffer(tx.QueryRowContext(ctx, getOfferSql, args...))
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, nil, e
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, repo_errors.ErrNotFound
		}

		return nil, nil, err
	}

	countWinnersSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("offers").
		Where("request_id = ?", target.RequestId).
		Where("status = ?", entity.OfferWinning).
		Where("id <> ?", offerId).
		ToSql()

	var winners int
	if err = tx.QueryRowContext(ctx, countWinnersSql, args...).Scan(&winners); err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, nil, e
		}

		return nil, nil, err
	}
	if winners > 0 {
		if e := tx.Rollback(); e != nil {
			return nil, nil, e
		}

		return nil, nil, repo_errors.ErrConflict
	}

	promoteSql, args, _ := r.SqlBuilder.
		Update("offers").
		Set("status", entity.OfferWinning).
		Where("id = ?", offerId).
		Suffix("RETURNING " + offerColumns).
		ToSql()

	winner, err := scanOffer(tx.QueryRowContext(ctx, promoteSql, args...))
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, nil, e
		}

		return nil, nil, err
	}

	demoteSql, args, _ := r.SqlBuilder.
		Update("offers").
		Set("status", entity.OfferRejected).
		Where("request_id = ?", target.RequestId).
		Where("id <> ?", offerId).
		Suffix("RETURNING " + offerColumns).
		ToSql()

	rows, err := tx.QueryContext(ctx, demoteSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, nil, e
		}

		return nil, nil, err
	}

	siblings := make([]entity.Offer, 0)
	for rows.Next() {
		sibling, err := scanOffer(rows)
		if err != nil {
			rows.Close()
			if e := tx.Rollback(); e != nil {
				return nil, nil, e
			}

			return nil, nil, err
		}
		siblings = append(siblings, *sibling)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		if e := tx.Rollback(); e != nil {
			return nil, nil, e
		}

		return nil, nil, err
	}
	rows.Close()

	closeRequestSql, args, _ := r.SqlBuilder.
		Update("requests").
		Set("status", entity.RequestClosed).
		Where("id = ?", target.RequestId).
		ToSql()

	if _, err = tx.ExecContext(ctx, closeRequestSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, nil, e
		}

		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, err
	}

	return winner, siblings, nil
}
