package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo/repo_errors"
	"procurement-portal/pkg/postgres"
	"time"

	"github.com/lib/pq"
)

const supplierColumns = "id, name, contact, email, phone, password_hash, created_at, documents, earnings_count, active, is_reviewed, is_approved, is_audited"

type SupplierRepo struct {
	*postgres.Postgres
}

func NewSupplierRepo(pgdb *postgres.Postgres) *SupplierRepo {
	return &SupplierRepo{pgdb}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func scanSupplier(row rowScanner) (*entity.Supplier, error) {
	var supplier entity.Supplier
	var createdAt time.Time
	err := row.Scan(&supplier.Id, &supplier.Name, &supplier.Contact, &supplier.Email,
		&supplier.Phone, &supplier.PasswordHash, &createdAt, &supplier.Documents,
		&supplier.EarningsCount, &supplier.Active, &supplier.IsReviewed,
		&supplier.IsApproved, &supplier.IsAudited)
	if err != nil {
		return nil, err
	}
	supplier.CreatedAt = createdAt.Format(time.RFC3339)

	return &supplier, nil
}

// rowScanner matches both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SupplierRepo) CreateSupplier(ctx context.Context, input *entity.RegisterSupplierInput, passwordHash string) (*entity.Supplier, error) {
	createSupplierSql, args, _ := r.SqlBuilder.
		Insert("suppliers").
		Columns("name", "contact", "email", "phone", "password_hash", "documents", "active", "is_reviewed", "is_approved", "is_audited").
		Values(input.Name, input.Contact, input.Email, input.Phone, passwordHash, input.Documents, false, false, false, false).
		Suffix("RETURNING " + supplierColumns).
		ToSql()

	supplier, err := scanSupplier(r.Database.QueryRowContext(ctx, createSupplierSql, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repo_errors.ErrConflict
		}

		return nil, err
	}

	return supplier, nil
}

func (r *SupplierRepo) GetSupplierById(ctx context.Context, id int64) (*entity.Supplier, error) {
	getSupplierSql, args, _ := r.SqlBuilder.
		Select(supplierColumns).
		From("suppliers").
		Where("id = ?", id).
		ToSql()

	supplier, err := scanSupplier(r.Database.QueryRowContext(ctx, getSupplierSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return supplier, nil
}

func (r *SupplierRepo) GetSupplierByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	getSupplierSql, args, _ := r.SqlBuilder.
		Select(supplierColumns).
		From("suppliers").
		Where("email = ?", email).
		ToSql()

	supplier, err := scanSupplier(r.Database.QueryRowContext(ctx, getSupplierSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return supplier, nil
}

func (r *SupplierRepo) SetSupplierActive(ctx context.Context, id int64, active bool) (*entity.Supplier, error) {
	updateSql, args, _ := r.SqlBuilder.
		Update("suppliers").
		Set("active", active).
		Where("id = ?", id).
		Suffix("RETURNING " + supplierColumns).
		ToSql()

	supplier, err := scanSupplier(r.Database.QueryRowContext(ctx, updateSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return supplier, nil
}

func (r *SupplierRepo) SetSupplierCompliance(ctx context.Context, id int64, reviewed, approved, audited bool) (*entity.Supplier, error) {
	updateSql, args, _ := r.SqlBuilder.
		Update("suppliers").
		Set("is_reviewed", reviewed).
		Set("is_approved", approved).
		Set("is_audited", audited).
		Where("id = ?", id).
		Suffix("RETURNING " + supplierColumns).
		ToSql()

	supplier, err := scanSupplier(r.Database.QueryRowContext(ctx, updateSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return supplier, nil
}

func (r *SupplierRepo) UpdateSupplierDocuments(ctx context.Context, id int64, documents string) error {
	updateSql, args, _ := r.SqlBuilder.
		Update("suppliers").
		Set("documents", documents).
		Where("id = ?", id).
		ToSql()

	res, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *SupplierRepo) DeleteSupplier(ctx context.Context, id int64) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("suppliers").
		Where("id = ?", id).
		ToSql()

	res, err := r.Database.ExecContext(ctx, deleteSql, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *SupplierRepo) GetSuppliersByActiveState(ctx context.Context, active bool) ([]entity.Supplier, error) {
	getSuppliersSql, args, _ := r.SqlBuilder.
		Select(supplierColumns).
		From("suppliers").
		Where("active = ?", active).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getSuppliersSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := make([]entity.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return suppliers, err
		}
		suppliers = append(suppliers, *supplier)
	}
	if err = rows.Err(); err != nil {
		return suppliers, err
	}

	return suppliers, nil
}
