package repo

import (
	"context"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo/pgdb"
	"procurement-portal/pkg/postgres"
)

type Diagnostics interface {
	Ping() error
}

type Supplier interface {
	CreateSupplier(ctx context.Context, input *entity.RegisterSupplierInput, passwordHash string) (*entity.Supplier, error)
	GetSupplierById(ctx context.Context, id int64) (*entity.Supplier, error)
	GetSupplierByEmail(ctx context.Context, email string) (*entity.Supplier, error)
	SetSupplierActive(ctx context.Context, id int64, active bool) (*entity.Supplier, error)
	SetSupplierCompliance(ctx context.Context, id int64, reviewed, approved, audited bool) (*entity.Supplier, error)
	UpdateSupplierDocuments(ctx context.Context, id int64, documents string) error
	DeleteSupplier(ctx context.Context, id int64) error
	GetSuppliersByActiveState(ctx context.Context, active bool) ([]entity.Supplier, error)
}

type Request interface {
	CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (*entity.Request, error)
	// CreateRequestFromERP inserts unless a request with the same non-empty
	// origin_erp already exists; reports whether a row was actually inserted.
	CreateRequestFromERP(ctx context.Context, input *entity.CreateRequestInput) (bool, error)
	GetOpenRequests(ctx context.Context) ([]entity.Request, error)
}

type Offer interface {
	CreateOffer(ctx context.Context, input *entity.SubmitOfferInput) (*entity.Offer, error)
	GetOfferById(ctx context.Context, id int64) (*entity.Offer, error)
	GetRequestOffers(ctx context.Context, requestId int64) ([]entity.Offer, error)
	GetAllOffers(ctx context.Context) ([]entity.Offer, error)
	// SelectWinner performs the winner check-and-set in one transaction and
	// returns the winning offer together with its demoted siblings.
	SelectWinner(ctx context.Context, offerId int64) (*entity.Offer, []entity.Offer, error)
}

type EmailConfig interface {
	GetEmailConfig(ctx context.Context) (*entity.EmailConfig, error)
	SaveEmailConfig(ctx context.Context, input *entity.SaveEmailConfigInput, keepPassword bool) (*entity.EmailConfig, error)
}

type Repositories struct {
	Diagnostics
	Supplier
	Request
	Offer
	EmailConfig
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Supplier:    pgdb.NewSupplierRepo(p),
		Request:     pgdb.NewRequestRepo(p),
		Offer:       pgdb.NewOfferRepo(p),
		EmailConfig: pgdb.NewEmailConfigRepo(p),
	}
}
