package service

import (
	"context"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo"

	"go.uber.org/zap"
)

type Diagnostics interface {
	Ping() error
}

// Mailer is the notification gateway. Every call site treats a delivery
// failure as non-fatal: it is logged, never propagated as a failure of the
// state change that triggered it.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
	SendWith(ctx context.Context, config *entity.EmailConfig, to string, subject string, body string) error
}

type Supplier interface {
	Register(ctx context.Context, input *entity.RegisterSupplierInput) (*entity.SupplierOutputModel, error)
	Authenticate(ctx context.Context, email string, password string) (*entity.SessionClaim, error)
	Approve(ctx context.Context, id int64) (*entity.SupplierOutputModel, error)
	Reject(ctx context.Context, id int64) error
	SetCompliance(ctx context.Context, id int64, reviewed, approved, audited bool) (*entity.SupplierOutputModel, error)
	GetSupplier(ctx context.Context, id int64) (*entity.SupplierOutputModel, error)
	GetSupplierByEmail(ctx context.Context, email string) (*entity.SupplierOutputModel, error)
	UpdateDocuments(ctx context.Context, id int64, documents string) error
	ListByActiveState(ctx context.Context, active bool) ([]entity.SupplierOutputModel, error)
}

type Catalog interface {
	PublishManual(ctx context.Context, input *entity.CreateRequestInput) (*entity.RequestOutputModel, error)
	ImportBatch(ctx context.Context, items []entity.ERPItem) (*entity.ImportSummary, error)
	ListOpen(ctx context.Context) ([]entity.RequestOutputModel, error)
}

type Offer interface {
	Submit(ctx context.Context, input *entity.SubmitOfferInput) (*entity.OfferOutputModel, error)
	ListForRequest(ctx context.Context, requestId int64) ([]entity.OfferOutputModel, error)
	ListAll(ctx context.Context) ([]entity.OfferOutputModel, error)
	SelectWinner(ctx context.Context, offerId int64) (*entity.OfferOutputModel, error)
}

type EmailSettings interface {
	Get(ctx context.Context) (*entity.EmailConfig, error)
	Save(ctx context.Context, input *entity.SaveEmailConfigInput) (*entity.EmailConfig, error)
	TestSend(ctx context.Context, input *entity.SaveEmailConfigInput, to string) error
}

type Services struct {
	Diagnostics   Diagnostics
	Supplier      Supplier
	Catalog       Catalog
	Offer         Offer
	EmailSettings EmailSettings
}

type Deps struct {
	Repos     *repo.Repositories
	Mailer    Mailer
	Logger    *zap.Logger
	JWTSecret string
}

func NewServices(deps *Deps) *Services {
	return &Services{
		Diagnostics:   NewDiagnosticsService(deps.Repos),
		Supplier:      NewSupplierService(deps.Repos, deps.Mailer, deps.Logger, deps.JWTSecret),
		Catalog:       NewCatalogService(deps.Repos, deps.Logger),
		Offer:         NewOfferService(deps.Repos, deps.Mailer, deps.Logger),
		EmailSettings: NewEmailSettingsService(deps.Repos, deps.Mailer),
	}
}
