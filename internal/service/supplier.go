package service

import (
	"context"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo"
	"procurement-portal/internal/repo/repo_errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Session claims are valid for a fixed window from issuance.
const sessionTTL = 4 * time.Hour

type SupplierService struct {
	suppliers repo.Supplier
	mailer    Mailer
	logger    *zap.Logger
	jwtSecret string
}

func NewSupplierService(repos *repo.Repositories, mailer Mailer, logger *zap.Logger, jwtSecret string) *SupplierService {
	return &SupplierService{
		suppliers: repos.Supplier,
		mailer:    mailer,
		logger:    logger,
		jwtSecret: jwtSecret,
	}
}

// Register stores a new supplier in the pending state. The welcome mail is
// best-effort: a delivery failure never fails the registration.
func (s *SupplierService) Register(ctx context.Context, input *entity.RegisterSupplierInput) (*entity.SupplierOutputModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	supplier, err := s.suppliers.CreateSupplier(ctx, input, string(hash))
	if err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrEmailAlreadyRegistered
		}

		return nil, err
	}

	dispatch(ctx, s.mailer, s.logger, []notification{
		{to: supplier.Email, subject: subjectWelcome, body: bodyWelcome},
	})

	return mapSupplier(supplier), nil
}

// Authenticate verifies credentials and issues a session claim bound to the
// supplier email. A correct credential against a not-yet-approved account is
// reported as ErrPendingApproval, not as a credential failure.
func (s *SupplierService) Authenticate(ctx context.Context, email string, password string) (*entity.SessionClaim, error) {
	supplier, err := s.suppliers.GetSupplierByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(supplier.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !supplier.Active {
		return nil, ErrPendingApproval
	}

	now := time.Now()
	expires := now.Add(sessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   supplier.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &entity.SessionClaim{
		Token:     token,
		ExpiresAt: expires.Format(time.RFC3339),
		Supplier:  mapSupplier(supplier),
	}, nil
}

// Approve activates a supplier. Approving an already-active supplier is a
// no-op mutation but still re-sends the approval mail.
func (s *SupplierService) Approve(ctx context.Context, id int64) (*entity.SupplierOutputModel, error) {
	supplier, err := s.suppliers.SetSupplierActive(ctx, id, true)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}

		return nil, err
	}

	dispatch(ctx, s.mailer, s.logger, []notification{
		{to: supplier.Email, subject: subjectApproved, body: bodyApproved},
	})

	return mapSupplier(supplier), nil
}

// Reject deletes the supplier record outright; there is no tombstone. The
// email is captured before deletion so the rejection notice can still be sent.
func (s *SupplierService) Reject(ctx context.Context, id int64) error {
	supplier, err := s.suppliers.GetSupplierById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrSupplierNotFound
		}

		return err
	}

	if err := s.suppliers.DeleteSupplier(ctx, id); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrSupplierNotFound
		}

		return err
	}

	if supplier.Email != "" {
		dispatch(ctx, s.mailer, s.logger, []notification{
			{to: supplier.Email, subject: subjectRegistrationRejected, body: bodyRegistrationRejected},
		})
	}

	return nil
}

// SetCompliance overwrites the three compliance flags unconditionally. They
// are administrative metadata, independent of the active flag.
func (s *SupplierService) SetCompliance(ctx context.Context, id int64, reviewed, approved, audited bool) (*entity.SupplierOutputModel, error) {
	supplier, err := s.suppliers.SetSupplierCompliance(ctx, id, reviewed, approved, audited)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}

		return nil, err
	}

	return mapSupplier(supplier), nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id int64) (*entity.SupplierOutputModel, error) {
	supplier, err := s.suppliers.GetSupplierById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}

		return nil, err
	}

	return mapSupplier(supplier), nil
}

func (s *SupplierService) GetSupplierByEmail(ctx context.Context, email string) (*entity.SupplierOutputModel, error) {
	supplier, err := s.suppliers.GetSupplierByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}

		return nil, err
	}

	return mapSupplier(supplier), nil
}

func (s *SupplierService) UpdateDocuments(ctx context.Context, id int64, documents string) error {
	if err := s.suppliers.UpdateSupplierDocuments(ctx, id, documents); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrSupplierNotFound
		}

		return err
	}

	return nil
}

func (s *SupplierService) ListByActiveState(ctx context.Context, active bool) ([]entity.SupplierOutputModel, error) {
	suppliers, err := s.suppliers.GetSuppliersByActiveState(ctx, active)
	if err != nil {
		return nil, err
	}

	return mapSuppliers(suppliers), nil
}
