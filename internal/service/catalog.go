package service

import (
	"context"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo"
	"time"

	"go.uber.org/zap"
)

type CatalogService struct {
	requests repo.Request
	logger   *zap.Logger
}

func NewCatalogService(repos *repo.Repositories, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		requests: repos.Request,
		logger:   logger,
	}
}

func (s *CatalogService) PublishManual(ctx context.Context, input *entity.CreateRequestInput) (*entity.RequestOutputModel, error) {
	if input.Status == "" {
		input.Status = entity.RequestPublished
	}

	request, err := s.requests.CreateRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	return mapRequest(request), nil
}

// ImportBatch reconciles an ERP push against existing requests: items whose
// external id is already known are skipped, never merged. A malformed
// deadline does not reject the item — the current time is substituted and the
// batch continues.
func (s *CatalogService) ImportBatch(ctx context.Context, items []entity.ERPItem) (*entity.ImportSummary, error) {
	summary := &entity.ImportSummary{Received: len(items)}

	for _, item := range items {
		input := &entity.CreateRequestInput{
			Title:       item.Title,
			Description: item.Description,
			Deadline:    s.parseDeadline(item.ExternalId, item.Deadline),
			Quantity:    item.Quantity,
			Units:       item.Units,
			Tags:        item.Tags,
			Status:      entity.RequestOpen,
			OriginERP:   item.ExternalId,
		}

		inserted, err := s.requests.CreateRequestFromERP(ctx, input)
		if err != nil {
			// One bad item must not sink the rest of the batch. The store
			// failure is still visible: logged here, and reflected in the
			// received/inserted gap of the summary.
			s.logger.Error("erp item import failed",
				zap.String("external_id", item.ExternalId),
				zap.Error(err))
			continue
		}
		if inserted {
			summary.Inserted++
		}
	}

	return summary, nil
}

func (s *CatalogService) ListOpen(ctx context.Context) ([]entity.RequestOutputModel, error) {
	requests, err := s.requests.GetOpenRequests(ctx)
	if err != nil {
		return nil, err
	}

	return mapRequests(requests), nil
}

// parseDeadline accepts the ISO-8601 shapes ERP systems actually send. An
// unparseable or absent deadline falls back to now rather than failing the
// item.
func (s *CatalogService) parseDeadline(externalId string, raw string) time.Time {
	if raw == "" {
		return time.Now()
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if deadline, err := time.Parse(layout, raw); err == nil {
			return deadline
		}
	}

	s.logger.Warn("unparseable erp deadline, substituting current time",
		zap.String("external_id", externalId),
		zap.String("deadline", raw))

	return time.Now()
}
