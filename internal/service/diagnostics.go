package service

import "procurement-portal/internal/repo"

type DiagnosticsService struct {
	diagnostics repo.Diagnostics
}

func NewDiagnosticsService(repos *repo.Repositories) *DiagnosticsService {
	return &DiagnosticsService{repos.Diagnostics}
}

func (s *DiagnosticsService) Ping() error {
	return s.diagnostics.Ping()
}
