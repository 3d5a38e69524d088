package pgdb

import (
	"procurement-portal/pkg/postgres"
)

type DiagnosticsRepo struct {
	*postgres.Postgres
}

func NewDiagnosticsRepo(pgdb *postgres.Postgres) *DiagnosticsRepo {
	return &DiagnosticsRepo{pgdb}
}

// Ping reports whether the store behind the portal is reachable.
func (r *DiagnosticsRepo) Ping() error {
	return r.Database.Ping()
}
