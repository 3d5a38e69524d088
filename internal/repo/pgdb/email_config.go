package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo/repo_errors"
	"procurement-portal/pkg/postgres"
)

const emailConfigColumns = "id, smtp_host, smtp_port, smtp_user, smtp_password, smtp_from, ui_theme, login_image_url"

// The outbound-mail configuration lives in exactly one row (id=1),
// seeded by the initial migration.
const emailConfigRowId = 1

type EmailConfigRepo struct {
	*postgres.Postgres
}

func NewEmailConfigRepo(pgdb *postgres.Postgres) *EmailConfigRepo {
	return &EmailConfigRepo{pgdb}
}

func scanEmailConfig(row rowScanner) (*entity.EmailConfig, error) {
	var config entity.EmailConfig
	err := row.Scan(&config.Id, &config.SMTPHost, &config.SMTPPort, &config.SMTPUser,
		&config.SMTPPassword, &config.SMTPFrom, &config.UITheme, &config.LoginImageURL)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func (r *EmailConfigRepo) GetEmailConfig(ctx context.Context) (*entity.EmailConfig, error) {
	getConfigSql, args, _ := r.SqlBuilder.
		Select(emailConfigColumns).
		From("email_config").
		Where("id = ?", emailConfigRowId).
		ToSql()

	config, err := scanEmailConfig(r.Database.QueryRowContext(ctx, getConfigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return config, nil
}

// SaveEmailConfig overwrites the singleton row; with keepPassword the stored
// smtp_password column is left untouched.
func (r *EmailConfigRepo) SaveEmailConfig(ctx context.Context, input *entity.SaveEmailConfigInput, keepPassword bool) (*entity.EmailConfig, error) {
	builder := r.SqlBuilder.
		Update("email_config").
		Set("smtp_host", input.SMTPHost).
		Set("smtp_port", input.SMTPPort).
		Set("smtp_user", input.SMTPUser).
		Set("smtp_from", input.SMTPFrom).
		Set("ui_theme", input.UITheme).
		Set("login_image_url", input.LoginImageURL)

	if !keepPassword {
		builder = builder.Set("smtp_password", input.SMTPPassword)
	}

	saveConfigSql, args, _ := builder.
		Where("id = ?", emailConfigRowId).
		Suffix("RETURNING " + emailConfigColumns).
		ToSql()

	config, err := scanEmailConfig(r.Database.QueryRowContext(ctx, saveConfigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return config, nil
}
