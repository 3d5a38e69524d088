package service

import (
	"context"
	"errors"
	"procurement-portal/internal/entity"
	"procurement-portal/internal/repo"
	"procurement-portal/internal/repo/repo_errors"
)

// PasswordMask stands in for the stored SMTP password in every response.
// A save request carrying the mask (or nothing) means "leave it unchanged".
const PasswordMask = "********"

type EmailSettingsService struct {
	configs repo.EmailConfig
	mailer  Mailer
}

func NewEmailSettingsService(repos *repo.Repositories, mailer Mailer) *EmailSettingsService {
	return &EmailSettingsService{
		configs: repos.EmailConfig,
		mailer:  mailer,
	}
}

func (s *EmailSettingsService) Get(ctx context.Context) (*entity.EmailConfig, error) {
	config, err := s.configs.GetEmailConfig(ctx)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrEmailConfigNotFound
		}

		return nil, err
	}

	return masked(config), nil
}

func (s *EmailSettingsService) Save(ctx context.Context, input *entity.SaveEmailConfigInput) (*entity.EmailConfig, error) {
	keepPassword := input.SMTPPassword == "" || input.SMTPPassword == PasswordMask

	config, err := s.configs.SaveEmailConfig(ctx, input, keepPassword)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrEmailConfigNotFound
		}

		return nil, err
	}

	return masked(config), nil
}

// TestSend relays a message through a not-yet-persisted configuration so the
// administrator can validate settings before saving. When the form still
// carries the mask, the stored password is substituted so a test against the
// saved credentials works.
func (s *EmailSettingsService) TestSend(ctx context.Context, input *entity.SaveEmailConfigInput, to string) error {
	password := input.SMTPPassword
	if password == "" || password == PasswordMask {
		if stored, err := s.configs.GetEmailConfig(ctx); err == nil {
			password = stored.SMTPPassword
		}
	}

	config := &entity.EmailConfig{
		SMTPHost:     input.SMTPHost,
		SMTPPort:     input.SMTPPort,
		SMTPUser:     input.SMTPUser,
		SMTPPassword: password,
		SMTPFrom:     input.SMTPFrom,
	}
	if to == "" {
		to = input.SMTPFrom
	}

	return s.mailer.SendWith(ctx, config, to, subjectTest, bodyTest)
}

func masked(config *entity.EmailConfig) *entity.EmailConfig {
	if config.SMTPPassword != "" {
		config.SMTPPassword = PasswordMask
	}

	return config
}
