package entity

// EmailConfig is the single persisted outbound-mail configuration (row id=1).
// It also carries the portal appearance settings edited on the same admin page.
type EmailConfig struct {
	Id            int64  `json:"id" db:"id"`
	SMTPHost      string `json:"smtpHost" db:"smtp_host"`
	SMTPPort      int    `json:"smtpPort" db:"smtp_port"`
	SMTPUser      string `json:"smtpUser" db:"smtp_user"`
	SMTPPassword  string `json:"smtpPassword" db:"smtp_password"`
	SMTPFrom      string `json:"smtpFrom" db:"smtp_from"`
	UITheme       string `json:"uiTheme" db:"ui_theme"`
	LoginImageURL string `json:"loginImageUrl" db:"login_image_url"`
}

// service input model; the password may be empty or the mask placeholder,
// both meaning "leave the stored password unchanged".
type SaveEmailConfigInput struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	SMTPFrom      string
	UITheme       string
	LoginImageURL string
}
