package entity

// db model
type Supplier struct {
	Id            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Contact       string `json:"contact" db:"contact"`
	Email         string `json:"email" db:"email"`
	Phone         string `json:"phone" db:"phone"`
	PasswordHash  string `json:"-" db:"password_hash"`
	CreatedAt     string `json:"createdAt" db:"created_at"`
	Documents     string `json:"documents" db:"documents"`
	EarningsCount int    `json:"earningsCount" db:"earnings_count"`
	Active        bool   `json:"active" db:"active"`
	IsReviewed    bool   `json:"isReviewed" db:"is_reviewed"`
	IsApproved    bool   `json:"isApproved" db:"is_approved"`
	IsAudited     bool   `json:"isAudited" db:"is_audited"`
}

// service + repo input model
type RegisterSupplierInput struct {
	Name      string // given
	Contact   string // given
	Email     string // given
	Phone     string // given
	Password  string // given, plaintext; hashed before it reaches the repo
	Documents string // given, may be empty
	// Active is always false on registration
	// Compliance flags are always false on registration
	// Id and CreatedAt set automatically
}

// controller model, never carries the credential hash
type SupplierOutputModel struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CreatedAt     string `json:"createdAt"`
	Documents     string `json:"documents"`
	EarningsCount int    `json:"earningsCount"`
	Active        bool   `json:"active"`
	IsReviewed    bool   `json:"isReviewed"`
	IsApproved    bool   `json:"isApproved"`
	IsAudited     bool   `json:"isAudited"`
}

// SessionClaim is the result of a successful authentication: a signed
// bearer token bound to the supplier email, valid for a fixed window.
type SessionClaim struct {
	Token     string               `json:"token"`
	ExpiresAt string               `json:"expiresAt"`
	Supplier  *SupplierOutputModel `json:"user"`
}
