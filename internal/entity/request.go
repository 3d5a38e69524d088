package entity

import "time"

// db model
type Request struct {
	Id          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Deadline    time.Time `json:"deadline" db:"deadline"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Units       string    `json:"units" db:"units"`
	Tags        string    `json:"tags" db:"tags"`
	Status      string    `json:"status" db:"status"`
	// OriginERP is the external system identifier; empty for manual requests.
	OriginERP string `json:"originErp" db:"origin_erp"`
}

// service + repo input model
type CreateRequestInput struct {
	Title       string    // given
	Description string    // given
	Deadline    time.Time // given
	Quantity    int       // given
	Units       string    // given
	Tags        string    // given, may be empty
	Status      string    // given for manual publication, "open" for ERP imports
	OriginERP   string    // empty for manual requests
}

// controller model
type RequestOutputModel struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Quantity    int    `json:"quantity"`
	Units       string `json:"units"`
	Tags        string `json:"tags"`
	Status      string `json:"status"`
	OriginERP   string `json:"originErp"`
}

// ERPItem is one entry of a bulk ERP push. Deadline stays a raw string
// here: parsing is lenient and belongs to the catalog service.
type ERPItem struct {
	ExternalId  string `json:"external_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Units       string `json:"units"`
	Deadline    string `json:"deadline"`
	Tags        string `json:"tags"`
}

// ImportSummary reports a batch import: how many items arrived and how
// many were actually inserted (the rest were already known).
type ImportSummary struct {
	Received int `json:"received"`
	Inserted int `json:"inserted"`
}
