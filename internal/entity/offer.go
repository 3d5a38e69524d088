package entity

// Offer statuses. Stored as free text, these are the values the portal writes.
const (
	OfferPending  = "pending"
	OfferWinning  = "ganadora"
	OfferRejected = "rechazada"
)

// Request statuses. "open" and "published" are both supplier-visible.
const (
	RequestOpen      = "open"
	RequestPublished = "published"
	RequestClosed    = "closed"
)

// db model
type Offer struct {
	Id           int64   `json:"id" db:"id"`
	SupplierId   int64   `json:"supplierId" db:"supplier_id"`
	RequestId    int64   `json:"requestId" db:"request_id"`
	Price        float64 `json:"price" db:"price"`
	DeliveryTime string  `json:"deliveryTime" db:"delivery_time"`
	Conditions   string  `json:"conditions" db:"conditions"`
	Attachments  string  `json:"attachments" db:"attachments"`
	Photo        *string `json:"photo" db:"photo"`
	Status       string  `json:"status" db:"status"`
	CreatedAt    string  `json:"createdAt" db:"created_at"`
}

// service + repo input model
type SubmitOfferInput struct {
	SupplierId   int64   // given
	RequestId    int64   // given
	Price        float64 // given
	DeliveryTime string  // given
	Conditions   string  // given
	Attachments  string  // given, may be empty
	Photo        *string // given, optional
	// Status is always "pending" on submission
	// Id and CreatedAt set automatically
}

// controller model
type OfferOutputModel struct {
	Id           int64   `json:"id"`
	SupplierId   int64   `json:"supplierId"`
	RequestId    int64   `json:"requestId"`
	Price        float64 `json:"price"`
	DeliveryTime string  `json:"deliveryTime"`
	Conditions   string  `json:"conditions"`
	Attachments  string  `json:"attachments"`
	Photo        *string `json:"photo"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}
