package service

import "errors"

var (
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered by another supplier")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPendingApproval        = errors.New("account pending administrator approval")

	ErrRequestNotFound = errors.New("request not found")

	ErrOfferNotFound         = errors.New("offer not found")
	ErrWinnerAlreadySelected = errors.New("another offer on this request already holds winning status")

	ErrEmailConfigNotFound = errors.New("email configuration not found")
)
