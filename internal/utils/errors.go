package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound  = errors.New("PRODUCT_NOT_FOUND")
	ErrSellerNotFound   = errors.New("SELLER_NOT_FOUND")
	ErrInvalidPrice     = errors.New("INVALID_PRICE")
	ErrInvalidStock     = errors.New("INVALID_STOCK")
	ErrInvalidCondition = errors.New("INVALID_CONDITION")
	ErrInvalidViewMode  = errors.New("INVALID_VIEW_MODE")
	ErrInvalidToken     = errors.New("INVALID_TOKEN")
)
