package domain

import "errors"

// Catalog errors
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrInvalidProperty     = errors.New("invalid property record")
	ErrUnknownCity         = errors.New("unknown city")
	ErrUnknownPropertyType = errors.New("unknown property type")
)

// Search errors
var (
	ErrUnknownNeighborhood    = errors.New("unknown neighborhood")
	ErrNeighborhoodOutOfScope = errors.New("neighborhood does not belong to the selected city")
	ErrUnknownSortKey         = errors.New("unknown sort key")
	ErrInvalidPriceRange      = errors.New("invalid price range")
	ErrUnknownReportReason    = errors.New("unknown report reason")
)

// Account errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrTokenInvalid       = errors.New("invalid jwt token")
)
