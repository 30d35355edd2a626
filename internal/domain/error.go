package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrAlreadyExists   = errors.New("entity already exists")
	ErrInvalidArgument = errors.New("invalid argument")

	// Catalog errors
	ErrInvalidTierID = errors.New("membership tier not found")

	// Payment plan validation errors, in the order the validator checks them
	ErrMissingClient            = errors.New("no client selected")
	ErrMissingOrInvalidTier     = errors.New("no valid membership tier selected")
	ErrMissingSecondClient      = errors.New("duo promo requires a second client")
	ErrDuplicateClientSelection = errors.New("duo promo requires two distinct clients")
	ErrPromoInstallment         = errors.New("duo promo does not allow installment payment")
	ErrInvalidComputedAmount    = errors.New("computed amount must be positive")

	// Point-of-sale errors
	ErrInsufficientStock = errors.New("insufficient product stock")
	ErrEmptySale         = errors.New("sale must contain at least one item")

	// Infrastructure errors
	ErrOperationFailed    = errors.New("database operation failed")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
	ErrInvalidExecContext = errors.New("invalid executor context")
)
