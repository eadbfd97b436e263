package banking

import "errors"

var (
	// ErrRecordNotFound indicates the banking record doesn't exist.
	ErrRecordNotFound = errors.New("banking record not found")
	// ErrInvalidAmount indicates a non-positive bank/apply amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientRemaining indicates a bank amount exceeding the
	// remaining balance.
	ErrInsufficientRemaining = errors.New("cannot bank more than remaining CB")
	// ErrInsufficientBanked indicates an apply amount exceeding the banked
	// balance.
	ErrInsufficientBanked = errors.New("cannot apply more than banked CB")
	// ErrNoUpdates indicates a partial update carried no valid fields.
	ErrNoUpdates = errors.New("no valid fields to update")
	// ErrConflict indicates the record kept changing under a bank/apply
	// operation and the retry budget ran out.
	ErrConflict = errors.New("banking record modified concurrently")
)
