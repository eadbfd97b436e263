package banking

// Bank moves amount from the remaining balance into the banked balance.
// The sum bankedCb + remainingCb is conserved; appliedCb is untouched.
// The input record is not modified.
func Bank(rec Record, amount float64) (Record, error) {
	if amount <= 0 {
		return rec, ErrInvalidAmount
	}
	if amount > rec.RemainingCb {
		return rec, ErrInsufficientRemaining
	}

	rec.BankedCb += amount
	rec.RemainingCb -= amount
	return rec, nil
}

// Apply converts amount of banked balance into applied balance, releasing
// the same amount back into remaining. As with Bank, bankedCb + remainingCb
// is conserved; appliedCb grows by amount and never decreases.
func Apply(rec Record, amount float64) (Record, error) {
	if amount <= 0 {
		return rec, ErrInvalidAmount
	}
	if amount > rec.BankedCb {
		return rec, ErrInsufficientBanked
	}

	rec.BankedCb -= amount
	rec.AppliedCb += amount
	rec.RemainingCb += amount
	return rec, nil
}
