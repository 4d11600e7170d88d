package aiusage

import "errors"

// ErrQuotaExhausted is returned when a user has no generations remaining for
// the current month.
var ErrQuotaExhausted = errors.New("generation quota exhausted")

// DefaultGenerations is the number of plan generations granted per month.
const DefaultGenerations = 100
