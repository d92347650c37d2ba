package domain

// SalaryRange is the pair of bounds a listing advertises.
// A nil bound is absent, which is not the same thing as a zero bound.
type SalaryRange struct {
	From *float64
	To   *float64
}

// Bound returns a pointer to v, for building a SalaryRange inline.
func Bound(v float64) *float64 {
	return &v
}

// PredictSalary turns a salary range into a single estimate.
// A one-sided range is assumed to miss the midpoint by 20%.
// The second return value is false when neither bound is present.
func PredictSalary(r SalaryRange) (float64, bool) {
	switch {
	case r.From != nil && r.To != nil:
		return (*r.From + *r.To) / 2, true
	case r.From != nil:
		return *r.From * 1.2, true
	case r.To != nil:
		return *r.To * 0.8, true
	default:
		return 0, false
	}
}
