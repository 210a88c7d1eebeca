package models

func rantPriceCents(r *CachedRant) int {
	if r.Rant == nil {
		return 0
	}
	return r.Rant.PriceCents
}

// RantLess returns a comparator for the given sort order, for use with
// sort.SliceStable. Time fields are ISO-8601 strings, which order correctly
// under plain string comparison.
func RantLess(order SortOrder) func(a, b *CachedRant) bool {
	switch order {
	case SortOldToNew:
		return func(a, b *CachedRant) bool { return a.Time < b.Time }
	case SortHighToLow:
		return func(a, b *CachedRant) bool { return rantPriceCents(a) > rantPriceCents(b) }
	case SortLowToHigh:
		return func(a, b *CachedRant) bool { return rantPriceCents(a) < rantPriceCents(b) }
	default:
		return func(a, b *CachedRant) bool { return a.Time > b.Time }
	}
}
