package domain

// Pagination carries optional limit/offset. Zero values mean "no limit" and
// "no skip"; the backend applies its defaults. Negative values are rejected
// at the transport boundary before reaching any component.
type Pagination struct {
	Limit  int
	Offset int
}
