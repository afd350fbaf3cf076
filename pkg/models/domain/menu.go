package domain

// MenuItem is a catalog entry. The reporting core only reads it through a
// category resolver; it never mutates the catalog.
type MenuItem struct {
	ID        string
	UserID    string
	Name      string
	BasePrice float64
	Category  string
	Available bool
}
