package model

import "time"

// Category represents a valid transaction category.
type Category struct {
	CreatedAt time.Time
	Name      string
	ID        int64
}

// Reserved reports whether the category is managed by the application and
// cannot be deleted.
func (c *Category) Reserved() bool {
	return c.Name == UncategorizedName || c.Name == SavingsTransferCategory
}
