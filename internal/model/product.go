package model

// Product is the read-only view of a catalog product the ledger needs.
type Product struct {
	ID         string  `db:"id" json:"id"`
	CategoryID *string `db:"category_id" json:"category_id"` // Nullable
	SKU        string  `db:"sku" json:"sku"`
	Name       string  `db:"name" json:"name"`
	IsActive   bool    `db:"is_active" json:"is_active"`
}

type Branch struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
