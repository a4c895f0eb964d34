package model

// BatchType is a kind of instance, e.g. "Loose" or "Coil".
type BatchType struct {
	BaseModel
	Name          string  `db:"name" json:"name"`
	CategoryID    *string `db:"category_id" json:"category_id,omitempty"` // nil applies to every category
	IsActive      bool    `db:"is_active" json:"is_active"`
	IsDefault     bool    `db:"is_default" json:"is_default"`
	IsConvertible bool    `db:"is_convertible" json:"is_convertible"`
	ConvertsToID  *string `db:"converts_to_id" json:"converts_to_id,omitempty"`
	SortOrder     int     `db:"sort_order" json:"sort_order"`
}
