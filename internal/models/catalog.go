package models

// IndustryCategory отдаётся вместе с вложенными подкатегориями.
type IndustryCategory struct {
	ID            int64         `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	Description   string        `db:"description" json:"description"`
	Subcategories []SubCategory `db:"-" json:"subcategories"`
}

type SubCategory struct {
	ID           int64  `db:"id" json:"id"`
	IndustryID   int64  `db:"industry_id" json:"industry"`
	IndustryName string `db:"industry_name" json:"industry_name"`
	Name         string `db:"name" json:"name"`
}
