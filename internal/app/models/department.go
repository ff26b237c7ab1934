package models

// Department represents an academic department. Departments are reference
// data owned by the seed/admin process; this service reads them for
// validation and identifier prefixing.
type Department struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Code        string `json:"code" db:"code"`
	Description string `json:"description,omitempty" db:"description"`
	IsActive    bool   `json:"isActive" db:"is_active"`
}
