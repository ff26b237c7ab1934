package models

// Student defines the student profile model based on the 'students' table.
// Exactly one row exists per user with the student role.
type Student struct {
	ID             int64   `json:"id" db:"id"`
	UserID         int64   `json:"userId" db:"user_id"`
	StudentNumber  string  `json:"studentNumber" db:"student_number"` // e.g. CS240001
	DepartmentID   int64   `json:"departmentId" db:"department_id"`
	EnrollmentYear int     `json:"enrollmentYear" db:"enrollment_year"`
	GPA            float64 `json:"gpa" db:"gpa"`
	IsScholarship  bool    `json:"isScholarship" db:"is_scholarship"`
	WalletBalance  float64 `json:"walletBalance" db:"wallet_balance"`

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}
