package models

// FacultyMember defines the faculty profile model based on the 'faculty_members' table.
// Exactly one row exists per user with the faculty role.
type FacultyMember struct {
	ID             int64        `json:"id" db:"id"`
	UserID         int64        `json:"userId" db:"user_id"`
	EmployeeNumber string       `json:"employeeNumber" db:"employee_number"` // e.g. CS00001
	DepartmentID   int64        `json:"departmentId" db:"department_id"`
	Title          FacultyTitle `json:"title" db:"title"`
	OfficeLocation *string      `json:"officeLocation,omitempty" db:"office_location"`
	OfficeHours    *string      `json:"officeHours,omitempty" db:"office_hours"`

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}
