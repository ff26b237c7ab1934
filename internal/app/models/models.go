package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleFaculty RoleType = "faculty"
	RoleAdmin   RoleType = "admin"
)

// IsRegistrable reports whether the role can be created through registration.
// Admin accounts are provisioned by the seed process only.
func (r RoleType) IsRegistrable() bool {
	return r == RoleStudent || r == RoleFaculty
}

// FacultyTitle is the academic rank of a faculty member
type FacultyTitle string

const (
	TitleProfessor          FacultyTitle = "professor"
	TitleAssociateProfessor FacultyTitle = "associate_professor"
	TitleAssistantProfessor FacultyTitle = "assistant_professor"
	TitleLecturer           FacultyTitle = "lecturer"
	TitleResearchAssistant  FacultyTitle = "research_assistant"
)

// ValidFacultyTitle reports whether t is one of the known academic ranks.
func ValidFacultyTitle(t FacultyTitle) bool {
	switch t {
	case TitleProfessor, TitleAssociateProfessor, TitleAssistantProfessor, TitleLecturer, TitleResearchAssistant:
		return true
	}
	return false
}
