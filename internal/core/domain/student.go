package domain

// StudentStatus is the enrollment state of a student.
type StudentStatus string

const (
	StudentEnrolled  StudentStatus = "enrolled"
	StudentGraduated StudentStatus = "graduated"
	StudentSuspended StudentStatus = "suspended"
)

// Student is an enrolled (or formerly enrolled) student record. StudentID is
// the human-facing number printed on cards; it is not enforced unique.
type Student struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Email          string        `json:"email" yaml:"email"`
	Phone          string        `json:"phone" yaml:"phone"`
	StudentID      string        `json:"studentId" yaml:"studentId"`
	Department     string        `json:"department" yaml:"department"`
	Year           int           `json:"year" yaml:"year"`
	GPA            float64       `json:"gpa" yaml:"gpa"`
	EnrollmentDate string        `json:"enrollmentDate" yaml:"enrollmentDate"`
	Status         StudentStatus `json:"status" yaml:"status"`
}

func (s Student) RecordID() string { return s.ID }

func (s Student) WithRecordID(id string) Student {
	s.ID = id
	return s
}

// SearchFields lists the text a student search matches against.
func (s Student) SearchFields() []string {
	return []string{s.Name, s.Department, s.StudentID}
}
