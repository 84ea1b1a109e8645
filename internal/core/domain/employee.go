package domain

// EmployeeStatus is the employment state of an employee.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee is a staff member record.
type Employee struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Email      string         `json:"email" yaml:"email"`
	Phone      string         `json:"phone" yaml:"phone"`
	Department string         `json:"department" yaml:"department"`
	Position   string         `json:"position" yaml:"position"`
	Salary     float64        `json:"salary" yaml:"salary"`
	HireDate   string         `json:"hireDate" yaml:"hireDate"`
	Status     EmployeeStatus `json:"status" yaml:"status"`
}

func (e Employee) RecordID() string { return e.ID }

func (e Employee) WithRecordID(id string) Employee {
	e.ID = id
	return e
}

// SearchFields lists the text an employee search matches against.
func (e Employee) SearchFields() []string {
	return []string{e.Name, e.Department, e.Position}
}
