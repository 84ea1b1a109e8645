package domain

// Department is a read-only organisational unit supplied by the seed
// dataset. Employees and students reference it by Name.
type Department struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Code          string  `json:"code" yaml:"code"`
	Head          string  `json:"head" yaml:"head"`
	Budget        float64 `json:"budget" yaml:"budget"`
	EmployeeCount int     `json:"employeeCount" yaml:"employeeCount"`
}
