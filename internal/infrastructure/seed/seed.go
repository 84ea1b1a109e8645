// Package seed loads the hardcoded accounts, departments and initial entity
// collections the portal starts from.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/campusdesk/portal/internal/core/domain"
)

//go:embed default.yaml
var defaultData []byte

// Dataset is everything the portal needs before the durable store is read.
// Users and Departments are never persisted; Employees and Students are only
// the initial values for their collections.
type Dataset struct {
	Users       []domain.User       `yaml:"users"`
	Departments []domain.Department `yaml:"departments"`
	Employees   []domain.Employee   `yaml:"employees"`
	Students    []domain.Student    `yaml:"students"`
}

// Default returns the built-in dataset.
func Default() (Dataset, error) {
	return parse(defaultData)
}

// Load reads a dataset from path, or the built-in one when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[string]bool, len(ds.Users))
	for _, u := range ds.Users {
		if !u.WellFormed() {
			return Dataset{}, fmt.Errorf("seed user %q: missing username or unknown role %q", u.ID, u.Role)
		}
		if seen[u.Username] {
			return Dataset{}, fmt.Errorf("seed user %q: duplicate username", u.Username)
		}
		seen[u.Username] = true
	}
	return ds, nil
}
