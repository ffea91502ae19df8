package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Department is the closed set of the nine Bolivian departments used for
// address and warehouse locations. The zero value is invalid.
type Department int

const (
	DepartmentUnknown Department = iota
	LaPaz
	Cochabamba
	SantaCruz
	Oruro
	Potosi
	Chuquisaca
	Tarija
	Beni
	Pando
)

func departmentNames() map[Department]string {
	return map[Department]string{
		LaPaz:      "La Paz",
		Cochabamba: "Cochabamba",
		SantaCruz:  "Santa Cruz",
		Oruro:      "Oruro",
		Potosi:     "Potosí",
		Chuquisaca: "Chuquisaca",
		Tarija:     "Tarija",
		Beni:       "Beni",
		Pando:      "Pando",
	}
}

// AllDepartments returns every valid department in declaration order.
func AllDepartments() []Department {
	return []Department{LaPaz, Cochabamba, SantaCruz, Oruro, Potosi, Chuquisaca, Tarija, Beni, Pando}
}

// DepartmentNamesList returns the valid department names joined for error messages.
func DepartmentNamesList() string {
	names := make([]string, 0, len(AllDepartments()))
	for _, d := range AllDepartments() {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

// ParseDepartment resolves a department from its display name.
// Matching is case-insensitive and tolerant of the accent in Potosí.
func ParseDepartment(name string) (Department, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for d, n := range departmentNames() {
		if strings.ToLower(n) == normalized {
			return d, nil
		}
	}
	if normalized == "potosi" {
		return Potosi, nil
	}

	return DepartmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"department",
		fmt.Errorf("%q is not one of the valid departments: %s", name, DepartmentNamesList()),
	)
}

// Validate rejects any value outside the nine-department set.
func (d Department) Validate() error {
	if _, ok := departmentNames()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"department",
			fmt.Errorf("%d is not one of the valid departments: %s", d, DepartmentNamesList()),
		)
	}
	return nil
}

// String returns the department display name, or "Unknown" for invalid values.
func (d Department) String() string {
	if name, ok := departmentNames()[d]; ok {
		return name
	}
	return "Unknown"
}
