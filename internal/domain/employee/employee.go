package employee

import (
	"fmt"
	"strings"

	"github.com/bitfutura/ems/internal/domain/shared/valueobject"
)

// FieldNames is the fixed header set used by the persistence file, in
// serialization order.
var FieldNames = []string{"ID", "Name", "Department", "Salary", "Contact"}

// Employee represents a single employee record. The ID is immutable after
// construction; the remaining fields are mutated through the setters so the
// store can route every change through validation.
type Employee struct {
	id         string
	name       string
	department string
	salary     valueobject.Money
	contact    string
}

// New constructs an Employee from pre-validated field strings. Callers must
// have run the field validators beforehand; construction does not re-check
// formats. The salary string is parsed to a decimal amount.
func New(id, name, department, salaryStr, contact string) (*Employee, error) {
	salary, err := valueobject.NewMoneyUSDFromString(salaryStr)
	if err != nil {
		return nil, fmt.Errorf("parse salary: %w", err)
	}
	return &Employee{
		id:         id,
		name:       name,
		department: department,
		salary:     salary,
		contact:    contact,
	}, nil
}

// ID returns the immutable employee ID.
func (e *Employee) ID() string { return e.id }

// Name returns the employee's name.
func (e *Employee) Name() string { return e.name }

// Department returns the employee's department.
func (e *Employee) Department() string { return e.department }

// Salary returns the employee's salary.
func (e *Employee) Salary() valueobject.Money { return e.salary }

// Contact returns the employee's contact email.
func (e *Employee) Contact() string { return e.contact }

// SetName replaces the employee's name.
func (e *Employee) SetName(name string) { e.name = name }

// SetDepartment replaces the employee's department.
func (e *Employee) SetDepartment(department string) { e.department = department }

// SetSalary replaces the employee's salary.
func (e *Employee) SetSalary(salary valueobject.Money) { e.salary = salary }

// SetContact replaces the employee's contact email.
func (e *Employee) SetContact(contact string) { e.contact = contact }

// InDepartment reports whether the employee belongs to the given department,
// compared case-insensitively.
func (e *Employee) InDepartment(department string) bool {
	return strings.EqualFold(e.department, department)
}

// HasContact reports whether the employee's contact email equals the given
// address, compared case-insensitively.
func (e *Employee) HasContact(contact string) bool {
	return strings.EqualFold(e.contact, contact)
}

// Clone returns a deep copy of the employee.
func (e *Employee) Clone() *Employee {
	c := *e
	return &c
}

// Fields returns the record as a header-keyed mapping for persistence, with
// the salary rendered at fixed two-decimal precision.
func (e *Employee) Fields() map[string]string {
	return map[string]string{
		"ID":         e.id,
		"Name":       e.name,
		"Department": e.department,
		"Salary":     e.salary.StringFixed(2),
		"Contact":    e.contact,
	}
}

// String renders the record for display, one field per line followed by a
// separator rule.
func (e *Employee) String() string {
	return fmt.Sprintf("ID: %s\nName: %s\nDepartment: %s\nSalary: %s\nContact: %s\n%s",
		e.id, e.name, e.department, e.salary.Display(), e.contact, strings.Repeat("-", 40))
}
