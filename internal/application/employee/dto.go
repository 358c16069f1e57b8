package employee

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitfutura/ems/internal/domain/employee"
)

// =============================================================================
// Requests
// =============================================================================

// AddEmployeeRequest carries the raw, already-trimmed field strings for a new
// employee record. Field order matches the validation order.
type AddEmployeeRequest struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Salary     string `json:"salary" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
}

// UpdateEmployeeRequest carries optional replacement values. A nil field
// means "keep the current value".
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Salary     *string `json:"salary"`
	Contact    *string `json:"contact"`
}

// Empty reports whether the request changes nothing.
func (r UpdateEmployeeRequest) Empty() bool {
	return r.Name == nil && r.Department == nil && r.Salary == nil && r.Contact == nil
}

// =============================================================================
// Responses
// =============================================================================

// EmployeeResponse represents an employee record in operation results.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	Contact    string          `json:"contact"`
}

// ToEmployeeResponse converts a domain employee to a response DTO.
func ToEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID(),
		Name:       e.Name(),
		Department: e.Department(),
		Salary:     e.Salary().Amount(),
		Contact:    e.Contact(),
	}
}

// String renders the record the way the record display expects it: one field
// per line, salary at two decimals with a currency sign, then a separator.
func (r EmployeeResponse) String() string {
	return fmt.Sprintf("ID: %s\nName: %s\nDepartment: %s\nSalary: $%s\nContact: %s\n%s",
		r.ID, r.Name, r.Department, r.Salary.StringFixed(2), r.Contact, strings.Repeat("-", 40))
}

// DepartmentReportResponse carries the employees of one department, in
// insertion order, together with the summed salary budget.
type DepartmentReportResponse struct {
	Department  string             `json:"department"`
	Employees   []EmployeeResponse `json:"employees"`
	TotalSalary decimal.Decimal    `json:"total_salary"`
}
