// Package cli implements the interactive text menu over the employee store.
// All console I/O and confirmation prompts live here; the store stays
// independently callable.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	employeeapp "github.com/bitfutura/ems/internal/application/employee"
	"github.com/bitfutura/ems/internal/domain/employee"
	"github.com/bitfutura/ems/internal/domain/shared"
	"github.com/bitfutura/ems/internal/infrastructure/logger"
)

// Shell runs the interactive menu loop against the employee service.
type Shell struct {
	service *employeeapp.Service
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger
}

// New creates a Shell reading operator input from in and writing to out.
func New(service *employeeapp.Service, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	return &Shell{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  log,
	}
}

// Run displays the menu and dispatches choices until the operator exits or
// input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printf("\nEmployee Management System\n")
		s.printf("1. Add Employee\n")
		s.printf("2. View Employee\n")
		s.printf("3. Update Employee\n")
		s.printf("4. Delete Employee\n")
		s.printf("5. List All Employees\n")
		s.printf("6. Department Wise Report\n")
		s.printf("7. Exit\n")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return nil // input closed, treat as exit
		}

		opCtx, opLog := logger.WithOperationID(ctx, s.logger)

		switch choice {
		case "1":
			s.addEmployee(opCtx, opLog)
		case "2":
			s.viewEmployee(opCtx, opLog)
		case "3":
			s.updateEmployee(opCtx, opLog)
		case "4":
			s.deleteEmployee(opCtx, opLog)
		case "5":
			s.listEmployees(opCtx, opLog)
		case "6":
			s.departmentReport(opCtx, opLog)
		case "7":
			s.printf("Exiting the system.\n")
			return nil
		default:
			s.printf("Invalid choice! Please try again.\n")
		}
	}
}

func (s *Shell) addEmployee(ctx context.Context, log *zap.Logger) {
	id, err := s.prompt("Enter Employee ID (Format: E12345678): ")
	if err != nil {
		return
	}
	name, err := s.prompt("Enter Name: ")
	if err != nil {
		return
	}
	department, err := s.prompt("Enter Department: ")
	if err != nil {
		return
	}
	salary, err := s.prompt("Enter Salary: ")
	if err != nil {
		return
	}
	contact, err := s.prompt("Enter Contact Email: ")
	if err != nil {
		return
	}

	s.printf("\nReview Employee Details:\n")
	s.printf("ID: %s\nName: %s\nDepartment: %s\nSalary: %s\nContact: %s\n", id, name, department, salary, contact)
	s.printf("%s\n", strings.Repeat("-", 40))
	if !s.confirm("Confirm add this employee? (yes/no): ") {
		s.printf("Employee addition cancelled.\n")
		return
	}

	resp, err := s.service.Add(ctx, employeeapp.AddEmployeeRequest{
		ID:         id,
		Name:       name,
		Department: department,
		Salary:     salary,
		Contact:    contact,
	})
	if err != nil {
		s.renderError(err)
		return
	}

	log.Info("Added employee via menu", zap.String("employee_id", resp.ID))
	s.printf("Employee added successfully.\n")
}

func (s *Shell) viewEmployee(ctx context.Context, log *zap.Logger) {
	id, err := s.prompt("Enter Employee ID to view: ")
	if err != nil {
		return
	}
	if !employee.ValidID(id) {
		s.printf("Invalid Employee ID format.\n")
		return
	}

	resp, err := s.service.Get(ctx, id)
	if err != nil {
		s.renderError(err)
		return
	}

	if !s.confirm(fmt.Sprintf("View report for employee '%s'? (yes/no): ", id)) {
		s.printf("Report cancelled by user.\n")
		return
	}

	log.Info("Viewed employee via menu", zap.String("employee_id", id))
	s.printf("\nEmployee Details:\n%s\n", resp)
}

func (s *Shell) updateEmployee(ctx context.Context, log *zap.Logger) {
	id, err := s.prompt("Enter Employee ID to update: ")
	if err != nil {
		return
	}

	current, err := s.service.Get(ctx, id)
	if err != nil {
		s.renderError(err)
		return
	}

	s.printf("\nCurrent Employee Details:\n%s\n", current)
	if !s.confirm("Do you want to proceed with updating this employee? (yes/no): ") {
		s.printf("Update cancelled by user.\n")
		return
	}

	req := employeeapp.UpdateEmployeeRequest{}
	if v, err := s.prompt(fmt.Sprintf("New name [%s]: ", current.Name)); err != nil {
		return
	} else if v != "" {
		req.Name = &v
	}
	if v, err := s.prompt(fmt.Sprintf("New department [%s]: ", current.Department)); err != nil {
		return
	} else if v != "" {
		req.Department = &v
	}
	if v, err := s.prompt(fmt.Sprintf("New salary [%s]: ", current.Salary.StringFixed(2))); err != nil {
		return
	} else if v != "" {
		req.Salary = &v
	}
	if v, err := s.prompt(fmt.Sprintf("New email [%s]: ", current.Contact)); err != nil {
		return
	} else if v != "" {
		req.Contact = &v
	}

	if req.Empty() {
		s.printf("Nothing to update.\n")
		return
	}

	if !s.confirm("Save these changes? (yes/no): ") {
		s.printf("Update cancelled.\n")
		return
	}

	resp, err := s.service.Update(ctx, id, req)
	if err != nil {
		s.renderError(err)
		return
	}

	log.Info("Updated employee via menu", zap.String("employee_id", id))
	s.printf("Employee %s updated successfully.\n%s\n", id, resp)
}

func (s *Shell) deleteEmployee(ctx context.Context, log *zap.Logger) {
	id, err := s.prompt("Enter Employee ID to delete: ")
	if err != nil {
		return
	}

	current, err := s.service.Get(ctx, id)
	if err != nil {
		s.renderError(err)
		return
	}

	s.printf("\nEmployee Found:\n%s\n", current)
	if !s.confirm("Are you sure you want to delete this employee? (yes/no): ") {
		s.printf("Deletion cancelled.\n")
		return
	}

	if _, err := s.service.Delete(ctx, id); err != nil {
		s.renderError(err)
		return
	}

	log.Info("Deleted employee via menu", zap.String("employee_id", id))
	s.printf("Employee %s deleted successfully.\n", id)
}

func (s *Shell) listEmployees(ctx context.Context, log *zap.Logger) {
	list, err := s.service.List(ctx)
	if err != nil {
		s.renderError(err)
		return
	}
	if len(list) == 0 {
		s.printf("No employees found.\n")
		return
	}

	if !s.confirm("View all employee records? (yes/no): ") {
		s.printf("Listing cancelled by user.\n")
		return
	}

	log.Info("Listed employees via menu", zap.Int("count", len(list)))
	s.printf("\nAll Employee Records\n%s\n", strings.Repeat("=", 40))
	for _, resp := range list {
		s.printf("%s\n", resp)
	}
}

func (s *Shell) departmentReport(ctx context.Context, log *zap.Logger) {
	department, err := s.prompt("Enter department to filter: ")
	if err != nil {
		return
	}

	report, err := s.service.DepartmentReport(ctx, department)
	if err != nil {
		s.renderError(err)
		return
	}
	if len(report.Employees) == 0 {
		s.printf("No employees found in that department.\n")
		return
	}

	if !s.confirm(fmt.Sprintf("View report for department '%s'? (yes/no): ", report.Department)) {
		s.printf("Report cancelled by user.\n")
		return
	}

	log.Info("Generated department report via menu",
		zap.String("department", report.Department),
		zap.Int("count", len(report.Employees)))

	s.printf("\nEmployees in Department: %s\n%s\n", report.Department, strings.Repeat("=", 40))
	for _, resp := range report.Employees {
		s.printf("%s\n", resp)
	}
	s.printf("%s\n", strings.Repeat("=", 40))
	s.printf("Total Budgeted Salary for '%s': $%s\n", report.Department, report.TotalSalary.StringFixed(2))
}

// prompt writes the prompt and returns one trimmed input line.
func (s *Shell) prompt(text string) (string, error) {
	s.printf("%s", text)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but "yes" declines.
func (s *Shell) confirm(text string) bool {
	answer, err := s.prompt(text)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "yes")
}

func (s *Shell) renderError(err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		s.printf("%s\n", domainErr.Message)
		return
	}
	s.printf("Unexpected error: %v\n", err)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
