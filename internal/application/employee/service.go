package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bitfutura/ems/internal/domain/employee"
	"github.com/bitfutura/ems/internal/domain/shared"
	"github.com/bitfutura/ems/internal/domain/shared/valueobject"
)

// Welcome notification templates, sent after a confirmed persisted add.
const welcomeSubjectFormat = "Welcome to the Company, %s!"

const welcomeBodyFormat = "Hi %s,\n\n" +
	"Your employee ID is %s.\n" +
	"You have been successfully added to the system under the %s department.\n" +
	"Your registered email is %s.\n\n" +
	"Thank you,\nHR Department"

// Service is the employee record store. It owns the ordered in-memory
// collection and routes every mutation through validation, uniqueness
// checks and persistence. Mutations are two-phase: the would-be state is
// persisted first and committed to memory only when the save succeeds, so a
// storage failure never leaves memory ahead of the file.
type Service struct {
	repo      employee.Repository
	notifier  Notifier
	logger    *zap.Logger
	validate  *validator.Validate
	employees []*employee.Employee
}

// NewService creates the store and loads the persisted collection. Load
// failures degrade to an empty collection; startup never fails on a corrupt
// or missing file.
func NewService(ctx context.Context, repo employee.Repository, notifier Notifier, logger *zap.Logger) *Service {
	s := &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		validate: validator.New(),
	}

	// A load failure degrades to whatever the repository could read,
	// possibly nothing.
	employees, err := repo.LoadAll(ctx)
	if err != nil {
		logger.Warn("Failed to load employee records", zap.Error(err))
	}
	s.employees = employees

	logger.Info("Employee records loaded", zap.Int("count", len(s.employees)))
	return s
}

// Count returns the number of records currently in the store.
func (s *Service) Count() int {
	return len(s.employees)
}

// Add validates and appends a new employee record. Validation order: ID
// format, ID uniqueness, name, department, salary, then contact format and
// case-insensitive uniqueness. The record is persisted before it becomes
// visible, and the welcome notification fires only after the persisted add.
func (s *Service) Add(ctx context.Context, req AddEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.checkRequired(req); err != nil {
		return nil, err
	}

	if !employee.ValidID(req.ID) {
		return nil, shared.ErrInvalidID
	}
	if s.findByID(req.ID) != nil {
		return nil, shared.ErrDuplicateID
	}
	if !employee.ValidName(req.Name) {
		return nil, shared.ErrInvalidName
	}
	if !employee.ValidDepartment(req.Department) {
		return nil, shared.ErrInvalidDepartment
	}
	if !employee.ValidSalary(req.Salary) {
		return nil, shared.ErrInvalidSalary
	}
	if !employee.ValidContact(req.Contact) {
		return nil, shared.ErrInvalidContact
	}
	if s.contactTaken(req.Contact, "") {
		return nil, shared.ErrDuplicateContact
	}

	emp, err := employee.New(req.ID, req.Name, req.Department, req.Salary, req.Contact)
	if err != nil {
		return nil, shared.ErrInvalidSalary
	}

	next := append(s.snapshot(), emp)
	if err := s.repo.SaveAll(ctx, next); err != nil {
		s.logger.Error("Failed to persist employee add", zap.String("employee_id", req.ID), zap.Error(err))
		return nil, shared.NewStorageError(err)
	}
	s.employees = next

	s.logger.Info("Employee added",
		zap.String("employee_id", emp.ID()),
		zap.String("department", emp.Department()))

	s.sendWelcome(ctx, emp)

	resp := ToEmployeeResponse(emp)
	return &resp, nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*EmployeeResponse, error) {
	emp := s.findByID(id)
	if emp == nil {
		return nil, shared.ErrNotFound
	}
	resp := ToEmployeeResponse(emp)
	return &resp, nil
}

// Update applies the provided fields to an existing record. Every provided
// field is validated before anything is mutated; the change is all-or-nothing
// and only becomes visible after a successful save.
func (s *Service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	current := s.findByID(id)
	if current == nil {
		return nil, shared.ErrNotFound
	}

	if req.Name != nil && !employee.ValidName(*req.Name) {
		return nil, shared.ErrInvalidName
	}
	if req.Department != nil && !employee.ValidDepartment(*req.Department) {
		return nil, shared.ErrInvalidDepartment
	}
	if req.Salary != nil && !employee.ValidSalary(*req.Salary) {
		return nil, shared.ErrInvalidSalary
	}
	if req.Contact != nil {
		if !employee.ValidContact(*req.Contact) {
			return nil, shared.ErrInvalidContact
		}
		if s.contactTaken(*req.Contact, id) {
			return nil, shared.ErrDuplicateContact
		}
	}

	updated := current.Clone()
	if req.Name != nil {
		updated.SetName(*req.Name)
	}
	if req.Department != nil {
		updated.SetDepartment(*req.Department)
	}
	if req.Salary != nil {
		salary, err := valueobject.NewMoneyUSDFromString(*req.Salary)
		if err != nil {
			return nil, shared.ErrInvalidSalary
		}
		updated.SetSalary(salary)
	}
	if req.Contact != nil {
		updated.SetContact(*req.Contact)
	}

	next := s.snapshot()
	for i, emp := range next {
		if emp.ID() == id {
			next[i] = updated
			break
		}
	}
	if err := s.repo.SaveAll(ctx, next); err != nil {
		s.logger.Error("Failed to persist employee update", zap.String("employee_id", id), zap.Error(err))
		return nil, shared.NewStorageError(err)
	}
	s.employees = next

	s.logger.Info("Employee updated", zap.String("employee_id", id))

	resp := ToEmployeeResponse(updated)
	return &resp, nil
}

// Delete removes the record with the given ID and returns it for display.
func (s *Service) Delete(ctx context.Context, id string) (*EmployeeResponse, error) {
	removed := s.findByID(id)
	if removed == nil {
		return nil, shared.ErrNotFound
	}

	next := make([]*employee.Employee, 0, len(s.employees)-1)
	for _, emp := range s.employees {
		if emp.ID() != id {
			next = append(next, emp)
		}
	}
	if err := s.repo.SaveAll(ctx, next); err != nil {
		s.logger.Error("Failed to persist employee delete", zap.String("employee_id", id), zap.Error(err))
		return nil, shared.NewStorageError(err)
	}
	s.employees = next

	s.logger.Info("Employee deleted", zap.String("employee_id", id))

	resp := ToEmployeeResponse(removed)
	return &resp, nil
}

// List returns every record in insertion order. An empty result is valid.
func (s *Service) List(ctx context.Context) ([]EmployeeResponse, error) {
	responses := make([]EmployeeResponse, 0, len(s.employees))
	for _, emp := range s.employees {
		responses = append(responses, ToEmployeeResponse(emp))
	}
	return responses, nil
}

// DepartmentReport returns the records of one department, matched
// case-insensitively, together with their summed salary. The sum uses a
// decimal accumulator, so it does not drift the way float accumulation would.
func (s *Service) DepartmentReport(ctx context.Context, department string) (*DepartmentReportResponse, error) {
	matches := make([]EmployeeResponse, 0)
	total := valueobject.ZeroUSD()
	for _, emp := range s.employees {
		if !emp.InDepartment(department) {
			continue
		}
		matches = append(matches, ToEmployeeResponse(emp))
		total = total.MustAdd(emp.Salary())
	}

	title := cases.Title(language.English)
	return &DepartmentReportResponse{
		Department:  title.String(strings.ToLower(department)),
		Employees:   matches,
		TotalSalary: total.Amount(),
	}, nil
}

// checkRequired rejects structurally incomplete add requests, mapping the
// first missing field to its domain error in declaration order.
func (s *Service) checkRequired(req AddEmployeeRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "ID":
			return shared.ErrInvalidID
		case "Name":
			return shared.ErrInvalidName
		case "Department":
			return shared.ErrInvalidDepartment
		case "Salary":
			return shared.ErrInvalidSalary
		case "Contact":
			return shared.ErrInvalidContact
		}
	}
	return shared.ErrInvalidID
}

// findByID scans the collection for an exact ID match.
func (s *Service) findByID(id string) *employee.Employee {
	for _, emp := range s.employees {
		if emp.ID() == id {
			return emp
		}
	}
	return nil
}

// contactTaken reports whether another employee already uses the contact
// email, compared case-insensitively. exemptID excludes a record's own
// current contact during updates.
func (s *Service) contactTaken(contact, exemptID string) bool {
	for _, emp := range s.employees {
		if emp.ID() == exemptID {
			continue
		}
		if emp.HasContact(contact) {
			return true
		}
	}
	return false
}

// snapshot copies the record slice so an in-flight mutation never aliases
// the committed state.
func (s *Service) snapshot() []*employee.Employee {
	next := make([]*employee.Employee, len(s.employees))
	copy(next, s.employees)
	return next
}

// sendWelcome delivers the welcome notification. Failures are logged and
// never affect the committed record.
func (s *Service) sendWelcome(ctx context.Context, emp *employee.Employee) {
	subject := fmt.Sprintf(welcomeSubjectFormat, emp.Name())
	body := fmt.Sprintf(welcomeBodyFormat, emp.Name(), emp.ID(), emp.Department(), emp.Contact())

	if err := s.notifier.Send(ctx, emp.Name(), emp.Contact(), subject, body); err != nil {
		s.logger.Warn("Welcome notification failed",
			zap.String("employee_id", emp.ID()),
			zap.Error(shared.NewNotificationError(err)))
	}
}
