package directory

import (
	"context"
	"strings"
)

type (
	// Client is the employee directory service this roster reads from.
	Client interface {
		EmployeesPage(ctx context.Context, filter *Filter, sort Sort, page, pageSize int) (Page, error)
		EmployeeByID(ctx context.Context, id string) (RawEmployee, error)
		UpdateEmployee(ctx context.Context, id string, input UpdateInput) (RawEmployee, error)
	}

	// Service owns the projected employee list. It is driven from a single
	// event loop; methods are not safe for concurrent use.
	Service struct {
		client    Client
		employees []Employee
	}
)

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Project transforms one page of raw query results into roster records.
// It is a pure function: same input, same output.
func Project(items []RawEmployee) []Employee {
	employees := make([]Employee, 0, len(items))
	for _, item := range items {
		employees = append(employees, projectOne(item))
	}
	return employees
}

func projectOne(raw RawEmployee) Employee {
	className := "-"
	if len(raw.TeachingAssignments) > 0 && raw.TeachingAssignments[0].ClassName != "" {
		className = raw.TeachingAssignments[0].ClassName
	}

	var attendance float64
	if raw.AttendanceSummary != nil && raw.AttendanceSummary.Percentage != nil {
		attendance = *raw.AttendanceSummary.Percentage
	}

	// the list query has no status field; the role string stands in for it
	status := raw.Role
	if status == "" {
		status = "Active"
	}
	role := raw.Role
	if role == "" {
		role = "-"
	}

	return Employee{
		ID:                raw.ID,
		Name:              raw.Name,
		DOB:               "", // only returned by the detail query
		ClassName:         className,
		Subjects:          subjectNames(raw.TeachingAssignments),
		AttendancePercent: attendance,
		Email:             raw.Email,
		Phone:             "-",
		Location:          "-",
		Status:            status,
		Role:              role,
	}
}

// subjectNames keeps source order and duplicates; only empty names are dropped.
func subjectNames(assignments []TeachingAssignment) []string {
	names := make([]string, 0, len(assignments))
	for _, t := range assignments {
		if t.SubjectName != "" {
			names = append(names, t.SubjectName)
		}
	}
	return names
}

// FetchPage runs the first roster page query without touching the list;
// pair it with ApplyPage. Interactive callers fetch off the event loop and
// apply on it.
func (s *Service) FetchPage(ctx context.Context) (Page, error) {
	return s.client.EmployeesPage(
		ctx, nil, Sort{Field: SortByName, Direction: SortAscending}, 0, 10,
	)
}

// Refresh fetches the first roster page and applies it.
// On failure the prior list is retained.
func (s *Service) Refresh(ctx context.Context) (string, error) {
	page, err := s.FetchPage(ctx)
	if err != nil {
		return "", err
	}
	return s.ApplyPage(page), nil
}

// ApplyPage replaces the roster with the projection of the given page and
// returns the first record's id as the new editing target ("" when nothing
// changed). An empty page is ignored and the prior list retained.
func (s *Service) ApplyPage(page Page) string {
	if len(page.Items) == 0 {
		return ""
	}
	s.employees = Project(page.Items)
	return s.employees[0].ID
}

// Employees returns the current roster, in page order.
func (s *Service) Employees() []Employee {
	return s.employees
}

func (s *Service) Find(id string) (Employee, bool) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// Search filters the roster on a case-insensitive substring of name or email.
func (s *Service) Search(term string) []Employee {
	term = strings.ToLower(term)
	matches := make([]Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		if strings.Contains(strings.ToLower(emp.Name), term) ||
			strings.Contains(strings.ToLower(emp.Email), term) {
			matches = append(matches, emp)
		}
	}
	return matches
}

// SubmitUpdate sends an employee update to the directory service.
// It does not touch the roster; call Merge with the result on success.
func (s *Service) SubmitUpdate(ctx context.Context, id string, input UpdateInput) (RawEmployee, error) {
	return s.client.UpdateEmployee(ctx, id, input)
}

// FetchProfile runs the detail query for one employee.
func (s *Service) FetchProfile(ctx context.Context, id string) (RawEmployee, error) {
	return s.client.EmployeeByID(ctx, id)
}

// Merge folds a partial server response into the matching record, replacing
// only the fields the server returned and preserving all others.
func (s *Service) Merge(id string, updated RawEmployee) (Employee, bool) {
	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		emp := &s.employees[i]
		if len(updated.TeachingAssignments) > 0 {
			if name := updated.TeachingAssignments[0].ClassName; name != "" {
				emp.ClassName = name
			}
			emp.Subjects = subjectNames(updated.TeachingAssignments)
		}
		if updated.AttendanceSummary != nil && updated.AttendanceSummary.Percentage != nil {
			emp.AttendancePercent = *updated.AttendanceSummary.Percentage
		}
		if updated.Role != "" {
			emp.Role = updated.Role
		}
		if updated.Email != "" {
			emp.Email = updated.Email
		}
		return *emp, true
	}
	return Employee{}, false
}

// Reset drops the roster; used on sign-out.
func (s *Service) Reset() {
	s.employees = nil
}

// ProfileFrom projects a detail query result for the profile panel.
func ProfileFrom(raw RawEmployee) Profile {
	classNames := make([]string, 0, len(raw.TeachingAssignments))
	for _, t := range raw.TeachingAssignments {
		if t.ClassName != "" {
			classNames = append(classNames, t.ClassName)
		}
	}
	var attendance *float64
	if raw.AttendanceSummary != nil {
		attendance = raw.AttendanceSummary.Percentage
	}
	return Profile{
		ID:                raw.ID,
		Name:              raw.Name,
		Email:             raw.Email,
		Role:              raw.Role,
		DateOfBirth:       raw.DateOfBirth,
		ClassNames:        classNames,
		Subjects:          subjectNames(raw.TeachingAssignments),
		AttendancePercent: attendance,
	}
}

// PlaceholderProfile is the fallback shown before the detail query resolves.
func PlaceholderProfile(id, name, email, role string) Profile {
	return Profile{
		ID:         id,
		Name:       name,
		Email:      email,
		Role:       role,
		ClassNames: []string{},
		Subjects:   []string{},
	}
}
