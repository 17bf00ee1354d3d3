package directory

// Wire shapes, dictated by the faculty GraphQL schema.

type (
	// TeachingAssignment is a (class, subject) pairing attached to an employee.
	TeachingAssignment struct {
		ClassName   string `json:"className"`
		SubjectName string `json:"subjectName"`
	}

	AttendanceSummary struct {
		Percentage *float64 `json:"percentage"`
	}

	// RawEmployee is an employee as returned by the directory queries.
	// DateOfBirth is only populated by the detail query.
	RawEmployee struct {
		ID                  string               `json:"id"`
		Name                string               `json:"name"`
		Email               string               `json:"email"`
		Role                string               `json:"role"`
		DateOfBirth         string               `json:"dateOfBirth"`
		TeachingAssignments []TeachingAssignment `json:"teachingAssignments"`
		AttendanceSummary   *AttendanceSummary   `json:"attendanceSummary"`
	}

	// Page is one page of the employeesPage query.
	Page struct {
		Items      []RawEmployee `json:"items"`
		TotalCount int           `json:"totalCount"`
		Page       int           `json:"page"`
		PageSize   int           `json:"pageSize"`
	}

	// Filter narrows the employeesPage query; the client sends nil today.
	Filter struct {
		Search string `json:"search,omitempty"`
	}

	Sort struct {
		Field     string `json:"field"`
		Direction string `json:"direction"`
	}

	SubjectAssignment struct {
		ClassID   string `json:"classId"`
		SubjectID string `json:"subjectId"`
	}

	// UpdateInput carries an employee update. Name, email and role are sent
	// unchanged alongside the new assignment pairs.
	UpdateInput struct {
		Name               string              `json:"name"`
		Email              string              `json:"email"`
		Role               string              `json:"role"`
		SubjectAssignments []SubjectAssignment `json:"subjectAssignments"`
		DeleteUser         bool                `json:"deleteUser"`
	}
)

// Sort constants for the roster page query.
const (
	SortByName    = "NAME"
	SortAscending = "ASC"
)

// Employee is a roster row as the UI displays it. Records are produced only
// by the projection, never hand-constructed.
type Employee struct {
	ID                string
	Name              string
	DOB               string
	ClassName         string
	Subjects          []string
	AttendancePercent float64
	Email             string
	Phone             string
	Location          string
	Status            string
	Role              string
}

// Profile is the detail view behind the "My Profile" panel.
type Profile struct {
	ID                string
	Name              string
	Email             string
	Role              string
	DateOfBirth       string
	ClassNames        []string
	Subjects          []string
	AttendancePercent *float64
}
