package directory_test

import (
	"reflect"
	"testing"

	"github.com/ultraship/employeehub/core/directory"
	testutil "github.com/ultraship/employeehub/tests"
)

func TestProject(t *testing.T) {
	raw := testutil.RawEmployee("E1", "Ada", "a@x.com", "Teacher",
		testutil.Assignment("8A", "Math"),
		testutil.Assignment("8A", "Art"),
	)
	raw.AttendanceSummary = testutil.Attendance(92.5)

	t.Run("full record", func(t *testing.T) {
		got := directory.Project([]directory.RawEmployee{raw})
		want := []directory.Employee{{
			ID:                "E1",
			Name:              "Ada",
			DOB:               "",
			ClassName:         "8A",
			Subjects:          []string{"Math", "Art"},
			AttendancePercent: 92.5,
			Email:             "a@x.com",
			Phone:             "-",
			Location:          "-",
			Status:            "Teacher",
			Role:              "Teacher",
		}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Project() = %+v; want %+v", got, want)
		}
	})

	t.Run("defaults when everything is missing", func(t *testing.T) {
		got := directory.Project([]directory.RawEmployee{{ID: "E2", Name: "Bo"}})[0]
		if got.ClassName != "-" {
			t.Errorf("ClassName = %q; want -", got.ClassName)
		}
		if len(got.Subjects) != 0 {
			t.Errorf("Subjects = %v; want empty", got.Subjects)
		}
		if got.AttendancePercent != 0 {
			t.Errorf("AttendancePercent = %v; want 0", got.AttendancePercent)
		}
		if got.Status != "Active" {
			t.Errorf("Status = %q; want Active", got.Status)
		}
		if got.Role != "-" || got.Phone != "-" || got.Location != "-" {
			t.Errorf("defaults = %q/%q/%q; want -/-/-", got.Role, got.Phone, got.Location)
		}
	})

	t.Run("empty subject names dropped", func(t *testing.T) {
		e := testutil.RawEmployee("E3", "Cy", "c@x.com", "Teacher",
			testutil.Assignment("7B", ""),
			testutil.Assignment("7B", "Music"),
		)
		got := directory.Project([]directory.RawEmployee{e})[0]
		if !reflect.DeepEqual(got.Subjects, []string{"Music"}) {
			t.Errorf("Subjects = %v; want [Music]", got.Subjects)
		}
	})

	// documented quirk: the same subject in two classes stays duplicated,
	// and only the first assignment's class becomes ClassName
	t.Run("duplicate subject names kept", func(t *testing.T) {
		e := testutil.RawEmployee("E4", "Di", "d@x.com", "Teacher",
			testutil.Assignment("7B", "Math"),
			testutil.Assignment("8A", "Math"),
		)
		got := directory.Project([]directory.RawEmployee{e})[0]
		if !reflect.DeepEqual(got.Subjects, []string{"Math", "Math"}) {
			t.Errorf("Subjects = %v; want [Math Math]", got.Subjects)
		}
		if got.ClassName != "7B" {
			t.Errorf("ClassName = %q; want 7B", got.ClassName)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first := directory.Project([]directory.RawEmployee{raw})
		second := directory.Project([]directory.RawEmployee{raw})
		if !reflect.DeepEqual(first, second) {
			t.Errorf("projections differ: %+v vs %+v", first, second)
		}
	})
}

func TestServiceApplyPage(t *testing.T) {
	svc := directory.NewService(nil)

	page := directory.Page{Items: []directory.RawEmployee{
		testutil.RawEmployee("E1", "Ada", "a@x.com", "Teacher"),
		testutil.RawEmployee("E2", "Bo", "b@x.com", "Teacher"),
	}}
	if first := svc.ApplyPage(page); first != "E1" {
		t.Errorf("ApplyPage() = %q; want E1", first)
	}
	if n := len(svc.Employees()); n != 2 {
		t.Fatalf("len(Employees()) = %d; want 2", n)
	}

	// an empty page leaves the prior list in place
	if first := svc.ApplyPage(directory.Page{}); first != "" {
		t.Errorf("ApplyPage(empty) = %q; want \"\"", first)
	}
	if n := len(svc.Employees()); n != 2 {
		t.Errorf("len(Employees()) after empty page = %d; want 2", n)
	}
}

func TestServiceSearch(t *testing.T) {
	svc := directory.NewService(nil)
	svc.ApplyPage(directory.Page{Items: []directory.RawEmployee{
		testutil.RawEmployee("E1", "Ada Lovelace", "ada@x.com", "Teacher"),
		testutil.RawEmployee("E2", "Bo Jackson", "bo@other.org", "Teacher"),
	}})

	tt := []struct {
		name string
		term string
		ids  []string
	}{
		{"empty term returns all", "", []string{"E1", "E2"}},
		{"name match is case-insensitive", "LOVE", []string{"E1"}},
		{"email match", "other.org", []string{"E2"}},
		{"no match", "zzz", nil},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.Search(tc.term)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if len(ids) == 0 {
				ids = nil
			}
			if !reflect.DeepEqual(ids, tc.ids) {
				t.Errorf("Search(%q) = %v; want %v", tc.term, ids, tc.ids)
			}
		})
	}
}

func TestServiceMerge(t *testing.T) {
	svc := directory.NewService(nil)
	raw := testutil.RawEmployee("E1", "Ada", "a@x.com", "Teacher",
		testutil.Assignment("8A", "Math"),
	)
	raw.AttendanceSummary = testutil.Attendance(92.5)
	svc.ApplyPage(directory.Page{Items: []directory.RawEmployee{raw}})

	t.Run("partial response updates only what it carries", func(t *testing.T) {
		updated := directory.RawEmployee{
			ID:                  "E1",
			Role:                "Lead",
			TeachingAssignments: []directory.TeachingAssignment{{ClassName: "9C", SubjectName: "Bio"}},
		}
		got, ok := svc.Merge("E1", updated)
		if !ok {
			t.Fatal("Merge() not ok")
		}
		if got.ClassName != "9C" {
			t.Errorf("ClassName = %q; want 9C", got.ClassName)
		}
		if !reflect.DeepEqual(got.Subjects, []string{"Bio"}) {
			t.Errorf("Subjects = %v; want [Bio]", got.Subjects)
		}
		if got.Role != "Lead" {
			t.Errorf("Role = %q; want Lead", got.Role)
		}
		// untouched fields survive
		if got.Email != "a@x.com" {
			t.Errorf("Email = %q; want a@x.com", got.Email)
		}
		if got.AttendancePercent != 92.5 {
			t.Errorf("AttendancePercent = %v; want 92.5", got.AttendancePercent)
		}
		if got.Status != "Teacher" {
			t.Errorf("Status = %q; want Teacher (merge never touches status)", got.Status)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		if _, ok := svc.Merge("nope", directory.RawEmployee{}); ok {
			t.Error("Merge(unknown) ok = true; want false")
		}
	})
}

func TestProfileFrom(t *testing.T) {
	raw := testutil.RawEmployee("E1", "Ada", "a@x.com", "Teacher",
		testutil.Assignment("8A", "Math"),
		testutil.Assignment("9C", "Art"),
	)
	raw.DateOfBirth = "1990-12-10"
	raw.AttendanceSummary = testutil.Attendance(88)

	p := directory.ProfileFrom(raw)
	if p.DateOfBirth != "1990-12-10" {
		t.Errorf("DateOfBirth = %q; want 1990-12-10", p.DateOfBirth)
	}
	if !reflect.DeepEqual(p.ClassNames, []string{"8A", "9C"}) {
		t.Errorf("ClassNames = %v; want [8A 9C]", p.ClassNames)
	}
	if !reflect.DeepEqual(p.Subjects, []string{"Math", "Art"}) {
		t.Errorf("Subjects = %v; want [Math Art]", p.Subjects)
	}
	if p.AttendancePercent == nil || *p.AttendancePercent != 88 {
		t.Errorf("AttendancePercent = %v; want 88", p.AttendancePercent)
	}
}
