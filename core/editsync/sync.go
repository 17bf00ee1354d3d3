// Package editsync keeps the admin edit selections (class, subjects) in step
// with the roster and the two lookup lists.
//
// The selection is recomputed, never incrementally patched, whenever the
// editing target, the roster or a lookup changes. Retargeting therefore
// discards unsaved subject toggles; that loss is the documented contract of
// the edit panel, not an accident.
package editsync

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/lookup"
)

var ErrNoTarget = errors.New("no employee loaded into the edit form")

type (
	// Selection is the derived edit-form state for the current target.
	// ClassText and SubjectsText are read-only renderings; once ids are in
	// play they are always derived from the id selections and the lookups.
	Selection struct {
		ClassID      string
		SubjectIDs   map[string]bool
		ClassText    string
		SubjectsText string
	}

	// Synchronizer owns the selection. It reads the roster and the lookup
	// cache but only ever writes the roster through an explicit merge after
	// a successful save.
	Synchronizer struct {
		roster  *directory.Service
		lookups *lookup.Cache
		editing string
		sel     Selection
	}
)

func NewSynchronizer(roster *directory.Service, lookups *lookup.Cache) *Synchronizer {
	return &Synchronizer{roster: roster, lookups: lookups, sel: blankSelection()}
}

func blankSelection() Selection {
	return Selection{SubjectIDs: map[string]bool{}}
}

// Resolve recomputes the selection for one employee against the given lookup
// snapshot. Pure function.
//
// Employee found but lookups still loading: the text fields come straight
// from the employee's own free-text class/subject names and no ids are set.
// Lookups loaded: the class id is found by exact name match (empty when none)
// and the subject ids are every lookup subject whose name appears in the
// employee's subject list, an order-independent membership test.
func Resolve(emp directory.Employee, lks lookup.Snapshot) Selection {
	sel := blankSelection()

	if lks.ClassesReady {
		for _, it := range lks.Classes {
			if it.Name == emp.ClassName {
				sel.ClassID = it.ID
				break
			}
		}
	}
	sel.ClassText = emp.ClassName
	if name := lookup.NameOf(lks.Classes, sel.ClassID); name != "" {
		sel.ClassText = name
	}

	if !lks.SubjectsReady {
		sel.SubjectsText = strings.Join(emp.Subjects, ", ")
		return sel
	}
	for _, it := range lks.Subjects {
		if containsName(emp.Subjects, it.Name) {
			sel.SubjectIDs[it.ID] = true
		}
	}
	sel.SubjectsText = renderSubjects(sel.SubjectIDs, lks.Subjects)
	return sel
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// renderSubjects joins the names of the selected subjects in lookup order.
func renderSubjects(selected map[string]bool, subjects []lookup.Item) string {
	names := make([]string, 0, len(selected))
	for _, it := range subjects {
		if selected[it.ID] {
			names = append(names, it.Name)
		}
	}
	return strings.Join(names, ", ")
}

// SetTarget loads an employee into the edit form and recomputes the selection.
func (s *Synchronizer) SetTarget(id string) {
	s.editing = id
	s.Recompute()
}

// Recompute rebuilds the selection from the latest roster and lookup state.
// A missing target leaves the selection blank.
func (s *Synchronizer) Recompute() {
	emp, ok := s.roster.Find(s.editing)
	if !ok {
		s.sel = blankSelection()
		return
	}
	s.sel = Resolve(emp, s.lookups.Snapshot())
}

func (s *Synchronizer) EditingID() string    { return s.editing }
func (s *Synchronizer) Selection() Selection { return s.sel }

// ToggleSubject adds or removes one subject id. Set semantics: checking an
// already-selected id or unchecking an absent one is a no-op.
func (s *Synchronizer) ToggleSubject(id string, checked bool) {
	if checked {
		s.sel.SubjectIDs[id] = true
	} else {
		delete(s.sel.SubjectIDs, id)
	}
	s.sel.SubjectsText = renderSubjects(s.sel.SubjectIDs, s.lookups.Subjects().Items)
}

// SelectClass picks a class by id; "" clears the choice.
func (s *Synchronizer) SelectClass(id string) {
	s.sel.ClassID = id
	s.sel.ClassText = lookup.NameOf(s.lookups.Classes().Items, id)
}

// CommitInput builds the update request for the current target: one
// (classID, subjectID) pair per selected subject, all sharing the one
// selected class, with the employee's name, email and role unchanged.
// ErrNoTarget when nothing is loaded into the form.
func (s *Synchronizer) CommitInput() (string, directory.UpdateInput, error) {
	if s.editing == "" {
		return "", directory.UpdateInput{}, ErrNoTarget
	}
	emp, ok := s.roster.Find(s.editing)
	if !ok {
		return "", directory.UpdateInput{}, ErrNoTarget
	}

	subjects := s.lookups.Subjects().Items
	pairs := make([]directory.SubjectAssignment, 0, len(s.sel.SubjectIDs))
	for _, it := range subjects {
		if s.sel.SubjectIDs[it.ID] {
			pairs = append(pairs, directory.SubjectAssignment{ClassID: s.sel.ClassID, SubjectID: it.ID})
		}
	}

	input := directory.UpdateInput{
		Name:               emp.Name,
		Email:              emp.Email,
		Role:               emp.Role,
		SubjectAssignments: pairs,
		DeleteUser:         false,
	}
	return s.editing, input, nil
}

// ApplyCommit folds a successful save response back into the roster and
// recomputes the selection (refreshing both text renderings) from the
// merged record.
func (s *Synchronizer) ApplyCommit(id string, updated directory.RawEmployee) {
	s.roster.Merge(id, updated)
	s.Recompute()
}

// CommitEdit runs the full save round-trip synchronously. On failure the
// roster and the selection are left unchanged; the error is returned for the
// caller to surface. Interactive callers split this into CommitInput, their
// own request, and ApplyCommit so state transitions stay on the event loop,
// and own the single-save-in-flight flag.
func (s *Synchronizer) CommitEdit(ctx context.Context) error {
	id, input, err := s.CommitInput()
	if err != nil {
		return err
	}
	updated, err := s.roster.SubmitUpdate(ctx, id, input)
	if err != nil {
		return err
	}
	s.ApplyCommit(id, updated)
	return nil
}

// Reset clears the target and selection; used on sign-out.
func (s *Synchronizer) Reset() {
	s.editing = ""
	s.sel = blankSelection()
}
