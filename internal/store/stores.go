package store

import (
	"context"
	"errors"
	"strings"

	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/notify"
	"github.com/hdngo/thesisdesk/internal/service"
	"github.com/hdngo/thesisdesk/models"
)

// Stores owns one store per entity. It is created once at startup and
// reset as a unit on logout.
type Stores struct {
	Students   *Store[models.Student]
	Lecturers  *Store[models.Lecturer]
	Groups     *Store[models.Group]
	Theses     *Store[models.Thesis]
	Milestones *Store[models.Milestone]
	Checklists *Store[models.Checklist]
	Requests   *Store[models.Request]
	Admins     *Store[models.Admin]
	Semesters  *Store[models.Semester]
}

// NewStores builds the full store set over the given services. Each
// store only receives bindings for the operations its entity supports.
func NewStores(svcs *service.Services, notifier notify.Notifier, log *logger.Logger) *Stores {
	return &Stores{
		Students: New[models.Student]("student", Bindings[models.Student]{
			List:           svcs.Students.List,
			ListBySemester: svcs.Students.ListBySemester,
			Create:         svcs.Students.Create,
			CreateMany:     svcs.Students.CreateMany,
			Update:         svcs.Students.Update,
			Delete:         svcs.Students.Delete,
			Toggle:         svcs.Students.Toggle,
		}, WithMatcher(matchStudent), WithNotifier[models.Student](notifier), WithLogger[models.Student](log)),

		Lecturers: New[models.Lecturer]("lecturer", Bindings[models.Lecturer]{
			List:   svcs.Lecturers.List,
			Create: svcs.Lecturers.Create,
			Update: svcs.Lecturers.Update,
			Delete: svcs.Lecturers.Delete,
			Toggle: svcs.Lecturers.Toggle,
		}, WithMatcher(matchLecturer), WithNotifier[models.Lecturer](notifier), WithLogger[models.Lecturer](log)),

		Groups: New[models.Group]("group", Bindings[models.Group]{
			ListBySemester: svcs.Groups.ListBySemester,
			Create:         svcs.Groups.Create,
			Update:         svcs.Groups.Update,
			Delete:         svcs.Groups.Delete,
		}, WithMatcher(matchGroup), WithNotifier[models.Group](notifier), WithLogger[models.Group](log)),

		Theses: New[models.Thesis]("thesis", Bindings[models.Thesis]{
			List:           svcs.Theses.List,
			ListBySemester: svcs.Theses.ListBySemester,
			Create:         svcs.Theses.Create,
			Update:         svcs.Theses.Update,
			Delete:         svcs.Theses.Delete,
		}, WithMatcher(matchThesis), WithNotifier[models.Thesis](notifier), WithLogger[models.Thesis](log)),

		Milestones: New[models.Milestone]("milestone", Bindings[models.Milestone]{
			List:   svcs.Milestones.List,
			Create: svcs.Milestones.Create,
			Update: svcs.Milestones.Update,
			Delete: svcs.Milestones.Delete,
		}, WithMatcher(matchMilestone), WithNotifier[models.Milestone](notifier), WithLogger[models.Milestone](log)),

		Checklists: New[models.Checklist]("checklist", Bindings[models.Checklist]{
			List:   svcs.Checklists.List,
			Create: svcs.Checklists.Create,
			Update: svcs.Checklists.Update,
			Delete: svcs.Checklists.Delete,
			Toggle: svcs.Checklists.Toggle,
		}, WithMatcher(matchChecklist), WithNotifier[models.Checklist](notifier), WithLogger[models.Checklist](log)),

		Requests: New[models.Request]("request", Bindings[models.Request]{
			List:   svcs.Requests.List,
			Update: svcs.Requests.Update,
			Delete: svcs.Requests.Delete,
		}, WithNotifier[models.Request](notifier), WithLogger[models.Request](log)),

		Admins: New[models.Admin]("admin", Bindings[models.Admin]{
			List:   svcs.Admins.List,
			Create: svcs.Admins.Create,
			Update: svcs.Admins.Update,
			Delete: svcs.Admins.Delete,
			Toggle: svcs.Admins.Toggle,
		}, WithMatcher(matchAdmin), WithNotifier[models.Admin](notifier), WithLogger[models.Admin](log)),

		Semesters: New[models.Semester]("semester", Bindings[models.Semester]{
			List:   svcs.Semesters.List,
			Create: svcs.Semesters.Create,
			Update: svcs.Semesters.Update,
			Delete: svcs.Semesters.Delete,
		}, WithMatcher(matchSemester), WithNotifier[models.Semester](notifier), WithLogger[models.Semester](log)),
	}
}

// Reset drops every cached collection. Called on logout so the next
// account starts from a clean slate.
func (s *Stores) Reset() {
	s.Students.Reset()
	s.Lecturers.Reset()
	s.Groups.Reset()
	s.Theses.Reset()
	s.Milestones.Reset()
	s.Checklists.Reset()
	s.Requests.Reset()
	s.Admins.Reset()
	s.Semesters.Reset()
}

// RefreshAll refetches every store that supports a full listing. Errors
// are collected rather than short-circuiting so one failing entity does
// not starve the rest.
func (s *Stores) RefreshAll(ctx context.Context) error {
	return errors.Join(
		s.Students.FetchAll(ctx),
		s.Lecturers.FetchAll(ctx),
		s.Theses.FetchAll(ctx),
		s.Milestones.FetchAll(ctx),
		s.Checklists.FetchAll(ctx),
		s.Requests.FetchAll(ctx),
		s.Admins.FetchAll(ctx),
		s.Semesters.FetchAll(ctx),
	)
}

func fold(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchStudent(s models.Student, q string) bool {
	return fold(q, s.StudentCode, s.FullName, s.Email, s.Major)
}

func matchLecturer(l models.Lecturer, q string) bool {
	return fold(q, l.LecturerCode, l.FullName, l.Email, l.Department)
}

func matchGroup(g models.Group, q string) bool {
	return fold(q, g.Name, string(g.Status))
}

func matchThesis(t models.Thesis, q string) bool {
	return fold(q, t.Title, t.Description, string(t.Status))
}

func matchMilestone(m models.Milestone, q string) bool {
	return fold(q, m.Title, string(m.Status))
}

func matchChecklist(c models.Checklist, q string) bool {
	return fold(q, c.Title)
}

func matchAdmin(a models.Admin, q string) bool {
	return fold(q, a.Username, a.Email, a.Role)
}

func matchSemester(s models.Semester, q string) bool {
	return fold(q, s.Name, string(s.Status))
}
