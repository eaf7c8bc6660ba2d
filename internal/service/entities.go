package service

import (
	"context"

	"github.com/hdngo/thesisdesk/internal/adapter"
	"github.com/hdngo/thesisdesk/models"
)

// StudentService manages student accounts. Students are enrolled per
// semester, so besides the plain CRUD it supports per-semester listing,
// batch import of enrollment sheets, and account toggling.
type StudentService struct {
	restService[models.Student]
}

func NewStudentService(a *adapter.Adapter) *StudentService {
	return &StudentService{restService[models.Student]{adapter: a, base: "/api/students"}}
}

// ListBySemester fetches the students enrolled in semesterID.
func (s *StudentService) ListBySemester(ctx context.Context, semesterID string) ([]models.Student, error) {
	return listBySemester[models.Student](ctx, s.adapter, s.base, semesterID)
}

// Toggle enables or disables the student account.
func (s *StudentService) Toggle(ctx context.Context, id string, active bool) (models.Student, error) {
	return toggleStatus[models.Student](ctx, s.adapter, s.base, id, active)
}

// LecturerService manages supervising lecturer accounts.
type LecturerService struct {
	restService[models.Lecturer]
}

func NewLecturerService(a *adapter.Adapter) *LecturerService {
	return &LecturerService{restService[models.Lecturer]{adapter: a, base: "/api/lecturers"}}
}

// Toggle enables or disables the lecturer account.
func (s *LecturerService) Toggle(ctx context.Context, id string, active bool) (models.Lecturer, error) {
	return toggleStatus[models.Lecturer](ctx, s.adapter, s.base, id, active)
}

// GroupService manages capstone groups. Groups only exist inside a
// semester, so there is no unscoped listing; fetches always go through
// ListBySemester.
type GroupService struct {
	restService[models.Group]
}

func NewGroupService(a *adapter.Adapter) *GroupService {
	return &GroupService{restService[models.Group]{adapter: a, base: "/api/groups"}}
}

// ListBySemester fetches the groups formed in semesterID. Outside the
// enrollment window the backend answers with a semester-closed conflict,
// surfaced as adapter.ErrSemesterClosed.
func (s *GroupService) ListBySemester(ctx context.Context, semesterID string) ([]models.Group, error) {
	return listBySemester[models.Group](ctx, s.adapter, s.base, semesterID)
}

// ThesisService manages thesis topics.
type ThesisService struct {
	restService[models.Thesis]
}

func NewThesisService(a *adapter.Adapter) *ThesisService {
	return &ThesisService{restService[models.Thesis]{adapter: a, base: "/api/theses"}}
}

// ListBySemester fetches the topics proposed for semesterID.
func (s *ThesisService) ListBySemester(ctx context.Context, semesterID string) ([]models.Thesis, error) {
	return listBySemester[models.Thesis](ctx, s.adapter, s.base, semesterID)
}

// MilestoneService manages scheduled deliverables.
type MilestoneService struct {
	restService[models.Milestone]
}

func NewMilestoneService(a *adapter.Adapter) *MilestoneService {
	return &MilestoneService{restService[models.Milestone]{adapter: a, base: "/api/milestones"}}
}

// ChecklistService manages review checklists.
type ChecklistService struct {
	restService[models.Checklist]
}

func NewChecklistService(a *adapter.Adapter) *ChecklistService {
	return &ChecklistService{restService[models.Checklist]{adapter: a, base: "/api/checklists"}}
}

// Toggle marks the checklist review as completed or reopens it.
func (s *ChecklistService) Toggle(ctx context.Context, id string, completed bool) (models.Checklist, error) {
	return toggleStatus[models.Checklist](ctx, s.adapter, s.base, id, completed)
}

// RequestService manages student workflow requests.
type RequestService struct {
	restService[models.Request]
}

func NewRequestService(a *adapter.Adapter) *RequestService {
	return &RequestService{restService[models.Request]{adapter: a, base: "/api/requests"}}
}

// AdminService manages administrator accounts.
type AdminService struct {
	restService[models.Admin]
}

func NewAdminService(a *adapter.Adapter) *AdminService {
	return &AdminService{restService[models.Admin]{adapter: a, base: "/api/admins"}}
}

// Toggle enables or disables the admin account.
func (s *AdminService) Toggle(ctx context.Context, id string, active bool) (models.Admin, error) {
	return toggleStatus[models.Admin](ctx, s.adapter, s.base, id, active)
}

// SemesterService manages capstone terms.
type SemesterService struct {
	restService[models.Semester]
}

func NewSemesterService(a *adapter.Adapter) *SemesterService {
	return &SemesterService{restService[models.Semester]{adapter: a, base: "/api/semesters"}}
}
