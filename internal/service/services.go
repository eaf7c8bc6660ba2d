package service

import (
	"github.com/hdngo/thesisdesk/internal/adapter"
	"github.com/hdngo/thesisdesk/internal/logger"
)

// Services bundles every entity service behind one constructor so the
// application wires the adapter exactly once.
type Services struct {
	Auth       *AuthService
	Students   *StudentService
	Lecturers  *LecturerService
	Groups     *GroupService
	Theses     *ThesisService
	Milestones *MilestoneService
	Checklists *ChecklistService
	Requests   *RequestService
	Admins     *AdminService
	Semesters  *SemesterService
}

// NewServices builds the full service set on top of one adapter.
func NewServices(a *adapter.Adapter, log *logger.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(a, log),
		Students:   NewStudentService(a),
		Lecturers:  NewLecturerService(a),
		Groups:     NewGroupService(a),
		Theses:     NewThesisService(a),
		Milestones: NewMilestoneService(a),
		Checklists: NewChecklistService(a),
		Requests:   NewRequestService(a),
		Admins:     NewAdminService(a),
		Semesters:  NewSemesterService(a),
	}
}
