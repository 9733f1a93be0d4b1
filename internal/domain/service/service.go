package service

import (
	"github.com/teamtrack/attendance-bot/internal/config"
	"github.com/teamtrack/attendance-bot/internal/domain/contract"
)

type Services struct {
	Attendance *attendanceService
	Closure    *closureService
	Sync       *syncService
	Overtime   *overtimePolicy
}

func New(dm contract.DataManager, slackClient contract.SlackClient, sheets contract.SheetAPI, cfg *config.Config) *Services {
	overtime := newOvertimePolicy(dm)

	return &Services{
		Attendance: newAttendance(dm, cfg),
		Closure:    newClosure(dm, slackClient, cfg),
		Sync:       newSync(dm, sheets, overtime, cfg),
		Overtime:   overtime,
	}
}
