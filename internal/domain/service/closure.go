package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/teamtrack/attendance-bot/internal/config"
	"github.com/teamtrack/attendance-bot/internal/domain"
	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
	"github.com/teamtrack/attendance-bot/pkg/timeutil"
)

type closureService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	cfg         *config.Config
	loc         *time.Location
}

func newClosure(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config) *closureService {
	return &closureService{
		dm:          dm,
		slackClient: slackClient,
		cfg:         cfg,
		loc:         cfg.Location(),
	}
}

// EvaluateClosure re-derives "should the day close now" from persisted state.
// It is safe to run arbitrarily often: the daily report marker makes a closed
// date a permanent no-op, and a failed delivery leaves no marker so the next
// tick retries.
func (s *closureService) EvaluateClosure(ctx context.Context, now time.Time) error {
	now = now.In(s.loc)

	if now.Hour() < s.cfg.ReportHour || now.Weekday() == time.Sunday {
		return nil
	}

	date := now.Format(domain.DateLayout)

	sent, err := s.dm.Report().Exists(date)
	if err != nil {
		return fmt.Errorf("failed to check report marker for %s: %w", date, err)
	}
	if sent {
		return nil
	}

	open, err := s.dm.Attendance().CountOpenSessions(date)
	if err != nil {
		return fmt.Errorf("failed to count open sessions for %s: %w", date, err)
	}
	if open > 0 {
		log.Printf("Closure: %d open sessions on %s, deferring", open, date)
		return nil
	}

	total, err := s.dm.Attendance().CountDay(date)
	if err != nil {
		return fmt.Errorf("failed to count attendance for %s: %w", date, err)
	}
	if total == 0 {
		// An empty day never closes.
		return nil
	}

	rows, err := s.dm.Attendance().ListDay(date)
	if err != nil {
		return fmt.Errorf("failed to list attendance for %s: %w", date, err)
	}

	message := renderDailyReport(date, rows)
	_, _, err = s.slackClient.PostMessage(
		s.cfg.ReportChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		// No marker on failure: the next tick retries delivery.
		return fmt.Errorf("failed to deliver daily report for %s: %w", date, err)
	}

	if err := s.dm.Report().MarkSent(date); err != nil {
		// Worst case here is one duplicate send on the next evaluation,
		// never a missed one.
		return fmt.Errorf("report for %s sent but marker write failed: %w", date, err)
	}

	log.Printf("Closure: daily report for %s sent", date)
	return nil
}

func renderDailyReport(date string, rows []*entity.ReportRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Reporte Diario de Asistencia — %s*\n", date)
	b.WriteString("Todos los practicantes del turno han registrado su salida.\n\n")

	for _, row := range rows {
		fmt.Fprintf(&b, "• *%s*: %s - %s (%s)\n",
			row.FullName,
			clockOrDash(row.EntryTime),
			clockOrDash(row.ExitTime),
			row.Status,
		)
	}

	b.WriteString("\n_Cierre de jornada automático_")
	return b.String()
}

func clockOrDash(clock *string) string {
	if clock == nil || *clock == "" {
		return "-"
	}
	return timeutil.NormalizeDuration(*clock)
}
