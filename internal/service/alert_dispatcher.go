package service

import (
	"context"
	"log/slog"
	"time"

	"sportapp/internal/domain"
)

type AlertDispatcher struct {
	sender AlertSender
	logger *slog.Logger
	now    func() time.Time
}

func NewAlertDispatcher(sender AlertSender, logger *slog.Logger) *AlertDispatcher {
	return &AlertDispatcher{
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

func (d *AlertDispatcher) WithClock(now func() time.Time) *AlertDispatcher {
	d.now = now
	return d
}

// Dispatch sends one message per (incident, user) pair. A failed send is
// logged and counted; it never stops the remaining sends.
func (d *AlertDispatcher) Dispatch(ctx context.Context, incidents []domain.AdverseIncident, matches []domain.IncidentMatch) domain.DispatchResult {
	var res domain.DispatchResult
	for _, m := range matches {
		if m.IncidentIndex < 0 || m.IncidentIndex >= len(incidents) {
			d.logger.Error("match references unknown incident", slog.Int("incident_index", m.IncidentIndex))
			continue
		}
		inc := incidents[m.IncidentIndex]
		for _, userID := range m.UserIDs {
			msg := domain.NewAdverseIncidentMessage(userID, inc.Description, d.now())
			if err := d.sender.Send(ctx, msg); err != nil {
				res.Failed++
				d.logger.Error("alert send failed",
					slog.String("user_id", userID),
					slog.Int("incident_index", m.IncidentIndex),
					slog.Any("error", err))
				continue
			}
			res.Notified++
			d.logger.Debug("alert sent", slog.String("user_id", userID), slog.Int("incident_index", m.IncidentIndex))
		}
	}
	return res
}
