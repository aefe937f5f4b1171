package services

import (
	"Henteklar/models"
	"context"
)

// AttendancePublisher pushes attendance events to live listeners.
type AttendancePublisher interface {
	PublishAttendance(event models.AttendanceEvent)
}

// GuardianNotifier tells a child's guardians about an attendance change.
type GuardianNotifier interface {
	NotifyGuardians(ctx context.Context, event models.AttendanceEvent) error
}
