package notification

import (
	"fmt"
	"log/slog"
)

// NotificationManager routes notices to registered notifiers using the
// templates registered per notice type and system.
type NotificationManager struct {
	notifiers map[NotificationSystem]Notifier
	registry  map[NoticeType]map[NotificationSystem]NoticeTemplate
}

// NewNotificationManager creates and returns a new NotificationManager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{
		notifiers: make(map[NotificationSystem]Notifier),
		registry:  make(map[NoticeType]map[NotificationSystem]NoticeTemplate),
	}
}

// RegisterNotifier registers a notifier for a specific system.
func (nm *NotificationManager) RegisterNotifier(system NotificationSystem, notifier Notifier) {
	nm.notifiers[system] = notifier
}

// RegisterNotification adds a notice template to the registry.
func (nm *NotificationManager) RegisterNotification(noticeType NoticeType, system NotificationSystem, template NoticeTemplate) error {
	if noticeType == "" || system == "" {
		return fmt.Errorf("invalid input: notice type and system cannot be empty")
	}

	if _, exists := nm.registry[noticeType]; !exists {
		nm.registry[noticeType] = make(map[NotificationSystem]NoticeTemplate)
	}

	nm.registry[noticeType][system] = template
	return nil
}

// Send delivers a notice over every system the notice type is registered
// for. Delivery is attempted on all systems; the first error is returned.
func (nm *NotificationManager) Send(noticeType NoticeType, data NotificationData) error {
	systemTemplates, exists := nm.registry[noticeType]
	if !exists {
		return fmt.Errorf("no templates registered for notice type: %s", noticeType)
	}

	var firstErr error
	sent := 0
	for system, template := range systemTemplates {
		notifier, ok := nm.notifiers[system]
		if !ok {
			continue
		}
		if err := notifier.Send(noticeType, data, template); err != nil {
			slog.Error("Failed to send notice", "type", noticeType, "system", system, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sent++
	}

	if firstErr != nil {
		return firstErr
	}
	if sent == 0 {
		return fmt.Errorf("no notifier registered for notice type: %s", noticeType)
	}
	return nil
}
