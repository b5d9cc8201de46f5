package notification

import (
	"embed"
	"log/slog"
)

//go:embed templates/*
var templateFiles embed.FS

func loadTemplate(filename string) string {
	content, err := templateFiles.ReadFile(filename)
	if err != nil {
		slog.Error("Error reading template file!", "err", err, "filename", filename)
		return ""
	}
	return string(content)
}

// NotificationManagerOption is a function that configures a NotificationManager
type NotificationManagerOption func(*NotificationManager) error

// WithSMTP adds an email notifier with the provided SMTP configuration
func WithSMTP(config SMTPConfig) NotificationManagerOption {
	return func(nm *NotificationManager) error {
		emailNotifier, err := NewEmailNotifier(config)
		if err != nil {
			return err
		}
		nm.RegisterNotifier(EmailSystem, emailNotifier)
		return nil
	}
}

// WithPhilSMS adds an SMS notifier with the provided PhilSMS configuration
func WithPhilSMS(config PhilSMSConfig) NotificationManagerOption {
	return func(nm *NotificationManager) error {
		nm.RegisterNotifier(SMSSystem, NewSMSNotifier(config))
		return nil
	}
}

// WithTwofaCodeEmailTemplate registers the 2FA passcode email template
func WithTwofaCodeEmailTemplate() NotificationManagerOption {
	return func(nm *NotificationManager) error {
		return nm.RegisterNotification(TwofaCodeNoticeEmail, EmailSystem, NoticeTemplate{
			Subject: "Your sign-in code",
			Text:    "Your 2FA code is: {{.TwofaPasscode}}\nExpires in {{.ExpiryMinutes}} minutes.",
			Html:    loadTemplate("templates/email/twofa_code_notice.html"),
		})
	}
}

// WithTwofaCodeSmsTemplate registers the 2FA passcode SMS template
func WithTwofaCodeSmsTemplate() NotificationManagerOption {
	return func(nm *NotificationManager) error {
		return nm.RegisterNotification(TwofaCodeNoticeSms, SMSSystem, NoticeTemplate{
			Subject: "Your sign-in code",
			Text:    "Your 2FA code is: {{.TwofaPasscode}}. Expires in {{.ExpiryMinutes}} minutes.",
		})
	}
}

// WithBookingUpdateSmsTemplate registers the booking status SMS template
func WithBookingUpdateSmsTemplate() NotificationManagerOption {
	return func(nm *NotificationManager) error {
		return nm.RegisterNotification(BookingUpdateNoticeSms, SMSSystem, NoticeTemplate{
			Subject: "Booking update",
			Text:    "Hi {{.FullName}}, your booking for {{.Destination}} is now {{.Status}}.",
		})
	}
}

// WithDefaultTemplates registers all default notice templates
func WithDefaultTemplates() NotificationManagerOption {
	return func(nm *NotificationManager) error {
		options := []NotificationManagerOption{
			WithTwofaCodeEmailTemplate(),
			WithTwofaCodeSmsTemplate(),
			WithBookingUpdateSmsTemplate(),
		}

		for _, opt := range options {
			if err := opt(nm); err != nil {
				return err
			}
		}

		return nil
	}
}

// NewNotificationManagerWithOptions creates a new notification manager with the provided options
func NewNotificationManagerWithOptions(opts ...NotificationManagerOption) (*NotificationManager, error) {
	notificationManager := NewNotificationManager()

	for _, opt := range opts {
		if err := opt(notificationManager); err != nil {
			return nil, err
		}
	}

	return notificationManager, nil
}
