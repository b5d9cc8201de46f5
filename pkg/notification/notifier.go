package notification

// NotificationSystem represents a delivery channel (e.g., email, SMS).
type NotificationSystem string

// NoticeType identifies a registered notice (e.g., "twofa_code_email").
type NoticeType string

const (
	EmailSystem NotificationSystem = "email"
	SMSSystem   NotificationSystem = "sms"
)

const (
	// TwofaCodeNoticeEmail delivers a two-factor passcode by email
	TwofaCodeNoticeEmail NoticeType = "twofa_code_email"
	// TwofaCodeNoticeSms delivers a two-factor passcode by SMS
	TwofaCodeNoticeSms NoticeType = "twofa_code_sms"
	// BookingUpdateNoticeSms notifies a customer of a booking status change
	BookingUpdateNoticeSms NoticeType = "booking_update_sms"
)

// NoticeTemplate holds the renderable content registered for a notice.
type NoticeTemplate struct {
	Subject string
	Text    string
	Html    string
}

// NotificationData carries the per-send values.
type NotificationData struct {
	To      string            // Recipient identifier (email address or phone number)
	Subject string            // Optional: overrides the template subject
	Body    string            // Optional: pre-rendered content
	Data    map[string]string // Template data
}

// Notifier delivers a rendered notice over one system.
type Notifier interface {
	Send(noticeType NoticeType, data NotificationData, template NoticeTemplate) error
}
