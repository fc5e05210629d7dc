package models

type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelTopic NotificationChannel = "topic"
)

type NotificationStatus string

const (
	NotificationSent     NotificationStatus = "sent"
	NotificationFailed   NotificationStatus = "failed"
	NotificationDisabled NotificationStatus = "disabled"
	NotificationSkipped  NotificationStatus = "skipped"
)

type Notification struct {
	ID        string              `json:"id"`
	Channel   NotificationChannel `json:"channel"`
	Status    NotificationStatus  `json:"status"`
	MessageID string              `json:"messageId,omitempty"`
	Error     string              `json:"error,omitempty"`
	SentAt    string              `json:"sentAt,omitempty"`
}

type NotificationTemplate struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	HTMLBody string `json:"htmlBody,omitempty"`
}
