// Package notify tells students about application status changes over email
// and SMS, and publishes deadline digests to an SNS topic.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"placement-workers/internal/catalog"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/common/metrics"
	"placement-workers/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var (
	ErrNoTemplate = errors.New("no template for status")
	ErrSendFailed = errors.New("notification send failed")
)

type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Config struct {
	EmailEnabled  bool
	SMSEnabled    bool
	FromEmail     string
	RatePerSecond float64
}

type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Result struct {
	NotificationID string                    `json:"notificationId"`
	Status         models.NotificationStatus `json:"status"`
	SentAt         string                    `json:"sentAt"`
	Deliveries     []models.Notification     `json:"deliveries,omitempty"`
}

type Notifier struct {
	cfg     Config
	ses     SESAPI
	sns     SNSAPI
	limiter *rate.Limiter
	logger  logger.Logger
	now     func() time.Time
}

func NewNotifier(cfg Config, sesClient SESAPI, snsClient SNSAPI, log logger.Logger) *Notifier {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	return &Notifier{
		cfg:     cfg,
		ses:     sesClient,
		sns:     snsClient,
		limiter: rate.NewLimiter(limit, 1),
		logger:  log,
		now:     time.Now,
	}
}

// HighPriority reports whether status is worth an SMS as well as an email.
func HighPriority(status models.ApplicationStatus) bool {
	return status == models.StatusInterview || status == models.StatusSelected
}

// NotifyStatus sends the template for app.Status to to. A channel that is
// turned off or has no address is skipped; if nothing is sent the result is
// disabled. A failed delivery returns a failed result together with an error
// wrapping ErrSendFailed.
func (n *Notifier) NotifyStatus(ctx context.Context, to Recipient, app models.Application) (*Result, error) {
	tmpl, ok := Template(app.Status)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoTemplate, app.Status)
	}

	data := map[string]interface{}{
		"studentName":  to.Name,
		"employerName": app.EmployerName,
		"role":         app.Role,
		"appliedDate":  app.AppliedDate,
		"status":       app.Status.Label(),
	}
	subject := Render(tmpl.Subject, data)
	body := Render(tmpl.Body, data)

	res := &Result{
		NotificationID: uuid.NewString(),
		Status:         models.NotificationDisabled,
		SentAt:         n.now().UTC().Format(time.RFC3339),
	}

	if n.cfg.EmailEnabled && to.Email != "" {
		d, err := n.sendEmail(ctx, to.Email, subject, body)
		res.Deliveries = append(res.Deliveries, d)
		if err != nil {
			res.Status = models.NotificationFailed
			return res, err
		}
	}

	if n.cfg.SMSEnabled && to.Phone != "" && HighPriority(app.Status) {
		d, err := n.sendSMS(ctx, to.Phone, body)
		res.Deliveries = append(res.Deliveries, d)
		if err != nil {
			res.Status = models.NotificationFailed
			return res, err
		}
	}

	if len(res.Deliveries) > 0 {
		res.Status = models.NotificationSent
	}
	return res, nil
}

func (n *Notifier) sendEmail(ctx context.Context, to, subject, body string) (models.Notification, error) {
	d := models.Notification{ID: uuid.NewString(), Channel: models.ChannelEmail}

	if err := n.limiter.Wait(ctx); err != nil {
		return n.failed(d, err)
	}

	out, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.cfg.FromEmail),
	})
	if err != nil {
		return n.failed(d, err)
	}
	return n.sent(d, aws.ToString(out.MessageId)), nil
}

func (n *Notifier) sendSMS(ctx context.Context, phone, message string) (models.Notification, error) {
	d := models.Notification{ID: uuid.NewString(), Channel: models.ChannelSMS}

	out, err := n.sns.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
	})
	if err != nil {
		return n.failed(d, err)
	}
	return n.sent(d, aws.ToString(out.MessageId)), nil
}

// PublishDigest posts the upcoming deadlines to topicARN. An empty list
// publishes nothing and reports skipped.
func (n *Notifier) PublishDigest(ctx context.Context, topicARN string, deadlines []catalog.Deadline) (*Result, error) {
	res := &Result{
		NotificationID: uuid.NewString(),
		Status:         models.NotificationSkipped,
		SentAt:         n.now().UTC().Format(time.RFC3339),
	}
	if len(deadlines) == 0 {
		return res, nil
	}

	d := models.Notification{ID: uuid.NewString(), Channel: models.ChannelTopic}
	out, err := n.sns.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(fmt.Sprintf("%d placement deadlines coming up", len(deadlines))),
		Message:  aws.String(DigestMessage(deadlines)),
	})
	if err != nil {
		d, err = n.failed(d, err)
		res.Deliveries = []models.Notification{d}
		res.Status = models.NotificationFailed
		return res, err
	}

	res.Deliveries = []models.Notification{n.sent(d, aws.ToString(out.MessageId))}
	res.Status = models.NotificationSent
	return res, nil
}

// DigestMessage lists each deadline on its own line.
func DigestMessage(deadlines []catalog.Deadline) string {
	var b strings.Builder
	b.WriteString("Upcoming placement deadlines:\n")
	for _, d := range deadlines {
		unit := "days"
		if d.DaysLeft == 1 {
			unit = "day"
		}
		fmt.Fprintf(&b, "• %s: %s, %d %s left (%s)\n", d.Name, d.Role, d.DaysLeft, unit, d.Deadline)
	}
	return b.String()
}

func (n *Notifier) sent(d models.Notification, messageID string) models.Notification {
	d.Status = models.NotificationSent
	d.MessageID = messageID
	d.SentAt = n.now().UTC().Format(time.RFC3339)
	metrics.NotificationsSent.WithLabelValues(string(d.Channel), string(d.Status)).Inc()
	return d
}

func (n *Notifier) failed(d models.Notification, err error) (models.Notification, error) {
	d.Status = models.NotificationFailed
	d.Error = err.Error()
	metrics.NotificationsSent.WithLabelValues(string(d.Channel), string(d.Status)).Inc()
	n.logger.Error("notification delivery failed", map[string]interface{}{
		"channel": d.Channel,
		"error":   err.Error(),
	})
	return d, fmt.Errorf("%w via %s: %v", ErrSendFailed, d.Channel, err)
}
