package sendnotification

import (
	"context"
	"testing"
	"time"

	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/models"
	"placement-workers/internal/notify"
	"placement-workers/internal/placement"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockSES struct{ mock.Mock }

func (m *MockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

type MockSNS struct{ mock.Mock }

func (m *MockSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sns.PublishOutput), args.Error(1)
}

func createTestHandler(t *testing.T, cfg notify.Config, sesClient *MockSES, snsClient *MockSNS) (*Handler, *placement.Service) {
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	svc := placement.NewService(placement.NewMemoryStore())
	_, err := svc.StartSession(context.Background(), "s1")
	require.NoError(t, err)

	n := notify.NewNotifier(cfg, sesClient, snsClient, log)
	return NewHandler(&Config{Timeout: 5 * time.Second}, svc, n, log), svc
}

var allChannels = notify.Config{EmailEnabled: true, SMSEnabled: true, FromEmail: "placements@mba.edu"}

func TestHandler_Execute_InterviewSendsEmailAndSMS(t *testing.T) {
	sesClient, snsClient := new(MockSES), new(MockSNS)
	sesClient.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return in.Destination.ToAddresses[0] == "bhawna.vig@mba.edu"
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("m-1")}, nil)
	snsClient.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		return aws.ToString(in.PhoneNumber) == "+91 98765 43210"
	})).Return(&sns.PublishOutput{MessageId: aws.String("m-2")}, nil)

	h, _ := createTestHandler(t, allChannels, sesClient, snsClient)
	out, err := h.Execute(context.Background(), &Input{SessionID: "s1", ApplicationID: "a1"})
	require.NoError(t, err)

	assert.Equal(t, models.NotificationSent, out.Status)
	assert.True(t, out.HighPriority)
	assert.Equal(t, "a1", out.ApplicationID)
	assert.Len(t, out.Deliveries, 2)
	sesClient.AssertExpectations(t)
	snsClient.AssertExpectations(t)
}

func TestHandler_Execute_AppliedIsEmailOnly(t *testing.T) {
	sesClient, snsClient := new(MockSES), new(MockSNS)
	sesClient.On("SendEmail", mock.Anything, mock.Anything).
		Return(&ses.SendEmailOutput{MessageId: aws.String("m-1")}, nil)

	h, _ := createTestHandler(t, allChannels, sesClient, snsClient)
	out, err := h.Execute(context.Background(), &Input{SessionID: "s1", ApplicationID: "a2"})
	require.NoError(t, err)

	assert.False(t, out.HighPriority)
	require.Len(t, out.Deliveries, 1)
	assert.Equal(t, models.ChannelEmail, out.Deliveries[0].Channel)
	snsClient.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHandler_Execute_ChannelsDisabled(t *testing.T) {
	h, _ := createTestHandler(t, notify.Config{}, new(MockSES), new(MockSNS))

	out, err := h.Execute(context.Background(), &Input{SessionID: "s1", ApplicationID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationDisabled, out.Status)
	assert.Empty(t, out.Deliveries)
}

func TestHandler_Execute_SendFailureIsRetryable(t *testing.T) {
	sesClient := new(MockSES)
	sesClient.On("SendEmail", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	h, _ := createTestHandler(t, allChannels, sesClient, new(MockSNS))
	_, err := h.Execute(context.Background(), &Input{SessionID: "s1", ApplicationID: "a1"})
	require.Error(t, err)

	stdErr := errors.Normalize(err)
	assert.Equal(t, errors.ErrCodeNotificationSendFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Contains(t, stdErr.Details, "channel: email")
}

func TestHandler_Execute_LookupErrors(t *testing.T) {
	h, _ := createTestHandler(t, allChannels, new(MockSES), new(MockSNS))

	tests := []struct {
		name     string
		input    *Input
		wantCode errors.ErrorCode
	}{
		{"unknown session", &Input{SessionID: "s9", ApplicationID: "a1"}, errors.ErrCodeSessionNotFound},
		{"unknown application", &Input{SessionID: "s1", ApplicationID: "a9"}, errors.ErrCodeApplicationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.Normalize(err).Code)
		})
	}
}
