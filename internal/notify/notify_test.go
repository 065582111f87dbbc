package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "github.com/Kelvin-Wepo/Rafiki.ai/internal/common/errors"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
)

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{}, nil
}

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{}, nil
}

func TestSMSNotifier_Send(t *testing.T) {
	fake := &fakeSNS{}
	n := &SMSNotifier{
		client:   fake,
		senderID: "RAFIKI",
		logger:   logger.NewTestLogger(t),
	}

	err := n.Send(context.Background(), "0712345678", "your request has been received")
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "0712345678", *fake.input.PhoneNumber)
	assert.Equal(t, "your request has been received", *fake.input.Message)

	attr, ok := fake.input.MessageAttributes["AWS.SNS.SMS.SenderID"]
	require.True(t, ok)
	assert.Equal(t, "RAFIKI", *attr.StringValue)
}

func TestSMSNotifier_Send_NoSenderID(t *testing.T) {
	fake := &fakeSNS{}
	n := &SMSNotifier{
		client: fake,
		logger: logger.NewTestLogger(t),
	}

	require.NoError(t, n.Send(context.Background(), "0712345678", "hello"))
	assert.Empty(t, fake.input.MessageAttributes)
}

func TestSMSNotifier_Send_Error(t *testing.T) {
	fake := &fakeSNS{err: errors.New("throttled")}
	n := &SMSNotifier{
		client: fake,
		logger: logger.NewTestLogger(t),
	}

	err := n.Send(context.Background(), "0712345678", "hello")
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeNotificationSendFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestEmailNotifier_Send(t *testing.T) {
	fake := &fakeSES{}
	n := &EmailNotifier{
		client: fake,
		from:   "no-reply@rafiki.go.ke",
		logger: logger.NewTestLogger(t),
	}

	err := n.Send(context.Background(), "jane@example.com", "your request has been received")
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "no-reply@rafiki.go.ke", *fake.input.Source)
	assert.Equal(t, []string{"jane@example.com"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, "your request has been received", *fake.input.Message.Body.Text.Data)
}

func TestEmailNotifier_Send_Error(t *testing.T) {
	fake := &fakeSES{err: errors.New("mailbox unavailable")}
	n := &EmailNotifier{
		client: fake,
		from:   "no-reply@rafiki.go.ke",
		logger: logger.NewTestLogger(t),
	}

	err := n.Send(context.Background(), "jane@example.com", "hello")
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeNotificationSendFailed, stdErr.Code)
}

func TestNoopNotifier_Send(t *testing.T) {
	assert.NoError(t, NoopNotifier{}.Send(context.Background(), "anyone", "anything"))
}
