// Package notify delivers workflow confirmation messages over SMS and
// email. Workflows only carry an sms_confirmation flag; actual delivery
// happens here, outside the pipeline, and only when a channel is enabled
// in config. Nothing in the pipeline packages depends on this package.
package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/config"
	stderrors "github.com/Kelvin-Wepo/Rafiki.ai/internal/common/errors"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
)

// Notifier sends a confirmation message to a recipient address (a phone
// number for SMS, an email address for email).
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}

// Channels groups the configured delivery channels. A disabled channel
// holds a NoopNotifier so callers never nil-check.
type Channels struct {
	SMS   Notifier
	Email Notifier
}

// NoopNotifier is used when a channel is disabled in config.
type NoopNotifier struct{}

func (NoopNotifier) Send(ctx context.Context, recipient, message string) error {
	return nil
}

// snsPublisher is the slice of the SNS client the SMS channel uses.
type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMSNotifier sends confirmation SMS via SNS.
type SMSNotifier struct {
	client   snsPublisher
	senderID string
	logger   logger.Logger
}

func NewSMSNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*SMSNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, err
	}
	return &SMSNotifier{
		client:   sns.NewFromConfig(awsCfg),
		senderID: cfg.SMS.SenderID,
		logger:   log.WithFields(map[string]interface{}{"component": "sms-notifier"}),
	}, nil
}

func (n *SMSNotifier) Send(ctx context.Context, recipient, message string) error {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(recipient),
		Message:     aws.String(message),
	}
	if n.senderID != "" {
		input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.senderID),
			},
		}
	}

	if _, err := n.client.Publish(ctx, input); err != nil {
		n.logger.Error("sms send failed", map[string]interface{}{
			"error": err.Error(),
		})
		return stderrors.NewNotificationSendFailedError("sms", err)
	}
	return nil
}

// sesSender is the slice of the SES client the email channel uses.
type sesSender interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailNotifier sends confirmation email via SES.
type EmailNotifier struct {
	client sesSender
	from   string
	logger logger.Logger
}

func NewEmailNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*EmailNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, err
	}
	return &EmailNotifier{
		client: ses.NewFromConfig(awsCfg),
		from:   cfg.Email.FromEmail,
		logger: log.WithFields(map[string]interface{}{"component": "email-notifier"}),
	}, nil
}

func (n *EmailNotifier) Send(ctx context.Context, recipient, message string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(n.from),
		Destination: &sestypes.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String("Rafiki service confirmation")},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(message)},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		n.logger.Error("email send failed", map[string]interface{}{
			"error": err.Error(),
		})
		return stderrors.NewNotificationSendFailedError("email", err)
	}
	return nil
}
