// Package sms contains the SMS providers used by the notification gateway.
package sms

import (
	"context"
	"log/slog"
	"strings"

	"sos/config"
	"sos/internal/domain/constants"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
	"sos/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/smithy-go"
)

const (
	attrSMSType  = "AWS.SNS.SMS.SMSType"
	attrSenderID = "AWS.SNS.SMS.SenderID"

	defaultSMSType = "Transactional"
)

// snsPublisher is the subset of the SNS client the provider needs.
type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsProvider struct {
	client   snsPublisher
	senderID string
	smsType  string
	logger   *slog.Logger
}

// NewSNSProvider creates an SMS provider backed by Amazon SNS direct publish.
// Static credentials are used when configured, the default AWS chain otherwise.
func NewSNSProvider(ctx context.Context, cfg *config.SNSConfig, logger *slog.Logger) (service.SMSProvider, error) {
	if cfg == nil || cfg.Region == "" {
		return nil, domainerrors.NewConfigurationError("sns region is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return newSNSProvider(sns.NewFromConfig(awsCfg), cfg, logger), nil
}

func newSNSProvider(client snsPublisher, cfg *config.SNSConfig, logger *slog.Logger) *snsProvider {
	senderID := cfg.SenderID
	if senderID == "" {
		senderID = config.DefaultSenderID
	}
	smsType := cfg.SMSType
	if smsType == "" {
		smsType = defaultSMSType
	}

	return &snsProvider{
		client:   client,
		senderID: senderID,
		smsType:  smsType,
		logger:   logger,
	}
}

func (p *snsProvider) Name() string {
	return constants.SMSProviderSNS
}

// SendSMS publishes the message directly to the phone number.
func (p *snsProvider) SendSMS(ctx context.Context, phone, body string) (string, error) {
	out, err := p.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			attrSMSType: {
				DataType:    aws.String("String"),
				StringValue: aws.String(p.smsType),
			},
			attrSenderID: {
				DataType:    aws.String("String"),
				StringValue: aws.String(p.senderID),
			},
		},
	})
	if err != nil {
		return "", p.classify(err)
	}

	return aws.ToString(out.MessageId), nil
}

// classify maps SNS failures onto failure classes.
func (p *snsProvider) classify(err error) error {
	if errors.IsTimeout(err) {
		return domainerrors.NewNotificationError(entity.FailureRetryable, p.Name(), "request timed out", err)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		// Never reached SNS: credential chain, endpoint or transport failure.
		p.logger.Error("SNS request failed before reaching the service, check the SMS provider credentials and endpoint",
			slog.Any("error", err),
		)

		return domainerrors.NewNotificationError(entity.FailureRetryable, p.Name(), err.Error(), err)
	}

	code := apiErr.ErrorCode()
	message := apiErr.ErrorMessage()
	reason := code
	if message != "" {
		reason = code + ": " + message
	}

	switch {
	case code == "Throttled" || code == "ThrottlingException" || strings.Contains(strings.ToLower(message), "quota"):
		return domainerrors.NewNotificationError(entity.FailureQuotaExceeded, p.Name(), reason, err)
	case code == "OptedOut" || strings.HasPrefix(code, "InvalidParameter"):
		return domainerrors.NewNotificationError(entity.FailureFatal, p.Name(), reason, err)
	case code == "AuthorizationError" || code == "InvalidClientTokenId":
		p.logger.Error("SNS rejected credentials, check the SMS provider configuration",
			slog.String("code", code),
		)

		return domainerrors.NewNotificationError(entity.FailureRetryable, p.Name(), reason, err)
	default:
		return domainerrors.NewNotificationError(entity.FailureRetryable, p.Name(), reason, err)
	}
}
