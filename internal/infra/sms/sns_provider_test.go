package sms

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"sos/config"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	input *sns.PublishInput
	out   *sns.PublishOutput
	err   error
}

func (f *fakePublisher) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params

	return f.out, f.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSNSProvider_SendSMS(t *testing.T) {
	fake := &fakePublisher{out: &sns.PublishOutput{MessageId: aws.String("sns-123")}}
	provider := newSNSProvider(fake, &config.SNSConfig{Region: "ap-south-1"}, newTestLogger())

	id, err := provider.SendSMS(context.Background(), "+919876543210", "help")
	require.NoError(t, err)
	assert.Equal(t, "sns-123", id)

	require.NotNil(t, fake.input)
	assert.Equal(t, "+919876543210", aws.ToString(fake.input.PhoneNumber))
	assert.Equal(t, "help", aws.ToString(fake.input.Message))
	assert.Equal(t, "Transactional", aws.ToString(fake.input.MessageAttributes[attrSMSType].StringValue))
	assert.Equal(t, "SHEILD", aws.ToString(fake.input.MessageAttributes[attrSenderID].StringValue))
}

func TestSNSProvider_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want entity.FailureClass
	}{
		{"throttled", &smithy.GenericAPIError{Code: "Throttled", Message: "rate exceeded"}, entity.FailureQuotaExceeded},
		{"quota message", &smithy.GenericAPIError{Code: "KMSThrottling", Message: "Monthly SMS quota reached"}, entity.FailureQuotaExceeded},
		{"invalid number", &smithy.GenericAPIError{Code: "InvalidParameter", Message: "Invalid parameter: PhoneNumber"}, entity.FailureFatal},
		{"opted out", &smithy.GenericAPIError{Code: "OptedOut"}, entity.FailureFatal},
		{"bad credentials", &smithy.GenericAPIError{Code: "AuthorizationError"}, entity.FailureRetryable},
		{"deadline", context.DeadlineExceeded, entity.FailureRetryable},
		{"unknown", io.ErrUnexpectedEOF, entity.FailureRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newSNSProvider(&fakePublisher{err: tt.err}, &config.SNSConfig{Region: "ap-south-1"}, newTestLogger())

			_, err := provider.SendSMS(context.Background(), "+919876543210", "help")
			require.Error(t, err)

			var notifErr *domainerrors.NotificationError
			require.ErrorAs(t, err, &notifErr)
			assert.Equal(t, tt.want, notifErr.Class)
			assert.Equal(t, "sns", notifErr.Provider)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSNSProvider_LogsMisconfigurationAtErrorLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError bool
	}{
		{
			name: "missing credential chain",
			err: &smithy.OperationError{
				ServiceID:     "SNS",
				OperationName: "Publish",
				Err:           errors.New("failed to refresh cached credentials, no EC2 IMDS role found"),
			},
			wantError: true,
		},
		{name: "rejected credentials", err: &smithy.GenericAPIError{Code: "InvalidClientTokenId"}, wantError: true},
		{name: "throttled", err: &smithy.GenericAPIError{Code: "Throttled"}, wantError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			provider := newSNSProvider(&fakePublisher{err: tt.err}, &config.SNSConfig{Region: "ap-south-1"}, logger)

			_, err := provider.SendSMS(context.Background(), "+919876543210", "help")
			require.Error(t, err)

			assert.Equal(t, tt.wantError, strings.Contains(buf.String(), "level=ERROR"), buf.String())
		})
	}
}

func TestNewSNSProvider_RequiresRegion(t *testing.T) {
	_, err := NewSNSProvider(context.Background(), &config.SNSConfig{}, newTestLogger())
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}
