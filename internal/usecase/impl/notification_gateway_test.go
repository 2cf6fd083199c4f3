package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
	mockSvc "sos/internal/mocks/service"
	"sos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGateway(t *testing.T) (usecase.NotificationUsecase, *mockSvc.MockSMSProvider, *mockSvc.MockSMSProvider) {
	t.Helper()

	primary := mockSvc.NewMockSMSProvider(t)
	fallback := mockSvc.NewMockSMSProvider(t)
	primary.EXPECT().Name().Return("sns").Maybe()
	fallback.EXPECT().Name().Return("mock").Maybe()

	gateway, err := NewNotificationGateway(NotificationGatewayParams{
		Config:    newTestConfig(),
		Providers: []service.SMSProvider{primary, fallback},
		Clock:     newFakeClock(),
		Logger:    newTestLogger(),
	})
	require.NoError(t, err)

	return gateway, primary, fallback
}

func TestNotificationGateway_PrimarySucceeds(t *testing.T) {
	gateway, primary, fallback := createTestGateway(t)

	primary.EXPECT().SendSMS(mock.Anything, "+919876543210", mock.Anything).Return("sns-1", nil).Once()

	outcome := gateway.Send(context.Background(), entity.ContactInfo{Name: "Asha", Phone: "98765 43210"}, "Help", "Home")

	assert.True(t, outcome.Sent)
	assert.Equal(t, "sns-1", outcome.MessageID)
	assert.Equal(t, "sns", outcome.Provider)
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, entity.NotificationStatusSent, outcome.Status())
	fallback.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationGateway_QuotaExceededFallsBackOnce(t *testing.T) {
	gateway, primary, fallback := createTestGateway(t)

	primary.EXPECT().
		SendSMS(mock.Anything, "+919876543210", mock.Anything).
		Return("", domainerrors.NewNotificationError(entity.FailureQuotaExceeded, "sns", "monthly spend limit", nil)).
		Once()
	fallback.EXPECT().SendSMS(mock.Anything, "+919876543210", mock.Anything).Return("MOCK-42", nil).Once()

	outcome := gateway.Send(context.Background(), entity.ContactInfo{Phone: "+919876543210"}, "Help", "Home")

	assert.True(t, outcome.Sent)
	assert.Equal(t, "MOCK-42", outcome.MessageID)
	assert.Equal(t, "mock", outcome.Provider)
	assert.Equal(t, 2, outcome.Attempts)
	assert.Empty(t, outcome.Reason)
}

func TestNotificationGateway_RetryableFallbackFailureReturnsFallbackOutcome(t *testing.T) {
	gateway, primary, fallback := createTestGateway(t)

	primary.EXPECT().SendSMS(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("connection reset")).Once()
	fallback.EXPECT().
		SendSMS(mock.Anything, mock.Anything, mock.Anything).
		Return("", domainerrors.NewNotificationError(entity.FailureRetryable, "mock", "down", nil)).
		Once()

	outcome := gateway.Send(context.Background(), entity.ContactInfo{Phone: "+919876543210"}, "Help", "Home")

	assert.False(t, outcome.Sent)
	assert.Equal(t, "mock", outcome.Provider)
	assert.Equal(t, entity.FailureRetryable, outcome.Classification)
	assert.Equal(t, 2, outcome.Attempts)
	assert.Equal(t, entity.NotificationStatusFailed, outcome.Status())
}

func TestNotificationGateway_FatalSkipsFallback(t *testing.T) {
	gateway, primary, fallback := createTestGateway(t)

	primary.EXPECT().
		SendSMS(mock.Anything, mock.Anything, mock.Anything).
		Return("", domainerrors.NewNotificationError(entity.FailureFatal, "sns", "opted out", nil)).
		Once()

	outcome := gateway.Send(context.Background(), entity.ContactInfo{Phone: "+919876543210"}, "Help", "Home")

	assert.False(t, outcome.Sent)
	assert.Equal(t, entity.FailureFatal, outcome.Classification)
	assert.Equal(t, 1, outcome.Attempts)
	fallback.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationGateway_InvalidPhoneIsFatalWithoutProviderCall(t *testing.T) {
	gateway, primary, fallback := createTestGateway(t)

	outcome := gateway.Send(context.Background(), entity.ContactInfo{Phone: "not a number"}, "Help", "Home")

	assert.False(t, outcome.Sent)
	assert.Equal(t, entity.FailureFatal, outcome.Classification)
	assert.Zero(t, outcome.Attempts)
	primary.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
	fallback.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationGateway_TimeoutIsRetryable(t *testing.T) {
	gateway, primary, fallback := createTestGateway(t)

	primary.EXPECT().
		SendSMS(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		}).
		Once()
	fallback.EXPECT().SendSMS(mock.Anything, mock.Anything, mock.Anything).Return("MOCK-1", nil).Once()

	start := time.Now()
	outcome := gateway.Send(context.Background(), entity.ContactInfo{Phone: "+919876543210"}, "Help", "Home")

	assert.True(t, outcome.Sent)
	assert.Equal(t, "mock", outcome.Provider)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNotificationGateway_ComposesTemplate(t *testing.T) {
	gateway, primary, _ := createTestGateway(t)

	var body string
	primary.EXPECT().
		SendSMS(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, b string) { body = b }).
		Return("sns-1", nil)

	gateway.Send(context.Background(), entity.ContactInfo{Phone: "+919876543210"}, "I need help", "")

	// 10:00 UTC is 15:30 in Asia/Kolkata.
	assert.True(t, strings.HasPrefix(body, "🚨 EMERGENCY SOS ALERT 🚨\n\nI need help\n\n"))
	assert.Contains(t, body, "📍 Location: Unknown location\n")
	assert.Contains(t, body, "⏰ Time: 1/5/2024, 3:30:00 pm\n")
	assert.Contains(t, body, "This is an automated emergency alert from SHEILD.")
	assert.Contains(t, body, "contact local authorities immediately.\n\n- SHEILD Emergency System\n")
	assert.True(t, strings.HasSuffix(body, "- This is a transactional message"))
}

func TestNotificationGateway_NoTruncation(t *testing.T) {
	gateway, primary, _ := createTestGateway(t)

	long := strings.Repeat("help ", 200)
	var body string
	primary.EXPECT().
		SendSMS(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, b string) { body = b }).
		Return("sns-1", nil)

	gateway.Send(context.Background(), entity.ContactInfo{Phone: "+919876543210"}, long, "Home")

	assert.Contains(t, body, long)
}
