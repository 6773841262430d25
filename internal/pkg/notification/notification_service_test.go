package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPubSubPublisher struct {
	mock.Mock
}

func (m *MockPubSubPublisher) Publish(ctx context.Context, topic string, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, topic, data, attributes)
	return args.String(0), args.Error(1)
}

func (m *MockPubSubPublisher) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPubSubPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestNotifyUserPublishesSmsPayload(t *testing.T) {
	publisher := new(MockPubSubPublisher)

	var published []byte
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(2).([]byte) }).
		Return("msg-1", nil)

	svc := NewNotificationService(publisher)
	err := svc.NotifyUser(context.Background(), "9876543210", consts.SmsEventOtpIssued, "Your PocketBank OTP is 4321")
	require.NoError(t, err)

	var req models.SmsNotificationRequest
	require.NoError(t, json.Unmarshal(published, &req))
	assert.Equal(t, "9876543210", req.Msisdn)
	assert.Equal(t, consts.SmsEventOtpIssued, req.SmsDbEventName)
	assert.Equal(t, "Your PocketBank OTP is 4321", req.MessageText)
	publisher.AssertExpectations(t)
}

func TestNotifyUserReturnsPublishError(t *testing.T) {
	publisher := new(MockPubSubPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("topic unavailable"))

	svc := NewNotificationService(publisher)
	err := svc.NotifyUser(context.Background(), "9876543210", consts.SmsEventSystemMessage, "hello")

	assert.Error(t, err)
}
