package workers

import (
	"alertsystem/models"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSMS struct {
	mu       sync.Mutex
	failures int
	sent     []string
}

func (f *fakeSMS) SendSMS(_ context.Context, to, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("carrier unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeSMS) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakePush struct {
	mu   sync.Mutex
	data []map[string]string
}

func (f *fakePush) SendPush(_ context.Context, _, _, _ string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = append(f.data, data)
	return nil
}

func (f *fakePush) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data)
}

func testConfig() NotificationWorkerConfig {
	return NotificationWorkerConfig{
		WorkerCount:       2,
		QueueSize:         16,
		ProcessingTimeout: time.Second,
		RetryAttempts:     2,
		RetryDelay:        10 * time.Millisecond,
	}
}

func testRequest() *models.RescueRequest {
	return &models.RescueRequest{
		ID:         primitive.NewObjectID(),
		RescueType: "Flood",
		Location:   "Near river bank",
		District:   "Mysuru",
		Urgency:    models.UrgencyCritical,
	}
}

func TestNotificationWorkerRequiresStart(t *testing.T) {
	nw := NewNotificationWorker(&fakeSMS{}, nil, nil, testConfig())

	err := nw.NotifyVolunteers(testRequest(), []*models.User{{Phone: "+919800000001"}})
	assert.ErrorIs(t, err, ErrWorkerNotRunning)
}

func TestNotificationWorkerDeliversOverAvailableChannels(t *testing.T) {
	sms := &fakeSMS{}
	push := &fakePush{}
	nw := NewNotificationWorker(sms, push, nil, testConfig())
	require.NoError(t, nw.Start())
	defer nw.Stop()

	volunteers := []*models.User{
		{ID: primitive.NewObjectID(), Phone: "+919800000001", DeviceToken: "device-1"},
		{ID: primitive.NewObjectID(), Phone: "+919800000002"},
		{ID: primitive.NewObjectID()},
	}
	request := testRequest()
	require.NoError(t, nw.NotifyVolunteers(request, volunteers))

	require.Eventually(t, func() bool { return nw.GetStats().JobsProcessed == 3 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, sms.count())
	assert.Equal(t, 1, push.count())

	push.mu.Lock()
	assert.Equal(t, request.ID.Hex(), push.data[0]["rescueRequestId"])
	assert.Equal(t, "rescue_request", push.data[0]["type"])
	push.mu.Unlock()
}

func TestNotificationWorkerRetriesFailedDelivery(t *testing.T) {
	sms := &fakeSMS{failures: 1}
	nw := NewNotificationWorker(sms, nil, nil, testConfig())
	require.NoError(t, nw.Start())
	defer nw.Stop()

	require.NoError(t, nw.NotifyVolunteers(testRequest(), []*models.User{{ID: primitive.NewObjectID(), Phone: "+919800000001"}}))

	require.Eventually(t, func() bool { return sms.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	stats := nw.GetStats()
	assert.EqualValues(t, 1, stats.JobsRetried)
	assert.Zero(t, stats.JobsFailed)
}

func TestNotificationWorkerGivesUpAfterRetryBudget(t *testing.T) {
	sms := &fakeSMS{failures: 10}
	nw := NewNotificationWorker(sms, nil, nil, testConfig())
	require.NoError(t, nw.Start())
	defer nw.Stop()

	require.NoError(t, nw.NotifyVolunteers(testRequest(), []*models.User{{ID: primitive.NewObjectID(), Phone: "+919800000001"}}))

	require.Eventually(t, func() bool { return nw.GetStats().JobsFailed == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 2, nw.GetStats().JobsRetried)
	assert.Zero(t, sms.count())
}
