package workers

import (
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrWorkerNotRunning = errors.New("notification worker is not running")
	ErrQueueFull        = errors.New("notification queue is full")
)

// NotificationWorker fans volunteer notifications out over SMS and push
// on a fixed pool of goroutines.
type NotificationWorker struct {
	sms     interfaces.SMSSender
	push    interfaces.PushSender
	metrics *metrics.Metrics

	// Worker configuration
	config NotificationWorkerConfig

	// Processing channels
	notificationQueue chan NotificationJob

	// Worker state
	isRunning bool
	mutex     sync.RWMutex

	// Context for shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stats      NotificationWorkerStats
	statsMutex sync.RWMutex
}

type NotificationWorkerConfig struct {
	WorkerCount       int           `json:"workerCount"`
	QueueSize         int           `json:"queueSize"`
	ProcessingTimeout time.Duration `json:"processingTimeout"`
	RetryAttempts     int           `json:"retryAttempts"`
	RetryDelay        time.Duration `json:"retryDelay"`
}

func DefaultNotificationWorkerConfig() NotificationWorkerConfig {
	return NotificationWorkerConfig{
		WorkerCount:       3,
		QueueSize:         500,
		ProcessingTimeout: 30 * time.Second,
		RetryAttempts:     3,
		RetryDelay:        2 * time.Second,
	}
}

type NotificationJob struct {
	ID          string            `json:"id"`
	VolunteerID string            `json:"volunteerId"`
	Phone       string            `json:"phone"`
	DeviceToken string            `json:"-"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data"`
	RetryCount  int               `json:"retryCount"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type NotificationWorkerStats struct {
	JobsProcessed   int64     `json:"jobsProcessed"`
	JobsFailed      int64     `json:"jobsFailed"`
	JobsRetried     int64     `json:"jobsRetried"`
	PushSent        int64     `json:"pushSent"`
	SMSSent         int64     `json:"smsSent"`
	LastProcessedAt time.Time `json:"lastProcessedAt"`
	QueueLength     int       `json:"queueLength"`
	StartTime       time.Time `json:"startTime"`
}

// NewNotificationWorker accepts nil channels; a job with no usable channel is dropped.
func NewNotificationWorker(
	sms interfaces.SMSSender,
	push interfaces.PushSender,
	m *metrics.Metrics,
	config NotificationWorkerConfig,
) *NotificationWorker {
	ctx, cancel := context.WithCancel(context.Background())

	if config.WorkerCount <= 0 {
		config.WorkerCount = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}

	return &NotificationWorker{
		sms:               sms,
		push:              push,
		metrics:           m,
		config:            config,
		notificationQueue: make(chan NotificationJob, config.QueueSize),
		ctx:               ctx,
		cancel:            cancel,
		stats: NotificationWorkerStats{
			StartTime: time.Now(),
		},
	}
}

func (nw *NotificationWorker) Start() error {
	nw.mutex.Lock()
	defer nw.mutex.Unlock()

	if nw.isRunning {
		return nil
	}

	nw.isRunning = true

	logrus.Infof("Starting Notification Worker with %d workers", nw.config.WorkerCount)

	for i := 0; i < nw.config.WorkerCount; i++ {
		nw.wg.Add(1)
		go nw.worker(i)
	}

	return nil
}

func (nw *NotificationWorker) Stop() error {
	nw.mutex.Lock()
	if !nw.isRunning {
		nw.mutex.Unlock()
		return nil
	}
	nw.isRunning = false
	nw.mutex.Unlock()

	logrus.Info("Stopping Notification Worker...")

	nw.cancel()
	nw.wg.Wait()

	logrus.Info("Notification Worker stopped successfully")
	return nil
}

func (nw *NotificationWorker) IsRunning() bool {
	nw.mutex.RLock()
	defer nw.mutex.RUnlock()
	return nw.isRunning
}

// NotifyVolunteers enqueues one job per volunteer. It never blocks on delivery.
func (nw *NotificationWorker) NotifyVolunteers(request *models.RescueRequest, volunteers []*models.User) error {
	if !nw.IsRunning() {
		return ErrWorkerNotRunning
	}

	title := "URGENT: Rescue Assistance Needed"
	body := fmt.Sprintf("Volunteer assistance requested for %s at %s.", request.RescueType, request.Location)
	data := map[string]string{
		"type":            "rescue_request",
		"rescueRequestId": request.ID.Hex(),
		"urgencyLevel":    string(request.Urgency),
		"district":        request.District,
	}

	var dropped int
	for _, v := range volunteers {
		job := NotificationJob{
			ID:          utils.GenerateUUID(),
			VolunteerID: v.ID.Hex(),
			Phone:       v.Phone,
			DeviceToken: v.DeviceToken,
			Title:       title,
			Body:        body,
			Data:        data,
			CreatedAt:   time.Now(),
		}
		if err := nw.submit(job); err != nil {
			dropped++
		}
	}

	if dropped > 0 {
		return fmt.Errorf("%w: %d of %d jobs dropped", ErrQueueFull, dropped, len(volunteers))
	}
	return nil
}

func (nw *NotificationWorker) submit(job NotificationJob) error {
	select {
	case nw.notificationQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

func (nw *NotificationWorker) worker(workerID int) {
	defer nw.wg.Done()

	logrus.Debugf("Notification worker %d started", workerID)

	for {
		select {
		case job := <-nw.notificationQueue:
			nw.processNotification(job, workerID)

		case <-nw.ctx.Done():
			logrus.Debugf("Notification worker %d stopping", workerID)
			return
		}
	}
}

func (nw *NotificationWorker) processNotification(job NotificationJob, workerID int) {
	ctx, cancel := context.WithTimeout(nw.ctx, nw.config.ProcessingTimeout)
	defer cancel()

	logrus.Debugf("Worker %d processing notification %s for volunteer %s", workerID, job.ID, job.VolunteerID)

	attempted, delivered := false, false

	if nw.push != nil && job.DeviceToken != "" {
		attempted = true
		err := nw.push.SendPush(ctx, job.DeviceToken, job.Title, job.Body, job.Data)
		nw.metrics.NotificationSent("push", err == nil)
		if err != nil {
			logrus.WithError(err).WithField("volunteerId", job.VolunteerID).Warn("Failed to send push notification")
		} else {
			delivered = true
			nw.increment(func(s *NotificationWorkerStats) { s.PushSent++ })
		}
	}

	if nw.sms != nil && job.Phone != "" {
		attempted = true
		err := nw.sms.SendSMS(ctx, job.Phone, job.Title+": "+job.Body)
		nw.metrics.NotificationSent("sms", err == nil)
		if err != nil {
			logrus.WithError(err).WithField("volunteerId", job.VolunteerID).Warn("Failed to send SMS notification")
		} else {
			delivered = true
			nw.increment(func(s *NotificationWorkerStats) { s.SMSSent++ })
		}
	}

	nw.increment(func(s *NotificationWorkerStats) {
		s.JobsProcessed++
		s.LastProcessedAt = time.Now()
	})

	if !attempted {
		logrus.WithField("volunteerId", job.VolunteerID).Debug("No notification channel available for volunteer")
		return
	}
	if !delivered {
		nw.retryJob(job)
	}
}

func (nw *NotificationWorker) retryJob(job NotificationJob) {
	if job.RetryCount >= nw.config.RetryAttempts {
		logrus.Errorf("Notification job %s failed after %d attempts", job.ID, job.RetryCount)
		nw.increment(func(s *NotificationWorkerStats) { s.JobsFailed++ })
		return
	}

	job.RetryCount++
	nw.increment(func(s *NotificationWorkerStats) { s.JobsRetried++ })

	delay := time.Duration(job.RetryCount) * nw.config.RetryDelay

	go func() {
		select {
		case <-time.After(delay):
		case <-nw.ctx.Done():
			return
		}
		if err := nw.submit(job); err != nil {
			logrus.Errorf("Failed to requeue notification job %s", job.ID)
		}
	}()
}

func (nw *NotificationWorker) increment(update func(*NotificationWorkerStats)) {
	nw.statsMutex.Lock()
	defer nw.statsMutex.Unlock()
	update(&nw.stats)
}

func (nw *NotificationWorker) GetStats() NotificationWorkerStats {
	nw.statsMutex.RLock()
	defer nw.statsMutex.RUnlock()

	stats := nw.stats
	stats.QueueLength = len(nw.notificationQueue)
	return stats
}
