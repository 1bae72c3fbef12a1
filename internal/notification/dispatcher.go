package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tgzgondoz/family-fitness-gym/internal/logger"
	"github.com/tgzgondoz/family-fitness-gym/internal/metrics"
)

const (
	pushQueueKey  = "pushes"
	pushFailedKey = "pushes:failed"
	maxTries      = 3
)

// TokenFunc resolves a member's registered push-device token. An empty
// token with a nil error means the member has no device registered.
type TokenFunc func(ctx context.Context, userID int) (string, error)

type PushJob struct {
	UserID  int       `json:"user_id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Type    string    `json:"type"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Dispatcher queues push jobs on Redis and delivers them to the configured
// push gateway in the background. Delivery is entirely its responsibility;
// the rest of the system only writes notification rows.
type Dispatcher struct {
	redis      *redis.Client
	gatewayURL string
	httpClient *http.Client
	tokenFor   TokenFunc
}

func NewDispatcher(redisAddr, gatewayURL string, tokenFor TokenFunc) *Dispatcher {
	return &Dispatcher{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokenFor:   tokenFor,
	}
}

// NewDispatcherWithClient is used by tests to inject a mock Redis client.
func NewDispatcherWithClient(client *redis.Client, gatewayURL string, tokenFor TokenFunc) *Dispatcher {
	return &Dispatcher{
		redis:      client,
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokenFor:   tokenFor,
	}
}

func (d *Dispatcher) Enqueue(ctx context.Context, userID int, title, body, notifType string) error {
	job := PushJob{
		UserID:  userID,
		Title:   title,
		Body:    body,
		Type:    notifType,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal push job: %v", err)
		return err
	}

	if err := d.redis.LPush(ctx, pushQueueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue push for user %d: %v", userID, err)
		return err
	}

	logger.Infof("Push queued: %s for user %d", title, userID)
	return nil
}

func (d *Dispatcher) Start(ctx context.Context) {
	logger.Info("Push dispatcher started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Push dispatcher stopped")
			return
		default:
			d.processNext(ctx)
		}
	}
}

func (d *Dispatcher) processNext(ctx context.Context) {
	result, err := d.redis.BRPop(ctx, 2*time.Second, pushQueueKey).Result()
	if err != nil {
		return
	}

	var job PushJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad push job data: %v", err)
		return
	}

	job.Tries++
	if err := d.deliver(ctx, job); err != nil {
		logger.Errorf("Failed to push to user %d: %v", job.UserID, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			d.redis.LPush(context.Background(), pushQueueKey, string(data))
			logger.Infof("Retrying push to user %d (attempt %d)", job.UserID, job.Tries+1)
		} else {
			logger.Errorf("Push to user %d failed after %d attempts", job.UserID, maxTries)
			metrics.RecordPush(job.Type, "failed")
			d.saveFailed(job, err)
		}
		return
	}

	metrics.RecordPush(job.Type, "sent")
}

func (d *Dispatcher) deliver(ctx context.Context, job PushJob) error {
	token, err := d.tokenFor(ctx, job.UserID)
	if err != nil {
		return err
	}
	if token == "" {
		// No registered device; nothing to deliver.
		logger.Debugf("User %d has no push token, dropping %q", job.UserID, job.Title)
		return nil
	}

	payload := map[string]interface{}{
		"to":       token,
		"title":    job.Title,
		"body":     job.Body,
		"sound":    "default",
		"priority": "high",
		"data": map[string]string{
			"type":   job.Type,
			"screen": routeFor(job.Type),
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.gatewayURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	logger.Infof("Push delivered to user %d: %s", job.UserID, job.Title)
	return nil
}

// routeFor gives the client a screen to open when the push is tapped.
func routeFor(notifType string) string {
	if notifType == TypePayment {
		return "Subscription"
	}
	return "Main"
}

func (d *Dispatcher) saveFailed(job PushJob, cause error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": cause.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	d.redis.LPush(context.Background(), pushFailedKey, string(data))
	logger.Errorf("Push moved to failed queue: user %d", job.UserID)
}

func (d *Dispatcher) QueueLength(ctx context.Context) int64 {
	length, _ := d.redis.LLen(ctx, pushQueueKey).Result()
	return length
}

func (d *Dispatcher) Close() error {
	return d.redis.Close()
}
