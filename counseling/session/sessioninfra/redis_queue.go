package sessioninfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abraxas-365/counsel/counseling/session"
)

// RedisExtractionQueue implements the ExtractionQueue interface using a
// Redis list.
type RedisExtractionQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisExtractionQueue creates a Redis-backed extraction queue.
func NewRedisExtractionQueue(client *redis.Client, queueName string) session.ExtractionQueue {
	return &RedisExtractionQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds an extraction job to the queue
func (q *RedisExtractionQueue) Enqueue(ctx context.Context, job *session.ExtractionJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal extraction job %s: %w", job.ID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue extraction job %s: %w", job.ID, err)
	}

	return nil
}

// Dequeue gets a job from the queue (blocking with timeout)
func (q *RedisExtractionQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil signals the timeout elapsed with no jobs.
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue extraction job: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return []byte(result[1]), nil
}

// Size returns the number of queued jobs
func (q *RedisExtractionQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("extraction queue size: %w", err)
	}
	return size, nil
}

// Ping checks if the Redis connection is alive
func (q *RedisExtractionQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
