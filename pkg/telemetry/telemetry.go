// Package telemetry optionally publishes stats.Report values to Redis so
// a separate process can aggregate timings across runs. Nothing in the
// core tile, morph, blur, gap, or strand packages imports this package;
// it is purely an outer-layer concern wired up by command-line tooling.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell/tilepost/pkg/stats"
)

const reportsStream = "tilepost:reports"

// Publisher publishes operation reports to a Redis stream.
type Publisher struct {
	client *redis.Client
	ctx    context.Context
}

// NewPublisher connects to the Redis instance at addr and verifies
// reachability with a ping.
func NewPublisher(addr string) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("telemetry: redis ping failed: %w", err)
	}

	return &Publisher{client: client, ctx: ctx}, nil
}

// Close releases the underlying Redis connection.
func (p *Publisher) Close() error {
	return p.client.Close()
}

// StoreReport appends a report to the reports stream and caches the
// report under a per-operation key, the same two-write
// pattern the rest of this project's queue client uses for timing data.
func (p *Publisher) StoreReport(r stats.Report) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}

	if err := p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: reportsStream,
		Values: map[string]interface{}{"data": b},
	}).Err(); err != nil {
		return err
	}

	key := fmt.Sprintf("tilepost:report:%s:latest", r.Operation)
	return p.client.Set(p.ctx, key, b, 24*time.Hour).Err()
}

// LatestReport fetches the most recently stored report for the named
// operation, or nil if none has been published.
func (p *Publisher) LatestReport(operation string) (*stats.Report, error) {
	key := fmt.Sprintf("tilepost:report:%s:latest", operation)
	data, err := p.client.Get(p.ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var r stats.Report
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, err
	}
	return &r, nil
}
