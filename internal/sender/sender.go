// Package sender posts an inventory record to an HTTP endpoint.
package sender

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/go-tangra/go-tangra-computerinfo/internal/codec"
)

const defaultTimeout = 30 * time.Second

// Result describes the endpoint's answer to an upload.
type Result struct {
	RequestID  string
	StatusCode int
	Status     string
}

// Sender posts records to a single URL. It never retries.
type Sender struct {
	url    string
	client *resty.Client
}

// New returns a Sender for url. A zero timeout means 30 seconds.
func New(url string, timeout time.Duration) *Sender {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Sender{
		url:    url,
		client: resty.New().SetTimeout(timeout),
	}
}

// Send posts v as a compact JSON body. Any HTTP status counts as delivered;
// the error is set only when no response was received.
func (s *Sender) Send(ctx context.Context, v any) (*Result, error) {
	body, err := codec.Marshal(v, codec.Compact)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}

	id := uuid.NewString()
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json; charset=utf-8").
		SetHeader("X-Request-Id", id).
		SetBody(body).
		Post(s.url)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", s.url, err)
	}

	return &Result{
		RequestID:  id,
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
	}, nil
}
