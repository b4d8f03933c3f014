package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "http://extractor-a:8000/extract"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different host paces independently
	if err := limiter.Wait(ctx, "http://extractor-b:8000/extract"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx := context.Background()
	url := "http://extractor:8000/extract"

	if err := limiter.Wait(ctx, url); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// Burst token consumed
	if limiter.Allow(url) {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	if !limiter.Allow("http://other:8000/extract") {
		t.Errorf("expected allow for other host")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	host := "slow-extractor:8000"

	limiter.SetHostRate(host, 0.1, 1)

	if !limiter.Allow("http://" + host + "/extract") {
		t.Errorf("first request should pass")
	}

	if limiter.Allow("http://" + host + "/extract") {
		t.Errorf("second request should fail")
	}

	if !limiter.Allow("http://fast-extractor:8000/extract") {
		t.Errorf("other host should pass")
	}
}

func TestExtractHost(t *testing.T) {
	host, err := extractHost("http://extractor:8000/extract")
	if err != nil {
		t.Fatalf("extractHost failed: %v", err)
	}
	if host != "extractor:8000" {
		t.Errorf("expected extractor:8000, got %s", host)
	}
}
