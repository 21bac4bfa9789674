package tasks

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/desertthunder/showcase/internal/services"
	"github.com/desertthunder/showcase/internal/shared"
	tu "github.com/desertthunder/showcase/internal/testing"
	"github.com/google/go-cmp/cmp"
)

func newTestChecker(p services.Prober) *LinkChecker {
	return NewLinkChecker(p, shared.NewLogger(io.Discard))
}

func TestLinkChecker(t *testing.T) {
	t.Run("reports reachable and unreachable links in listing order", func(t *testing.T) {
		websites := tu.Websites(4)
		prober := &tu.MockProber{
			Pages: map[string]*services.PageInfo{
				websites[1].URL: {URL: websites[1].URL, StatusCode: http.StatusNotFound},
			},
			Errs: map[string]error{
				websites[2].URL: errors.New("connection refused"),
			},
		}

		result, err := newTestChecker(prober).Check(context.Background(), websites, CheckOpts{NumWorkers: 3, RateLimit: 1000}, nil)
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}

		if result.Total != 4 || result.Reachable != 2 || result.Unreachable != 2 {
			t.Errorf("unexpected totals %+v", result)
		}

		var urls []string
		var oks []bool
		for _, r := range result.Results {
			urls = append(urls, r.URL)
			oks = append(oks, r.OK)
		}
		wantURLs := []string{websites[0].URL, websites[1].URL, websites[2].URL, websites[3].URL}
		if diff := cmp.Diff(wantURLs, urls); diff != "" {
			t.Errorf("result order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]bool{true, false, false, true}, oks); diff != "" {
			t.Errorf("ok flags mismatch (-want +got):\n%s", diff)
		}
		if result.Results[1].StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 status, got %d", result.Results[1].StatusCode)
		}
		if result.Results[2].Error != "connection refused" {
			t.Errorf("expected transport error, got %q", result.Results[2].Error)
		}
	})

	t.Run("includes preview links when asked", func(t *testing.T) {
		websites := tu.Websites(2)
		websites[0].PreviewURL = "https://sitea.example.com/demo"
		prober := &tu.MockProber{}

		result, err := newTestChecker(prober).Check(context.Background(), websites, CheckOpts{RateLimit: 1000, IncludePreviews: true}, nil)
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}

		if result.Total != 3 {
			t.Fatalf("expected 3 links, got %d", result.Total)
		}
		if result.Results[1].Kind != PreviewLink || result.Results[1].URL != websites[0].PreviewURL {
			t.Errorf("expected preview link second, got %+v", result.Results[1])
		}
		if prober.CallCount() != 3 {
			t.Errorf("expected 3 probes, got %d", prober.CallCount())
		}
	})

	t.Run("skips previews by default", func(t *testing.T) {
		websites := tu.Websites(1)
		websites[0].PreviewURL = "https://sitea.example.com/demo"

		result, err := newTestChecker(&tu.MockProber{}).Check(context.Background(), websites, CheckOpts{RateLimit: 1000}, nil)
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}
		if result.Total != 1 {
			t.Errorf("expected 1 link, got %d", result.Total)
		}
	})

	t.Run("sends progress updates", func(t *testing.T) {
		websites := tu.Websites(3)
		prog := make(chan ProgressUpdate, 10)

		_, err := newTestChecker(&tu.MockProber{}).Check(context.Background(), websites, CheckOpts{RateLimit: 1000}, prog)
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}
		close(prog)

		var phases []Phase
		for u := range prog {
			phases = append(phases, u.Phase)
		}
		want := []Phase{QueueLinks, CheckLinks, CheckLinks, CheckLinks, Summarize}
		if diff := cmp.Diff(want, phases); diff != "" {
			t.Errorf("phases mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		result, err := newTestChecker(&tu.MockProber{}).Check(context.Background(), nil, CheckOpts{}, nil)
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}
		if result.Total != 0 || len(result.Results) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("cancelled context marks links unchecked", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := newTestChecker(&tu.MockProber{}).Check(ctx, tu.Websites(3), CheckOpts{RateLimit: 1000}, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if result.Reachable != 0 || result.Unreachable != 3 {
			t.Errorf("expected all links unreachable, got %+v", result)
		}
	})

	t.Run("nil prober", func(t *testing.T) {
		_, err := NewLinkChecker(nil, nil).Check(context.Background(), tu.Websites(1), CheckOpts{}, nil)
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{QueueLinks, "queue_links"},
		{CheckLinks, "check_links"},
		{Summarize, "summarize"},
		{Phase(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
