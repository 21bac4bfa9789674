package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/services"
	"github.com/desertthunder/showcase/internal/shared"
	"golang.org/x/time/rate"
)

// LinkKind names which URL of a website was checked.
type LinkKind string

const (
	SiteLink    LinkKind = "site"
	PreviewLink LinkKind = "preview"
)

// CheckOpts contains configuration for a link check run.
type CheckOpts struct {
	NumWorkers      int     // Concurrent workers (default: 4, max: 16)
	RateLimit       float64 // Requests per second (default: 5)
	IncludePreviews bool    // Also check demo preview URLs
}

// LinkResult is the outcome of checking one URL.
type LinkResult struct {
	Website    models.Website     `json:"website"`
	Kind       LinkKind           `json:"kind"`
	URL        string             `json:"url"`
	OK         bool               `json:"ok"`
	StatusCode int                `json:"status_code,omitempty"`
	Error      string             `json:"error,omitempty"`
	Page       *services.PageInfo `json:"page,omitempty"`
}

// CheckResult summarizes a link check run.
type CheckResult struct {
	Total       int          `json:"total"`
	Reachable   int          `json:"reachable"`
	Unreachable int          `json:"unreachable"`
	Results     []LinkResult `json:"results"`
}

// LinkChecker probes participant websites concurrently.
type LinkChecker struct {
	prober services.Prober
	logger *log.Logger
}

// NewLinkChecker creates a LinkChecker backed by prober.
func NewLinkChecker(prober services.Prober, logger *log.Logger) *LinkChecker {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &LinkChecker{prober: prober, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
func (c *LinkChecker) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Check probes every website URL with a rate-limited worker pool.
//
// A cancelled context stops dispatch; links that were never probed are reported with the context error.
func (c *LinkChecker) Check(
	ctx context.Context,
	websites []models.Website,
	opts CheckOpts,
	prog chan<- ProgressUpdate,
) (*CheckResult, error) {
	if c.prober == nil {
		return nil, fmt.Errorf("%w: prober not initialized", shared.ErrServiceUnavailable)
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 16 {
		opts.NumWorkers = 16
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	queue := buildJobs(websites, opts.IncludePreviews)
	result := &CheckResult{
		Total:   len(queue),
		Results: make([]LinkResult, len(queue)),
	}

	c.sendProgress(prog, queueLinksUpdate(len(queue)))

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan linkJob, len(queue))
	results := make(chan indexedResult, len(queue))

	var wg sync.WaitGroup
	for i := 0; i < min(opts.NumWorkers, max(len(queue), 1)); i++ {
		wg.Add(1)
		go c.checkWorker(ctx, &wg, jobs, results)
	}

	go func() {
		defer close(jobs)
		for _, job := range queue {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			jobs <- job
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	done := make([]bool, len(queue))
	completed := 0
	for res := range results {
		completed++
		result.Results[res.index] = res.LinkResult
		done[res.index] = true
		c.sendProgress(prog, linkCheckedUpdate(completed, len(queue), res.LinkResult))
	}

	for i, job := range queue {
		if !done[i] {
			reason := "not checked"
			if cause := context.Cause(ctx); cause != nil {
				reason = cause.Error()
			}
			result.Results[i] = LinkResult{Website: job.website, Kind: job.kind, URL: job.url, Error: reason}
		}
		if result.Results[i].OK {
			result.Reachable++
		} else {
			result.Unreachable++
		}
	}

	c.logger.Info("link check complete", "total", result.Total, "reachable", result.Reachable)
	c.sendProgress(prog, summaryUpdate(result))

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("link check interrupted: %w", err)
	}
	return result, nil
}

type indexedResult struct {
	index int
	LinkResult
}

// checkWorker probes URLs from the jobs channel until it is closed or ctx is done.
func (c *LinkChecker) checkWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan linkJob,
	results chan<- indexedResult,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- indexedResult{index: job.index, LinkResult: c.checkLink(ctx, job)}
	}
}

func (c *LinkChecker) checkLink(ctx context.Context, job linkJob) LinkResult {
	res := LinkResult{Website: job.website, Kind: job.kind, URL: job.url}

	page, err := c.prober.Probe(ctx, job.url)
	if err != nil {
		c.logger.Debug("link check failed", "url", job.url, "error", err)
		res.Error = err.Error()
		return res
	}

	res.Page = page
	res.StatusCode = page.StatusCode
	res.OK = page.OK()
	return res
}

// buildJobs lists the URLs to check in listing order.
func buildJobs(websites []models.Website, includePreviews bool) []linkJob {
	jobs := make([]linkJob, 0, len(websites))
	for _, w := range websites {
		jobs = append(jobs, linkJob{index: len(jobs), website: w, url: w.URL, kind: SiteLink})
		if includePreviews && w.PreviewURL != "" {
			jobs = append(jobs, linkJob{index: len(jobs), website: w, url: w.PreviewURL, kind: PreviewLink})
		}
	}
	return jobs
}
