package tasks

import (
	"fmt"

	"github.com/desertthunder/showcase/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	QueueLinks Phase = iota
	CheckLinks
	Summarize
)

func (p Phase) String() string {
	switch p {
	case QueueLinks:
		return "queue_links"
	case CheckLinks:
		return "check_links"
	case Summarize:
		return "summarize"
	default:
		return ""
	}
}

func queueLinksUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   QueueLinks,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Checking %d links...", total),
	}
}

func linkCheckedUpdate(step, total int, res LinkResult) ProgressUpdate {
	mark := "✓"
	detail := fmt.Sprintf("%d", res.StatusCode)
	if !res.OK {
		mark = "✗"
		if res.Error != "" {
			detail = res.Error
		}
	}
	return ProgressUpdate{
		Phase:   CheckLinks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s %s %s (%s)", step, total, mark, res.Website.Name, res.URL, detail),
		Data:    res,
	}
}

func summaryUpdate(result *CheckResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summarize,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("%d/%d links reachable", result.Reachable, result.Total),
		Data:    result,
	}
}

// linkJob is one URL queued for a worker.
type linkJob struct {
	index   int
	website models.Website
	url     string
	kind    LinkKind
}
