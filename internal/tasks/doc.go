// Package tasks runs long-lived operations over the participant list with real-time progress reporting.
//
// # Link Checking
//
// [LinkChecker.Check] probes every website URL (and demo preview URL, when asked) with a bounded worker pool:
//   - A [rate.Limiter] paces dispatch so participant hosts are not hammered
//   - Workers call a [services.Prober] and record status, title and timing per URL
//   - Results keep the listing order regardless of completion order
//
// # Progress Reporting
//
// Operations accept an optional progress channel.
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
package tasks
