// Package services defines the [Prober] interface for inspecting participant websites and implements it over HTTP.
//
// # HTTP Prober
//
// [HTTPProber] issues a GET for each URL with a bounded body read.
// HTML responses are parsed with goquery to pull the <title> and the description meta tag
// (falling back to og:title and og:description), so the CLI can show what a participant site calls itself.
//
// # Error Handling
//
// Transport failures (DNS, refused connections, timeouts) are returned wrapped in [shared.ErrServiceUnavailable].
// HTTP error statuses are not errors: they are reported in [PageInfo.StatusCode] and [PageInfo.OK] returns false.
package services
