// Package daemon implements the watch command: it rebuilds page metadata when
// content changes or the calendar day rolls over, and serves the output
// directory together with health and metrics endpoints.
package daemon
