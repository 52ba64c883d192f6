// Package state persists per-page content fingerprints and build history in SQLite.
//
// A page's changed_at moves only when its fingerprint changes, which gives
// pages outside version control a stable last-modified date across builds.
package state
