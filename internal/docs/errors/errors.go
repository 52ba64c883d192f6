// Package errors holds sentinel errors for content discovery.
package errors

import "errors"

var (
	// ErrContentDirNotFound indicates the configured content directory does not exist.
	ErrContentDirNotFound = errors.New("content directory not found")

	// ErrWalkFailed indicates filesystem traversal of the content directory failed.
	ErrWalkFailed = errors.New("content directory walk failed")

	// ErrFileReadFailed indicates reading a discovered file failed.
	ErrFileReadFailed = errors.New("content file read failed")

	// ErrNoDocsFound indicates discovery found no content files.
	ErrNoDocsFound = errors.New("no content files found")
)
