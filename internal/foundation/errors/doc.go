// Package errors provides the classified error type used across sitemeta.
//
// A ClassifiedError carries a category (config, filesystem, git, ...), a
// severity and structured context. The CLI and HTTP adapters map categories
// to exit codes and status codes.
//
//	err := errors.FileSystemError("read page").
//		WithCause(ioErr).
//		WithContext("path", path).
//		Build()
package errors
