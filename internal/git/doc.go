// Package git reads page modification dates from repository history.
package git
