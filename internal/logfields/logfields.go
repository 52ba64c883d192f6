package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names shared by every package.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyPage       = "page"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyKind       = "kind"
	KeyCount      = "count"
	KeyTags       = "tags"
	KeyRoutes     = "routes"
	KeyFile       = "file"
	KeyDurationMS = "duration_ms"
	KeyTrigger    = "trigger"
	KeyAddr       = "addr"
	KeySubject    = "subject"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyError      = "error"
)

func BuildID(id string) slog.Attr  { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr  { return slog.String(KeyStage, name) }
func Page(rel string) slog.Attr    { return slog.String(KeyPage, rel) }
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr       { return slog.String(KeyURL, u) }
func Kind(k string) slog.Attr      { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Tags(n int) slog.Attr         { return slog.Int(KeyTags, n) }
func Routes(n int) slog.Attr       { return slog.Int(KeyRoutes, n) }
func File(name string) slog.Attr   { return slog.String(KeyFile, name) }
func Trigger(t string) slog.Attr   { return slog.String(KeyTrigger, t) }
func Addr(a string) slog.Attr      { return slog.String(KeyAddr, a) }
func Subject(s string) slog.Attr   { return slog.String(KeySubject, s) }
func Method(m string) slog.Attr    { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr    { return slog.Int(KeyStatus, code) }

// Duration reports d in fractional milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

// Error returns an empty string value for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
