package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage      = "stage"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyTitle      = "title"
	KeyCategory   = "category"
	KeyRoot       = "source_root"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func SourceRoot(r string) slog.Attr   { return slog.String(KeyRoot, r) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
