// Package progress reports per-stream counters with ETA during the copy
// phase. Two sinks are provided: a terminal sink backed by
// github.com/schollz/progressbar/v3, and a null sink for --no-progress runs.
package progress

// Bar tracks progress for a single entity-kind stream.
type Bar interface {
	// Inc marks one row as processed, successful or not.
	Inc()
	// Warn prints a single-line diagnostic without corrupting the bar.
	Warn(line string)
	// Close finalizes the bar's rendering.
	Close()
}

// Sink opens one Bar per entity-kind stream.
type Sink interface {
	NewBar(label string, total int64) Bar
}
