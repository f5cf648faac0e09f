// Package filelist holds the ordered, mutable list of files to combine.
// Order is significant: it is exactly the order files are written to the
// combined output.
package filelist

import (
	"path/filepath"

	"go.uber.org/zap"
)

// List is an ordered sequence of file paths. Paths are opaque strings;
// duplicates are allowed and validity is only checked when a file is read.
// The backing slice is never shared with callers.
type List struct {
	paths  []string
	logger *zap.Logger
}

// New creates an empty list. A nil logger disables operation logging.
func New(logger *zap.Logger) *List {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &List{logger: logger}
}

// Append adds path to the end of the list. It never fails: whether the path
// exists or is readable is determined at read time, not here.
func (l *List) Append(path string) {
	l.paths = append(l.paths, path)
	l.logger.Info("Added file", zap.String("path", path))
}

// Move swaps the entries at selected and target. The swap only happens when
// both indexes are in range and differ; anything else is a no-op. The return
// value reports whether a swap took place.
//
// Note this is a pairwise swap, not an insert-before shift. It mirrors the
// drop handling of the original drag-and-drop UI.
func (l *List) Move(selected, target int) bool {
	if selected < 0 || selected >= len(l.paths) {
		l.logger.Warn("Move with out-of-range selection",
			zap.Int("selected", selected),
			zap.Int("length", len(l.paths)))
		return false
	}
	if target < 0 || target >= len(l.paths) || target == selected {
		return false
	}
	l.paths[selected], l.paths[target] = l.paths[target], l.paths[selected]
	return true
}

// Snapshot returns a copy of the current order. Mutating the returned slice
// has no effect on the list, and later Append/Move calls do not change
// previously taken snapshots.
func (l *List) Snapshot() []string {
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.paths)
}

// DisplayName derives the display name for a path: its last segment. The
// name is never stored, it is always computed from the path.
func DisplayName(path string) string {
	return filepath.Base(path)
}
