package filelist

import (
	"reflect"
	"testing"
)

func newList(paths ...string) *List {
	l := New(nil)
	for _, p := range paths {
		l.Append(p)
	}
	return l
}

func TestAppendPreservesOrder(t *testing.T) {
	l := newList("/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt")

	if l.Len() != 3 {
		t.Fatalf("expected length 3, got %d", l.Len())
	}
	want := []string{"/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt"}
	if got := l.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAppendAllowsDuplicates(t *testing.T) {
	l := newList("/tmp/a.txt", "/tmp/a.txt")

	if l.Len() != 2 {
		t.Fatalf("expected duplicates to be kept, got length %d", l.Len())
	}
}

func TestMoveSwaps(t *testing.T) {
	l := newList("/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt")

	if !l.Move(0, 2) {
		t.Fatalf("expected Move(0, 2) to swap")
	}
	want := []string{"/tmp/c.txt", "/tmp/b.txt", "/tmp/a.txt"}
	if got := l.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMoveIsItsOwnInverse(t *testing.T) {
	l := newList("/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt")
	original := l.Snapshot()

	l.Move(1, 2)
	l.Move(1, 2)

	if got := l.Snapshot(); !reflect.DeepEqual(got, original) {
		t.Fatalf("double move should restore order, got %v", got)
	}
}

func TestMoveNoOps(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		target   int
	}{
		{"target out of range high", 0, 3},
		{"target negative", 0, -1},
		{"target equals selected", 1, 1},
		{"selected out of range", 5, 0},
		{"selected negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newList("/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt")
			original := l.Snapshot()

			if l.Move(tt.selected, tt.target) {
				t.Fatalf("Move(%d, %d) should be a no-op", tt.selected, tt.target)
			}
			if got := l.Snapshot(); !reflect.DeepEqual(got, original) {
				t.Fatalf("list changed by no-op move: %v", got)
			}
		})
	}
}

func TestMoveOnEmptyList(t *testing.T) {
	l := New(nil)
	if l.Move(0, 0) {
		t.Fatalf("Move on empty list should be a no-op")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	l := newList("/tmp/a.txt", "/tmp/b.txt")

	snap := l.Snapshot()
	snap[0] = "/tmp/mutated.txt"
	if got := l.Snapshot()[0]; got != "/tmp/a.txt" {
		t.Fatalf("mutating a snapshot leaked into the list: %q", got)
	}

	before := l.Snapshot()
	l.Append("/tmp/c.txt")
	if len(before) != 2 {
		t.Fatalf("Append changed an existing snapshot: %v", before)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/notes/readme.txt", "readme.txt"},
		{"readme.txt", "readme.txt"},
		{"/tmp/dir/", "dir"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.path); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
