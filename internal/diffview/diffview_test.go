package diffview

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	oldText := "a\nb\nc\n"
	newText := "a\nB\nc\n"

	out := Render("x.cs", oldText, newText)

	assert.True(t, strings.HasPrefix(out, "--- x.cs\n+++ x.cs\n"))
	assert.Contains(t, out, "-b\n")
	assert.Contains(t, out, "+B\n")
	assert.Contains(t, out, " a\n")
	assert.Contains(t, out, " c\n")
}

func TestCount(t *testing.T) {
	t.Run("Pure Insert", func(t *testing.T) {
		got := Count("a\nc\n", "a\nb\nc\n")
		if diff := cmp.Diff(Stats{Added: 1}, got); diff != "" {
			t.Errorf("stats mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		got := Count("a\nold\n", "a\nnew\n")
		if diff := cmp.Diff(Stats{Added: 1, Removed: 1}, got); diff != "" {
			t.Errorf("stats mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Identical", func(t *testing.T) {
		got := Count("same\n", "same\n")
		if diff := cmp.Diff(Stats{}, got); diff != "" {
			t.Errorf("stats mismatch (-want +got):\n%s", diff)
		}
	})
}
