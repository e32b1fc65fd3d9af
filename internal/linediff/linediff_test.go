package linediff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codescroll/codescroll/internal/textline"
)

// lcsLen is an independent reference DP implementation of longest-common-
// subsequence length over whole lines, used to check minimality.
func lcsLen(a, b []textline.Line) int {
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1].Text == b[j-1].Text {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[len(a)][len(b)]
}

func countKind(states []LineState, k Kind) int {
	n := 0
	for _, s := range states {
		if s.Kind == k {
			n++
		}
	}
	return n
}

func TestCompute_Classification(t *testing.T) {
	type want struct {
		kind Kind
		text string
		num  int
	}

	tests := []struct {
		name string
		old  string
		new  string
		want []want
	}{
		{
			name: "identical",
			old:  "a\nb",
			new:  "a\nb",
			want: []want{{Unchanged, "a", 1}, {Unchanged, "b", 2}},
		},
		{
			name: "replace middle line",
			old:  "a\nb\nc",
			new:  "a\nx\nc",
			want: []want{{Unchanged, "a", 1}, {Removed, "b", 2}, {Added, "x", 2}, {Unchanged, "c", 3}},
		},
		{
			name: "append line",
			old:  "a",
			new:  "a\nb",
			want: []want{{Unchanged, "a", 1}, {Added, "b", 2}},
		},
		{
			name: "drop final line",
			old:  "a\nb\nc",
			new:  "a\nb",
			want: []want{{Unchanged, "a", 1}, {Unchanged, "b", 2}, {Removed, "c", 3}},
		},
		{
			name: "prepend line",
			old:  "b",
			new:  "a\nb",
			want: []want{{Added, "a", 1}, {Unchanged, "b", 2}},
		},
		{
			name: "two separated hunks",
			old:  "a\nb\nc\nd\ne",
			new:  "a\nx\nc\nd\ny",
			want: []want{
				{Unchanged, "a", 1}, {Removed, "b", 2}, {Added, "x", 2}, {Unchanged, "c", 3},
				{Unchanged, "d", 4}, {Removed, "e", 5}, {Added, "y", 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := Compute(textline.Split(tt.old), textline.Split(tt.new))
			require.Len(t, states, len(tt.want))
			for i, w := range tt.want {
				require.Equal(t, w.kind, states[i].Kind, "state %d kind", i)
				require.Equal(t, w.text, states[i].Text, "state %d text", i)
				require.Equal(t, w.num, states[i].Number, "state %d number", i)
			}
		})
	}
}

func TestCompute_EmptySides(t *testing.T) {
	var empty []textline.Line

	states := Compute(empty, textline.Split("a\nb"))
	require.Len(t, states, 2)
	for _, s := range states {
		require.Equal(t, Added, s.Kind)
	}

	states = Compute(textline.Split("a\nb"), empty)
	require.Len(t, states, 2)
	for _, s := range states {
		require.Equal(t, Removed, s.Kind)
	}

	require.Empty(t, Compute(empty, empty))
}

func TestCompute_Identity(t *testing.T) {
	texts := []string{
		"a",
		"a\nb\nc",
		"dup\ndup\ndup",
		"",
		"x\n\n\ny",
	}
	for _, text := range texts {
		lines := textline.Split(text)
		states := Compute(lines, lines)
		require.Len(t, states, len(lines))
		for i, s := range states {
			require.Equal(t, Unchanged, s.Kind)
			require.Equal(t, lines[i].Text, s.Text)
			require.Equal(t, i+1, s.Number)
		}
	}
}

func TestCompute_RemovedBeforeAddedWithinHunk(t *testing.T) {
	// A pure replacement hunk must list all removed lines before any added line.
	states := Compute(textline.Split("keep\nold1\nold2\nkeep2"), textline.Split("keep\nnew1\nnew2\nnew3\nkeep2"))

	var kinds []Kind
	for _, s := range states {
		kinds = append(kinds, s.Kind)
	}
	require.Equal(t, []Kind{Unchanged, Removed, Removed, Added, Added, Added, Unchanged}, kinds)
}

func TestCompute_Reconstruction(t *testing.T) {
	pairs := [][2]string{
		{"a\nb\nc", "a\nx\nc"},
		{"", "a\nb"},
		{"a\nb", ""},
		{"x", "x"},
		{"a\nb\nc\nd", "d\nc\nb\na"},
		{"same\nsame\nsame", "same\nsame"},
		{"func main() {\n\tfmt.Println(1)\n}", "func main() {\n\tfmt.Println(1)\n\tfmt.Println(2)\n}"},
		{"a\nb\nc\n", "a\nb\nc"},
	}

	for _, p := range pairs {
		t.Run(fmt.Sprintf("%q->%q", p[0], p[1]), func(t *testing.T) {
			prev := textline.Split(p[0])
			cur := textline.Split(p[1])
			states := Compute(prev, cur)

			var gotPrev, gotCur []string
			for _, s := range states {
				switch s.Kind {
				case Unchanged:
					gotPrev = append(gotPrev, s.Text)
					gotCur = append(gotCur, s.Text)
				case Removed:
					gotPrev = append(gotPrev, s.Text)
				case Added:
					gotCur = append(gotCur, s.Text)
				}
			}
			require.Equal(t, p[0], strings.Join(gotPrev, "\n"))
			require.Equal(t, p[1], strings.Join(gotCur, "\n"))
		})
	}
}

func TestCompute_Minimality(t *testing.T) {
	// Added + Removed must equal |A| + |B| - 2*LCS(A, B) for an independently
	// computed LCS.
	pairs := [][2]string{
		{"a\nb\nc", "a\nx\nc"},
		{"a\nb\nc\nd\ne", "a\nc\ne"},
		{"one\ntwo\nthree", "zero\none\nthree\nfour"},
		{"a\nb\na\nb\na", "b\na\nb\na\nb"},
		{"x\ny\nz", "p\nq\nr"},
		{"a\nb\nc\n", "a\nb\nc"},
		{"shared tail\nend", "different head\nshared tail\nend"},
	}

	for _, p := range pairs {
		t.Run(fmt.Sprintf("%q->%q", p[0], p[1]), func(t *testing.T) {
			prev := textline.Split(p[0])
			cur := textline.Split(p[1])
			states := Compute(prev, cur)

			edits := countKind(states, Added) + countKind(states, Removed)
			require.Equal(t, len(prev)+len(cur)-2*lcsLen(prev, cur), edits)
			require.Equal(t, lcsLen(prev, cur), countKind(states, Unchanged))
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	prev := textline.Split("a\nb\nc\nd\ne\nf")
	cur := textline.Split("a\nc\nx\nd\nf\ng")

	first := Compute(prev, cur)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Compute(prev, cur))
	}
}
