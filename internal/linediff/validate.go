package linediff

import (
	"fmt"

	"github.com/codescroll/codescroll/internal/textline"
)

// validate checks the LineState invariants against the inputs and returns an
// error on the first violation.
func validate(previous, current []textline.Line, states []LineState) error {
	var prevTexts, curTexts []string
	nextPrev := 1
	nextCur := 1

	for i, s := range states {
		switch s.Kind {
		case Unchanged:
			if s.Number != nextCur {
				return fmt.Errorf("state[%d]: unchanged line numbered %d, want %d", i, s.Number, nextCur)
			}
			prevTexts = append(prevTexts, s.Text)
			curTexts = append(curTexts, s.Text)
			nextPrev++
			nextCur++
		case Added:
			if s.Number != nextCur {
				return fmt.Errorf("state[%d]: added line numbered %d, want %d", i, s.Number, nextCur)
			}
			curTexts = append(curTexts, s.Text)
			nextCur++
		case Removed:
			if s.Number != nextPrev {
				return fmt.Errorf("state[%d]: removed line numbered %d, want %d", i, s.Number, nextPrev)
			}
			prevTexts = append(prevTexts, s.Text)
			nextPrev++
		default:
			return fmt.Errorf("state[%d]: unknown kind %d", i, int(s.Kind))
		}
	}

	if len(prevTexts) != len(previous) {
		return fmt.Errorf("states reconstruct %d previous lines, want %d", len(prevTexts), len(previous))
	}
	for i, text := range prevTexts {
		if text != previous[i].Text {
			return fmt.Errorf("previous line %d: reconstructed %q, want %q", i+1, text, previous[i].Text)
		}
	}

	if len(curTexts) != len(current) {
		return fmt.Errorf("states reconstruct %d current lines, want %d", len(curTexts), len(current))
	}
	for i, text := range curTexts {
		if text != current[i].Text {
			return fmt.Errorf("current line %d: reconstructed %q, want %q", i+1, text, current[i].Text)
		}
	}

	return nil
}
