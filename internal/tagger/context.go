package tagger

import (
	"strings"

	"github.com/pkg/errors"

	"GoText/internal/analysis"
)

// WindowMode selects how a context window is measured.
type WindowMode string

const (
	Characters WindowMode = "characters"
	Words      WindowMode = "words"
)

// ParseWindowMode accepts "characters"/"chars" and "words".
func ParseWindowMode(s string) (WindowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "characters", "chars":
		return Characters, nil
	case "words":
		return Words, nil
	}
	return "", errors.Wrapf(analysis.ErrInvalidArgument, "unknown window mode %q", s)
}

// ContextTagger attaches the text before and after each annotation. The
// window is clipped at the text boundaries only; text of neighbouring
// annotations stays visible.
type ContextTagger struct {
	mode WindowMode
	size int
}

// NewContextTagger creates a ContextTagger with a window of size characters
// or words on each side.
func NewContextTagger(mode WindowMode, size int) (*ContextTagger, error) {
	if mode != Characters && mode != Words {
		return nil, errors.Wrapf(analysis.ErrInvalidArgument, "unknown window mode %q", mode)
	}
	if size < 0 {
		return nil, errors.Wrapf(analysis.ErrInvalidArgument, "window size must not be negative, got %d", size)
	}
	return &ContextTagger{mode: mode, size: size}, nil
}

// Mode returns the window mode.
func (t *ContextTagger) Mode() WindowMode { return t.mode }

// Size returns the window size.
func (t *ContextTagger) Size() int { return t.size }

// Tag returns annotations with their left and right context in text.
func (t *ContextTagger) Tag(text string, annotations []analysis.Annotation) []analysis.ContextAnnotation {
	runes := []rune(text)
	var words []analysis.Token
	if t.mode == Words {
		// StandardTokenizer never fails.
		words, _ = analysis.Collect(analysis.NewStandardTokenizer().Iterate(text))
	}

	out := make([]analysis.ContextAnnotation, 0, len(annotations))
	for _, a := range annotations {
		start, end := clip(a.Start, len(runes)), clip(a.End(), len(runes))
		var left, right int
		if t.mode == Characters {
			left, right = clip(start-t.size, len(runes)), clip(end+t.size, len(runes))
		} else {
			left, right = t.wordWindow(words, start, end, len(runes))
		}
		out = append(out, analysis.ContextAnnotation{
			Annotation:   a,
			LeftContext:  string(runes[left:start]),
			RightContext: string(runes[end:right]),
		})
	}
	return out
}

// wordWindow returns the offset of the size-th word before start and the end
// of the size-th word after end. Missing words extend the window to the text
// boundary.
func (t *ContextTagger) wordWindow(words []analysis.Token, start, end, length int) (int, int) {
	if t.size == 0 {
		return start, end
	}

	left := 0
	var before []analysis.Token
	for _, w := range words {
		if w.End() > start {
			break
		}
		before = append(before, w)
	}
	if len(before) >= t.size {
		left = before[len(before)-t.size].Start
	}

	right := length
	seen := 0
	for _, w := range words {
		if w.Start < end {
			continue
		}
		seen++
		if seen == t.size {
			right = w.End()
			break
		}
	}
	return left, right
}

func clip(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
