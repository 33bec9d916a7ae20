package compose

import (
	"strings"

	"github.com/byxorna/stackit/pkg/text"
	"github.com/sahilm/fuzzy"
)

const MaxTags = 5

// TagSet is an ordered set of tags capped at MaxTags.
type TagSet []string

// Add appends tag (trimmed) and reports whether it was taken. Empty tags,
// duplicates and tags past the cap are dropped without complaint.
func (s TagSet) Add(tag string) (TagSet, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" || len(s) >= MaxTags || s.Contains(tag) {
		return s, false
	}
	out := make(TagSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, tag), true
}

func (s TagSet) Remove(tag string) TagSet {
	out := make(TagSet, 0, len(s))
	for _, t := range s {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// Pop drops the last tag, as backspace does on an empty tag input.
func (s TagSet) Pop() TagSet {
	if len(s) == 0 {
		return s
	}
	return append(TagSet(nil), s[:len(s)-1]...)
}

func (s TagSet) Contains(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

func (s TagSet) Full() bool { return len(s) >= MaxTags }

// CommitsTag reports whether key finishes the tag being typed.
func CommitsTag(key string) bool {
	return key == "enter" || key == ","
}

// SuggestTags returns known tags fuzzily matching input that are not chosen
// yet, best match first. Matching ignores case and diacritics.
func SuggestTags(input string, known []string, chosen TagSet) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	candidates := make([]string, 0, len(known))
	originals := make([]string, 0, len(known))
	for _, k := range known {
		if chosen.Contains(k) {
			continue
		}
		candidates = append(candidates, text.Fold(text.Normalize(k)))
		originals = append(originals, k)
	}

	matches := fuzzy.Find(text.Fold(text.Normalize(input)), candidates)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, originals[m.Index])
	}
	return out
}
