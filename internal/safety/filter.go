// Package safety screens question content against a fixed deny-list of
// terms unsuitable for young children.
//
// This is a best-effort lexical filter, not semantic moderation: it
// guarantees no banned term appears as a whole word, and nothing more.
// It is the last line of defense behind the prompt-level safety
// constraints, not a replacement for them.
package safety

import (
	"regexp"
	"strings"
)

// denyList holds terms that must never appear in content shown to
// children aged 6-10. Matching is whole-word and case-insensitive so
// that safe words merely containing a banned substring (e.g. "badge",
// "skill") are not rejected.
var denyList = []string{
	"scary", "frightening", "death", "kill", "violence", "weapon",
	"blood", "hurt", "pain", "fight", "war", "bomb", "gun", "knife",
	"dangerous", "poison", "toxic", "hate", "stupid", "dumb", "bad",
	"evil", "monster", "ghost", "devil", "hell", "damn",
}

var denyPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(denyList, "|") + `)\b`)

// IsSafe reports whether text contains no deny-listed term.
func IsSafe(text string) bool {
	return !denyPattern.MatchString(text)
}

// FirstViolation returns the first deny-listed term found in text, or
// "" if the text is clean. Used for actionable rejection messages.
func FirstViolation(text string) string {
	m := denyPattern.FindString(text)
	return strings.ToLower(m)
}
