package core

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// RejectionReason names the first rule a submitted name failed.
type RejectionReason string

const (
	ReasonMissing         RejectionReason = "missing"
	ReasonLength          RejectionReason = "length"
	ReasonCharset         RejectionReason = "charset"
	ReasonKeyboardPattern RejectionReason = "keyboard_pattern"
	ReasonDegenerate      RejectionReason = "degenerate"
	ReasonNoVowel         RejectionReason = "no_vowel"
)

// Name length bounds, inclusive, measured on the trimmed value.
const (
	MinNameLength = 2
	MaxNameLength = 30
)

// Message is the client-facing text for a reason.
func (r RejectionReason) Message() string {
	switch r {
	case ReasonMissing:
		return "Name is required"
	case ReasonLength:
		return "Name must be between 2 and 30 characters"
	case ReasonCharset:
		return "Please enter a valid name (letters, spaces, hyphens only)"
	case ReasonKeyboardPattern:
		return "Please enter your real name"
	default: // degenerate, no_vowel
		return "Please enter a valid name"
	}
}

// Verdict is the outcome of Validate. Exactly one of Name / Reason is set.
type Verdict struct {
	Name   string          // trimmed value as typed, set when accepted
	Reason RejectionReason // first failing rule, set when rejected
}

// Accepted reports whether every rule passed.
func (v Verdict) Accepted() bool { return v.Reason == "" }

func accept(name string) Verdict            { return Verdict{Name: name} }
func reject(reason RejectionReason) Verdict { return Verdict{Reason: reason} }

// keyboardPatterns are contiguous keyboard runs that show up in mashed input.
var keyboardPatterns = []string{"qwerty", "asdfgh", "zxcvbn", "qazwsx", "abcdef"}

// nameShape: starts and ends with a letter; letters, spaces, hyphens, apostrophes inside.
var nameShape = regexp.MustCompile(`^[A-Za-z][A-Za-z` + spaceClass + `'-]*[A-Za-z]$`)

// candidate holds the forms of one submitted value. Normalization happens once
// here so every rule compares against the same string.
type candidate struct {
	isString   bool
	trimmed    string
	normalized string
}

func newCandidate(raw any) candidate {
	s, ok := raw.(string)
	if !ok || s == "" {
		return candidate{}
	}
	trimmed := TrimName(s)
	return candidate{isString: true, trimmed: trimmed, normalized: NormalizeName(trimmed)}
}

type rule struct {
	reason RejectionReason
	passes func(c candidate) bool
}

// rules run top to bottom; cheap checks go first.
var rules = []rule{
	{ReasonMissing, func(c candidate) bool { return c.isString }},
	{ReasonLength, func(c candidate) bool {
		n := textLength(c.trimmed)
		return n >= MinNameLength && n <= MaxNameLength
	}},
	{ReasonCharset, func(c candidate) bool {
		return textLength(c.trimmed) <= 1 || nameShape.MatchString(c.trimmed)
	}},
	{ReasonKeyboardPattern, func(c candidate) bool {
		for _, p := range keyboardPatterns {
			if strings.Contains(c.normalized, p) {
				return false
			}
		}
		return true
	}},
	{ReasonDegenerate, func(c candidate) bool { return !repeatsOneChar(c.normalized) }},
	{ReasonNoVowel, func(c candidate) bool { return strings.ContainsAny(c.normalized, "aeiou") }},
}

// Validate classifies a raw JSON value as an acceptable display name.
// It is pure: the same input always yields the same Verdict.
func Validate(raw any) Verdict {
	c := newCandidate(raw)
	for _, r := range rules {
		if !r.passes(c) {
			return reject(r.reason)
		}
	}
	return accept(c.trimmed)
}

// textLength counts UTF-16 code units so limits match what a browser reports
// for the same input field.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
			continue
		}
		n++
	}
	return n
}

// repeatsOneChar reports "aa", "xxxx" and the like: two or more of one rune.
func repeatsOneChar(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}
