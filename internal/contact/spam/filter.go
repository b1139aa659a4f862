package spam

import (
	"regexp"
	"strings"
	"unicode"
)

// Reason identifies which heuristic flagged a message. Useful for
// server-side logs; callers only see a generic spam rejection.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonKeyword      Reason = "keyword"
	ReasonTooManyURLs  Reason = "too_many_urls"
	ReasonCapsDensity  Reason = "caps_density"
	ReasonRepeatedRune Reason = "repeated_chars"
)

const (
	maxURLs           = 2
	maxCapsRatio      = 0.30
	repeatedRunLength = 5
)

var denylist = []string{
	"viagra",
	"casino",
	"lottery",
	"bitcoin",
	"crypto",
	"loan",
	"free money",
	"click here",
	"act now",
	"winner",
	"congratulations you",
	"limited time offer",
}

var urlPattern = regexp.MustCompile(`https?://`)

// Filter applies the four contact-form spam heuristics. Zero value is
// ready to use.
type Filter struct{}

func New() *Filter {
	return &Filter{}
}

// Check evaluates the combined free-text fields of a submission. Any
// single heuristic hit is enough to flag the message.
func (f *Filter) Check(projectPurpose, additionalInfo string) Reason {
	combined := projectPurpose + " " + additionalInfo
	lowered := strings.ToLower(combined)

	for _, keyword := range denylist {
		if strings.Contains(lowered, keyword) {
			return ReasonKeyword
		}
	}

	if len(urlPattern.FindAllStringIndex(lowered, -1)) > maxURLs {
		return ReasonTooManyURLs
	}

	// Caps density is measured on the original-case text; lowercasing
	// first would erase the signal.
	if capsRatio(combined) > maxCapsRatio {
		return ReasonCapsDensity
	}

	if hasRepeatedRun(combined, repeatedRunLength) {
		return ReasonRepeatedRune
	}

	return ReasonNone
}

func capsRatio(s string) float64 {
	var letters, upper int
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// hasRepeatedRun reports whether any rune appears n or more times in a
// row. Go's regexp has no backreferences, so this replaces (.)\1{4,}.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
