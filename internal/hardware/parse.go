package hardware

import (
	"fmt"
	"regexp"
	"strconv"
)

// Family is the coarse hardware category inferred from the identifier keyword.
type Family int

const (
	// FamilyUnknown is reported when no family rule matches.
	FamilyUnknown Family = iota
	FamilyPhone
	FamilyPod
	FamilyPad
)

func (f Family) String() string {
	switch f {
	case FamilyPhone:
		return "phone"
	case FamilyPod:
		return "pod"
	case FamilyPad:
		return "pad"
	default:
		return "unknown"
	}
}

// Keyword returns the identifier prefix the platform emits for f,
// or "" for FamilyUnknown.
func (f Family) Keyword() string {
	for _, r := range rules {
		if r.family == f {
			return r.keyword
		}
	}
	return ""
}

// Identifier is a parsed hardware identifier.
// Major and Minor are meaningful only when Family is not FamilyUnknown.
type Identifier struct {
	Family Family
	Major  int
	Minor  int

	// Raw is the string that was parsed.
	Raw string
}

// Valid reports whether a family rule matched.
func (id Identifier) Valid() bool {
	return id.Family != FamilyUnknown
}

// String returns the canonical form ("iPad2,1") for a matched identifier,
// or the raw input otherwise. Leading zeros in the numbers are dropped, so
// "iPhone08,01" renders as "iPhone8,1" and looks up the same catalog
// entry. Raw keeps the input as given.
func (id Identifier) String() string {
	if !id.Valid() {
		return id.Raw
	}
	return fmt.Sprintf("%s%d,%d", id.Family.Keyword(), id.Major, id.Minor)
}

type rule struct {
	family  Family
	keyword string
	re      *regexp.Regexp
}

func newRule(f Family, keyword string) rule {
	return rule{
		family:  f,
		keyword: keyword,
		re:      regexp.MustCompile(`^` + regexp.QuoteMeta(keyword) + `([0-9]+),([0-9]+)$`),
	}
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	newRule(FamilyPhone, "iPhone"),
	newRule(FamilyPod, "iPod"),
	newRule(FamilyPad, "iPad"),
}

// Parse converts a raw hardware string into an Identifier.
func Parse(raw string) Identifier {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		major, errMajor := strconv.Atoi(m[1])
		minor, errMinor := strconv.Atoi(m[2])
		if errMajor != nil || errMinor != nil {
			// out of int range
			break
		}
		return Identifier{Family: r.family, Major: major, Minor: minor, Raw: raw}
	}
	return Identifier{Family: FamilyUnknown, Raw: raw}
}
