package page

import (
	"fmt"
	"strings"
)

// Type identifies a CMS page. The string value is the name used in messages;
// ID is the storage key.
type Type string

const (
	CodeOfConductPage Type = "CODE_OF_CONDUCT"
	LandingPage       Type = "LANDING_PAGE"
	AboutUsPage       Type = "ABOUT_US"
	TeamPage          Type = "TEAM"
)

// Types lists every known page type.
func Types() []Type { return []Type{CodeOfConductPage, LandingPage, AboutUsPage, TeamPage} }

func (t Type) String() string { return string(t) }

// ID is the storage key of the page, e.g. "code_of_conduct".
func (t Type) ID() string { return strings.ToLower(string(t)) }

// ParseType accepts either the name or the storage key of a page type.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("page: unknown page type %q", s)
}
