package util

import (
	"net/url"
	"strings"
)

// CleanText collapses whitespace (nbsp included) and trims.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// AbsoluteURL resolves href against base. Unparsable hrefs come back
// unchanged rather than empty so they stay visible in logs.
func AbsoluteURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
