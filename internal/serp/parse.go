package serp

import (
	"net/url"
	"strings"
)

// topWindow is the fixed cutoff for organic results. Entries beyond it
// never influence the tally; entries inside it with an unusable link
// still occupy a slot but contribute no hostname.
const topWindow = 10

// hostnameOf returns the lowercased host component of raw, or "" when
// raw is empty, unparseable, or has no host. It never fails.
func hostnameOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// tallyOrganic counts hostname occurrences across the first ten organic
// results of one response. An empty tally is a valid outcome, not an
// error.
func tallyOrganic(resp *liveResponse) Tally {
	organic := resp.Results.Results.Organic
	if len(organic) > topWindow {
		organic = organic[:topWindow]
	}

	tally := make(Tally)
	for _, result := range organic {
		if host := hostnameOf(result.Link); host != "" {
			tally[host]++
		}
	}
	return tally
}
