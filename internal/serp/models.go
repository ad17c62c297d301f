package serp

// Payload is the request parameter block sent to the SERP API. The
// template built from the command line is shared read-only; every call
// works on its own value copy with Query filled in.
type Payload struct {
	Domain   string `json:"domain"`
	Loc      string `json:"loc"`
	Lang     string `json:"lang"`
	Device   string `json:"device"`
	SerpType string `json:"serp_type"`
	Page     string `json:"page"`
	Verbatim string `json:"verbatim"`
	Query    string `json:"q"`
}

// DefaultPayload returns the parameter defaults matching the API's form
// defaults.
func DefaultPayload() Payload {
	return Payload{
		Domain:   "google.com",
		Loc:      "Delhi,India",
		Lang:     "en",
		Device:   "desktop",
		SerpType: "web",
		Page:     "1",
		Verbatim: "0",
	}
}

type liveRequest struct {
	Data Payload `json:"data"`
}

type organicResult struct {
	Link string `json:"link"`
}

// liveResponse mirrors only the part of the SERP response we consume.
// Any missing level decodes to a nil organic slice.
type liveResponse struct {
	Results struct {
		Results struct {
			Organic []organicResult `json:"organic"`
		} `json:"results"`
	} `json:"results"`
}

// Tally maps a hostname to the number of times it appears among the top
// organic results for one search term.
type Tally map[string]int
