package serp

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func organicResponse(links ...string) *liveResponse {
	resp := &liveResponse{}
	for _, link := range links {
		resp.Results.Results.Organic = append(resp.Results.Results.Organic, organicResult{Link: link})
	}
	return resp
}

func TestHostnameOf(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"https url", "https://example.com/path?q=1", "example.com"},
		{"host with port", "http://blog.example.com:8080/post", "blog.example.com"},
		{"mixed-case host lowercased", "https://Example.COM/page", "example.com"},
		{"empty string", "", ""},
		{"relative path", "/results/page", ""},
		{"scheme only", "https://", ""},
		{"garbage", "ht tp://%%", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hostnameOf(tt.raw))
		})
	}
}

func TestTallyOrganic(t *testing.T) {
	t.Run("empty organic list", func(t *testing.T) {
		assert.Empty(t, tallyOrganic(organicResponse()))
	})

	t.Run("missing response levels", func(t *testing.T) {
		var resp liveResponse
		require.NoError(t, json.Unmarshal([]byte(`{}`), &resp))
		assert.Empty(t, tallyOrganic(&resp))
	})

	t.Run("single result", func(t *testing.T) {
		tally := tallyOrganic(organicResponse("https://example.com/page"))
		assert.Equal(t, Tally{"example.com": 1}, tally)
	})

	t.Run("frequency across top ten", func(t *testing.T) {
		resp := organicResponse(
			"https://a.test/1",
			"https://a.test/2",
			"https://a.test/3",
			"https://b.test/1",
			"https://b.test/2",
			"https://c.test/1",
			"https://c.test/2",
			"https://c.test/3",
			"https://c.test/4",
			"https://d.test/1",
		)
		tally := tallyOrganic(resp)
		assert.Equal(t, Tally{"a.test": 3, "b.test": 2, "c.test": 4, "d.test": 1}, tally)
	})

	t.Run("results beyond the tenth are ignored", func(t *testing.T) {
		links := make([]string, 0, 15)
		for i := 0; i < 10; i++ {
			links = append(links, fmt.Sprintf("https://inside.test/%d", i))
		}
		for i := 0; i < 5; i++ {
			links = append(links, fmt.Sprintf("https://outside.test/%d", i))
		}
		tally := tallyOrganic(organicResponse(links...))
		assert.Equal(t, Tally{"inside.test": 10}, tally)
		assert.NotContains(t, tally, "outside.test")
	})

	t.Run("case variants of one host count together", func(t *testing.T) {
		tally := tallyOrganic(organicResponse(
			"https://Example.com/a",
			"https://example.com/b",
			"https://EXAMPLE.COM/c",
		))
		assert.Equal(t, Tally{"example.com": 3}, tally)
	})

	t.Run("missing link excluded without error", func(t *testing.T) {
		tally := tallyOrganic(organicResponse("", "https://example.com/a", ""))
		assert.Equal(t, Tally{"example.com": 1}, tally)
	})

	t.Run("unusable links still occupy the window", func(t *testing.T) {
		// A linkless first entry pushes the eleventh result out even
		// though it contributes no hostname.
		links := []string{""}
		for i := 0; i < 10; i++ {
			links = append(links, "https://x.test/")
		}
		tally := tallyOrganic(organicResponse(links...))
		assert.Equal(t, Tally{"x.test": 9}, tally)
	})

	t.Run("all links unparseable yields empty tally", func(t *testing.T) {
		assert.Empty(t, tallyOrganic(organicResponse("", "/relative", "ht tp://%%")))
	})
}
