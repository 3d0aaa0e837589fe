package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected int
	}{
		{"indiamart", "https://www.indiamart.com/acme-sports/", 10},
		{"tradeindia", "https://www.tradeindia.com/sellers/acme", 10},
		{"justdial", "https://www.justdial.com/Mumbai/acme", 9},
		{"sulekha", "https://www.sulekha.com/acme", 8},
		{"linkedin", "https://www.linkedin.com/company/acme", 6},
		{"business path on unknown host", "https://acme.in/company/about", 5},
		{"plain site", "https://acme.in/", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Priority(tt.url))
		})
	}
}

func TestPriority_Deterministic(t *testing.T) {
	url := "https://www.indiamart.com/company/acme"
	first := Priority(url)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Priority(url))
	}
}

func TestIsEligible(t *testing.T) {
	assert.True(t, IsEligible("https://www.indiamart.com/acme"))
	assert.True(t, IsEligible("https://acme.in/"))

	assert.False(t, IsEligible("https://www.youtube.com/watch?v=abc"))
	assert.False(t, IsEligible("https://en.wikipedia.org/wiki/Pickleball"))
	assert.False(t, IsEligible("https://www.ndtv.com/sports/article"))
	assert.False(t, IsEligible("https://www.quora.com/question"))
}

func TestSourceFor(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.indiamart.com/acme", "IndiaMART"},
		{"https://dir.tradeindia.com/acme", "TradeIndia"},
		{"https://www.justdial.com/Mumbai/acme", "JustDial"},
		{"https://in.linkedin.com/company/acme", "LinkedIn"},
		{"https://acme.in/", "web_search"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, SourceFor(tt.url))
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	assert.Equal(t,
		`site:indiamart.com "pickleball" Mumbai`,
		renderTemplate(`site:indiamart.com "pickleball" {city}`, "Mumbai"))

	// Templates without the placeholder pass through unchanged.
	assert.Equal(t,
		`"pickleball" distributor India`,
		renderTemplate(`"pickleball" distributor India`, "Mumbai"))
}

func TestStrategyByID(t *testing.T) {
	assert.Equal(t, "directories", strategyByID("directories").ID)
	assert.Equal(t, "manufacturers", strategyByID("manufacturers").ID)
	// Unknown IDs fall back to directories.
	assert.Equal(t, "directories", strategyByID("bogus").ID)
}
