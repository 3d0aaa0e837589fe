package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanBusinessName(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"directory site tag", "ABC Traders Pvt Ltd - IndiaMART", "ABC Traders"},
		{"numbered pipe title", "123. XYZ Co | Home", "XYZ Co"},
		{"legal suffix only", "Acme Sports Private Limited", "Acme Sports"},
		{"llp suffix", "Meerut Sports LLP", "Meerut Sports"},
		{"trailing city", "Vinex Enterprises, Meerut", "Vinex Enterprises"},
		{"double colon separator", "Cosco India :: Official Site", "Cosco India"},
		{"clean already", "Total Pickleball India", "Total Pickleball India"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanBusinessName(tt.title))
		})
	}
}

func TestCleanBusinessName_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("A", 150)
	assert.Len(t, CleanBusinessName(long), 100)
}
