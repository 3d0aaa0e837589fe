package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestContactInfo_EmailFromText(t *testing.T) {
	contact := ContactInfo("Reach us at sales@acmesports.in for bulk orders", nil)
	assert.Equal(t, "sales@acmesports.in", contact.Email)
}

func TestContactInfo_EmailObfuscatedAtNotation(t *testing.T) {
	contact := ContactInfo("Write to vijay [at] domain.com anytime", nil)
	assert.Equal(t, "vijay@domain.com", contact.Email)
}

func TestContactInfo_EmailDenyList(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"example domain", "Contact sales@example.co.in today"},
		{"noreply address", "Automated mail from noreply@acme.in"},
		{"support alias", "Mail support@acme.in for help"},
		{"platform address", "Errors go to errors@sentry.io"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := ContactInfo(tt.text, nil)
			assert.Empty(t, contact.Email)
		})
	}
}

func TestContactInfo_EmailMailtoFallback(t *testing.T) {
	doc := parseHTML(t, `<html><body><a href="mailto:orders@acmesports.in">Email us</a></body></html>`)
	contact := ContactInfo("no address in the visible text", doc)
	assert.Equal(t, "orders@acmesports.in", contact.Email)
}

func TestContactInfo_EmailMailtoDenied(t *testing.T) {
	doc := parseHTML(t, `<html><body><a href="mailto:noreply@acme.in">Email</a></body></html>`)
	contact := ContactInfo("nothing here", doc)
	assert.Empty(t, contact.Email)
}

func TestContactInfo_PhoneBareTenDigit(t *testing.T) {
	contact := ContactInfo("Call 9876543210 now", nil)
	assert.Equal(t, "+919876543210", contact.Phone)
}

func TestContactInfo_PhoneCountryCodeSpaced(t *testing.T) {
	contact := ContactInfo("Phone: +91 98765 43210", nil)
	assert.Equal(t, "+919876543210", contact.Phone)
}

func TestContactInfo_PhoneRejectsLongDigitRun(t *testing.T) {
	// 15 digits is an order number, not a phone number.
	contact := ContactInfo("Order ref 123456789012345 confirmed", nil)
	assert.Empty(t, contact.Phone)
}

func TestContactInfo_PhoneTelFallback(t *testing.T) {
	doc := parseHTML(t, `<html><body><a href="tel:+919812345678">Call</a></body></html>`)
	contact := ContactInfo("no digits in text", doc)
	assert.Equal(t, "+919812345678", contact.Phone)
}

func TestContactInfo_WhatsAppLabel(t *testing.T) {
	contact := ContactInfo("WhatsApp: +91 98765 43210", nil)
	assert.Equal(t, "+919876543210", contact.WhatsApp)
}

func TestContactInfo_WhatsAppLink(t *testing.T) {
	contact := ContactInfo("Chat at wa.me/919876543210", nil)
	assert.Equal(t, "+919876543210", contact.WhatsApp)
}

func TestContactInfo_WhatsAppBackfillsPhone(t *testing.T) {
	contact := ContactInfo("Message us on wa.me/919812345678", nil)
	assert.Equal(t, "+919812345678", contact.WhatsApp)
	assert.Equal(t, "+919812345678", contact.Phone)
}

func TestContactInfo_EmptyInput(t *testing.T) {
	contact := ContactInfo("", nil)
	assert.True(t, contact.IsEmpty())
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare ten digits", "9876543210", "+919876543210"},
		{"country code no plus", "919876543210", "+919876543210"},
		{"already normalized", "+919876543210", "+919876543210"},
		{"separators stripped", "+91 98765-43210", "+919876543210"},
		{"too short", "98765", ""},
		{"too long", "98765432109876", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePhone(tt.input))
		})
	}
}
