package crawler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/reperio/internal/models"
)

const contactPage = `<html><body>
	<p>Email: sales@acmesports.in</p>
	<p>Call 9876543210</p>
</body></html>`

func TestEnrichLead_FillsMissingFields(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]fakePage{
		"https://acme.in": {body: contactPage},
	}}
	svc := newTestService(fetcher)

	lead := models.BusinessRecord{Name: "Acme Sports", Website: "https://acme.in"}
	enriched := svc.EnrichLead(context.Background(), lead)

	assert.True(t, enriched.Enriched)
	assert.Equal(t, "sales@acmesports.in", enriched.Email)
	assert.Equal(t, "+919876543210", enriched.Phone)
	assert.Equal(t, []string{"https://acme.in"}, enriched.PagesScraped)
}

func TestEnrichLead_PreservesExistingFields(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]fakePage{
		"https://acme.in": {body: contactPage},
	}}
	svc := newTestService(fetcher)

	lead := models.BusinessRecord{
		Name:    "Acme Sports",
		Website: "https://acme.in",
		Email:   "existing@acme.in",
	}
	enriched := svc.EnrichLead(context.Background(), lead)

	assert.Equal(t, "existing@acme.in", enriched.Email)
	assert.Equal(t, "+919876543210", enriched.Phone)
}

func TestEnrichLead_SchemePrefixedWhenMissing(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]fakePage{
		"https://acme.in": {body: contactPage},
	}}
	svc := newTestService(fetcher)

	lead := models.BusinessRecord{Name: "Acme Sports", Website: "acme.in"}
	enriched := svc.EnrichLead(context.Background(), lead)

	assert.Equal(t, "sales@acmesports.in", enriched.Email)
	// The record keeps the website as discovered.
	assert.Equal(t, "acme.in", enriched.Website)
}

func TestEnrichLead_NoWebsiteUnchanged(t *testing.T) {
	svc := newTestService(&fakeFetcher{pages: map[string]fakePage{}})

	lead := models.BusinessRecord{Name: "Acme Sports"}
	enriched := svc.EnrichLead(context.Background(), lead)

	assert.Equal(t, lead, enriched)
	assert.False(t, enriched.Enriched)
}

func TestEnrichLead_Idempotent(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]fakePage{
		"https://acme.in": {body: contactPage},
	}}
	svc := newTestService(fetcher)

	lead := models.BusinessRecord{Name: "Acme Sports", Website: "https://acme.in"}
	once := svc.EnrichLead(context.Background(), lead)
	twice := svc.EnrichLead(context.Background(), once)

	assert.Equal(t, once, twice)
}

func TestEnrichLeadsBatch_PreservesOrderAndLength(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]fakePage{
		"https://a.in": {body: contactPage},
		"https://c.in": {body: contactPage},
	}}
	svc := newTestService(fetcher)

	leads := []models.BusinessRecord{
		{Name: "A", Website: "https://a.in"},
		{Name: "B", Website: "https://b.in"}, // fetch 404s
		{Name: "C", Website: "https://c.in"},
		{Name: "D"}, // no website
	}

	enriched := svc.EnrichLeadsBatch(context.Background(), leads, 2)

	require.Len(t, enriched, len(leads))
	assert.Equal(t, "A", enriched[0].Name)
	assert.Equal(t, "B", enriched[1].Name)
	assert.Equal(t, "C", enriched[2].Name)
	assert.Equal(t, "D", enriched[3].Name)

	assert.Equal(t, "sales@acmesports.in", enriched[0].Email)
	assert.Empty(t, enriched[1].Email)
	assert.True(t, enriched[1].Enriched)
	assert.Equal(t, "sales@acmesports.in", enriched[2].Email)
	assert.False(t, enriched[3].Enriched)
}

func TestEnrichLeadsBatch_EmptyInput(t *testing.T) {
	svc := newTestService(&fakeFetcher{pages: map[string]fakePage{}})

	enriched := svc.EnrichLeadsBatch(context.Background(), nil, 3)

	assert.Empty(t, enriched)
}
