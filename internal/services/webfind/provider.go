// -----------------------------------------------------------------------
// Provider - Gemini-backed search provider with GoogleSearch grounding
// -----------------------------------------------------------------------

package webfind

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// Provider executes search queries through the Gemini SDK with GoogleSearch
// grounding and returns the grounded sources as search hits.
type Provider struct {
	client *genai.Client
	model  string
	logger arbor.ILogger
}

// Compile-time assertion: Provider implements SearchProvider
var _ interfaces.SearchProvider = (*Provider)(nil)

// NewProvider creates a Gemini search provider from config. The API key
// comes from config (populated from GEMINI_API_KEY when unset in the file).
func NewProvider(ctx context.Context, config *common.Config, logger arbor.ILogger) (*Provider, error) {
	if config.Search.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.Search.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Search.Model
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	return &Provider{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Search runs one grounded query and returns up to maxResults hits. The
// region hint steers results toward the target market.
func (p *Provider) Search(ctx context.Context, query, region string, maxResults int) ([]models.SearchHit, error) {
	searchTool := &genai.Tool{GoogleSearch: &genai.GoogleSearch{}}
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{searchTool},
	}

	prompt := fmt.Sprintf(`Search the web for: %s
Prefer results relevant to the %s region.
List the businesses or organisations you find with their websites and any contact details mentioned.`, query, region)

	p.logger.Debug().Str("query", query).Str("model", p.model).Msg("Executing grounded web search")

	resp, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		[]*genai.Content{
			genai.NewContentFromText(prompt, genai.RoleUser),
		},
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("grounded search failed: %w", err)
	}

	hits := extractHits(resp, maxResults)

	p.logger.Debug().Int("hits", len(hits)).Str("query", query).Msg("Grounded web search complete")

	return hits, nil
}

// extractHits converts grounding metadata into hits. Each grounding chunk
// contributes one hit; grounding supports supply snippet text for the
// chunks they reference.
func extractHits(resp *genai.GenerateContentResponse, maxResults int) []models.SearchHit {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	gm := resp.Candidates[0].GroundingMetadata

	snippets := make(map[int][]string)
	for _, support := range gm.GroundingSupports {
		if support.Segment == nil || support.Segment.Text == "" {
			continue
		}
		for _, idx := range support.GroundingChunkIndices {
			snippets[int(idx)] = append(snippets[int(idx)], support.Segment.Text)
		}
	}

	hits := make([]models.SearchHit, 0, len(gm.GroundingChunks))
	for i, chunk := range gm.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		hits = append(hits, models.SearchHit{
			URL:     chunk.Web.URI,
			Title:   chunk.Web.Title,
			Snippet: strings.Join(snippets[i], " "),
		})
		if maxResults > 0 && len(hits) >= maxResults {
			break
		}
	}

	return hits
}
