package sources

import (
	"context"
	"fmt"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// EcosystemIndicators pulls the ecosystem status report indicator feed
type EcosystemIndicators struct {
	client  *Client
	feedURL string
}

// NewEcosystemIndicators creates the ecosystem import adapter
func NewEcosystemIndicators(client *Client, feedURL string) *EcosystemIndicators {
	return &EcosystemIndicators{client: client, feedURL: feedURL}
}

// Name returns the registered source name
func (e *EcosystemIndicators) Name() string { return "ecosystem" }

// Kind returns the record family this adapter produces
func (e *EcosystemIndicators) Kind() entities.RecordKind {
	return entities.RecordKindEcosystemIndicator
}

// indicatorsFeed represents the indicator JSON payload
type indicatorsFeed struct {
	Indicators []struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		Region     string  `json:"region"`
		Value      float64 `json:"value"`
		Unit       string  `json:"unit"`
		Trend      string  `json:"trend"`
		ObservedAt string  `json:"observed_at"`
		URL        string  `json:"url"`
	} `json:"indicators"`
}

// Fetch retrieves and normalizes ecosystem indicators
func (e *EcosystemIndicators) Fetch(ctx context.Context) (*Batch, error) {
	var feed indicatorsFeed
	raw, err := e.client.GetJSON(ctx, e.feedURL, &feed)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Raw: raw}
	for _, ind := range feed.Indicators {
		indicatorID := ""
		if ind.ID != "" {
			indicatorID = fmt.Sprintf("eco-%s", ind.ID)
		}

		batch.Indicators = append(batch.Indicators, entities.EcosystemIndicator{
			IndicatorID: indicatorID,
			Name:        ind.Name,
			Category:    ind.Category,
			Region:      ind.Region,
			Value:       ind.Value,
			Unit:        ind.Unit,
			Trend:       ind.Trend,
			ObservedAt:  parseDate(ind.ObservedAt),
			SourceURL:   ind.URL,
			Source:      e.Name(),
		})
	}
	return batch, nil
}
