package sources

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// SAFMCAmendments pulls the amendment tracker feed from the South Atlantic
// Fishery Management Council site.
type SAFMCAmendments struct {
	client  *Client
	feedURL string
}

// NewSAFMCAmendments creates the amendment tracker adapter
func NewSAFMCAmendments(client *Client, feedURL string) *SAFMCAmendments {
	return &SAFMCAmendments{client: client, feedURL: feedURL}
}

// Name returns the registered source name
func (s *SAFMCAmendments) Name() string { return "safmc-amendments" }

// Kind returns the record family this adapter produces
func (s *SAFMCAmendments) Kind() entities.RecordKind { return entities.RecordKindAction }

// amendmentsFeed represents the tracker JSON payload
type amendmentsFeed struct {
	Amendments []struct {
		ID            string `json:"id"`
		Title         string `json:"title"`
		Description   string `json:"description"`
		FMP           string `json:"fmp"`
		Type          string `json:"type"`
		Status        string `json:"status"`
		ProgressStage string `json:"progress_stage"`
		Progress      int    `json:"progress"`
		LastUpdated   string `json:"last_updated"`
		StartDate     string `json:"start_date"`
		EndDate       string `json:"end_date"`
		URL           string `json:"url"`
		Species       []struct {
			Name        string   `json:"name"`
			StockStatus string   `json:"stock_status"`
			Overfished  bool     `json:"overfished"`
			Overfishing bool     `json:"overfishing"`
			BBmsy       *float64 `json:"b_bmsy"`
		} `json:"species"`
	} `json:"amendments"`
}

// Fetch retrieves and normalizes the amendment tracker
func (s *SAFMCAmendments) Fetch(ctx context.Context) (*Batch, error) {
	var feed amendmentsFeed
	raw, err := s.client.GetJSON(ctx, s.feedURL, &feed)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Raw: raw}
	for _, a := range feed.Amendments {
		species := make([]entities.SpeciesStatus, 0, len(a.Species))
		for _, sp := range a.Species {
			species = append(species, entities.SpeciesStatus{
				Name:        sp.Name,
				StockStatus: sp.StockStatus,
				Overfished:  sp.Overfished,
				Overfishing: sp.Overfishing,
				BBmsy:       sp.BBmsy,
			})
		}

		actionID := ""
		if a.ID != "" {
			actionID = fmt.Sprintf("safmc-%s", a.ID)
		}

		action := entities.Action{
			ActionID:      actionID,
			Title:         a.Title,
			Description:   optional(a.Description),
			FMP:           a.FMP,
			Type:          a.Type,
			Status:        normalizeActionStatus(a.Status),
			ProgressStage: a.ProgressStage,
			Progress:      a.Progress,
			LastUpdated:   parseDate(a.LastUpdated),
			StartDate:     parseDate(a.StartDate),
			EndDate:       parseDate(a.EndDate),
			SourceURL:     a.URL,
			Species:       datatypes.NewJSONSlice(species),
			Source:        s.Name(),
		}
		action.ClampProgress()
		batch.Actions = append(batch.Actions, action)
	}

	return batch, nil
}
