package sources

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// CMODWorkshops pulls the cooperative management workshop schedule. Workshops
// are normalized into the shared meeting model so the calendar views treat
// them uniformly.
type CMODWorkshops struct {
	client  *Client
	feedURL string
}

// NewCMODWorkshops creates the workshop import adapter
func NewCMODWorkshops(client *Client, feedURL string) *CMODWorkshops {
	return &CMODWorkshops{client: client, feedURL: feedURL}
}

// Name returns the registered source name
func (c *CMODWorkshops) Name() string { return "cmod-workshops" }

// Kind returns the record family this adapter produces
func (c *CMODWorkshops) Kind() entities.RecordKind { return entities.RecordKindMeeting }

// workshopsFeed represents the workshop JSON payload
type workshopsFeed struct {
	Workshops []meetingJSON `json:"workshops"`
}

// Fetch retrieves and normalizes workshops as meetings
func (c *CMODWorkshops) Fetch(ctx context.Context) (*Batch, error) {
	var feed workshopsFeed
	raw, err := c.client.GetJSON(ctx, c.feedURL, &feed)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Raw: raw}
	for _, w := range feed.Workshops {
		m := w.toEntity(c.Name(), "CMOD", "workshop", "South Atlantic")
		if m.Type == "" {
			m.Type = "workshop"
		}
		batch.Meetings = append(batch.Meetings, m)
	}
	return batch, nil
}
