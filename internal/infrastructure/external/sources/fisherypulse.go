package sources

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// FisheryPulse aggregates meeting feeds from many councils and state agencies
// (sixteen-plus upstream sites). Feeds are fetched concurrently with a bounded
// group; one failing feed costs only its own slice of the batch.
type FisheryPulse struct {
	client      *Client
	feedURLs    []string
	concurrency int
}

// NewFisheryPulse creates the aggregator adapter
func NewFisheryPulse(client *Client, feedURLs []string, concurrency int) *FisheryPulse {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &FisheryPulse{client: client, feedURLs: feedURLs, concurrency: concurrency}
}

// Name returns the registered source name
func (f *FisheryPulse) Name() string { return "fisherypulse" }

// Kind returns the record family this adapter produces
func (f *FisheryPulse) Kind() entities.RecordKind { return entities.RecordKindMeeting }

// pulseFeed represents one upstream feed payload
type pulseFeed struct {
	Source           string        `json:"source"`
	Council          string        `json:"council"`
	OrganizationType string        `json:"organization_type"`
	Region           string        `json:"region"`
	Meetings         []meetingJSON `json:"meetings"`
}

// Fetch retrieves all configured feeds and merges their meetings. The batch
// is returned even when some feeds fail; those failures are listed in
// FeedErrors so the run can be recorded as partial.
func (f *FisheryPulse) Fetch(ctx context.Context) (*Batch, error) {
	var mu sync.Mutex
	batch := &Batch{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for _, feedURL := range f.feedURLs {
		g.Go(func() error {
			var feed pulseFeed
			if _, err := f.client.GetJSON(gctx, feedURL, &feed); err != nil {
				mu.Lock()
				batch.FeedErrors = append(batch.FeedErrors, fmt.Errorf("feed %s: %w", feedURL, err))
				mu.Unlock()
				// Feed failures are collected, not propagated; they must not
				// cancel sibling fetches.
				return nil
			}

			meetings := make([]entities.Meeting, 0, len(feed.Meetings))
			for _, m := range feed.Meetings {
				entity := m.toEntity(f.Name(), feed.Council, feed.OrganizationType, feed.Region)
				// Raw ids are only unique within their feed; qualify them
				// with the feed source so councils cannot collide.
				if m.ID != "" && feed.Source != "" {
					entity.MeetingID = fmt.Sprintf("fisherypulse-%s-%s", feed.Source, m.ID)
				}
				meetings = append(meetings, entity)
			}

			mu.Lock()
			batch.Meetings = append(batch.Meetings, meetings...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(batch.FeedErrors) == len(f.feedURLs) && len(f.feedURLs) > 0 {
		return nil, fmt.Errorf("all %d fisherypulse feeds failed", len(f.feedURLs))
	}

	return batch, nil
}
