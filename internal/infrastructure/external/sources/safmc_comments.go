package sources

import (
	"context"
	"fmt"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// SAFMCComments pulls the public comment feed for tracked actions
type SAFMCComments struct {
	client  *Client
	feedURL string
}

// NewSAFMCComments creates the public comment adapter
func NewSAFMCComments(client *Client, feedURL string) *SAFMCComments {
	return &SAFMCComments{client: client, feedURL: feedURL}
}

// Name returns the registered source name
func (s *SAFMCComments) Name() string { return "safmc-comments" }

// Kind returns the record family this adapter produces
func (s *SAFMCComments) Kind() entities.RecordKind { return entities.RecordKindComment }

// commentsFeed represents the public comment JSON payload
type commentsFeed struct {
	Comments []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Organization string `json:"organization"`
		State        string `json:"state"`
		Position     string `json:"position"`
		CommentText  string `json:"comment_text"`
		Submitted    string `json:"submitted_date"`
		ActionID     string `json:"action_id"`
	} `json:"comments"`
}

// Fetch retrieves and normalizes public comments
func (s *SAFMCComments) Fetch(ctx context.Context) (*Batch, error) {
	var feed commentsFeed
	raw, err := s.client.GetJSON(ctx, s.feedURL, &feed)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Raw: raw}
	for _, c := range feed.Comments {
		commentID := ""
		if c.ID != "" {
			commentID = fmt.Sprintf("safmc-%s", c.ID)
		}

		actionID := c.ActionID
		if actionID != "" {
			actionID = fmt.Sprintf("safmc-%s", actionID)
		}

		batch.Comments = append(batch.Comments, entities.Comment{
			CommentID:     commentID,
			Name:          c.Name,
			Organization:  optional(c.Organization),
			State:         c.State,
			Position:      entities.NormalizePosition(c.Position),
			CommentText:   c.CommentText,
			SubmittedDate: parseDate(c.Submitted),
			ActionID:      actionID,
			Source:        s.Name(),
		})
	}
	return batch, nil
}
