package sources

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// SAFMCMeetings pulls the council meeting schedule feed
type SAFMCMeetings struct {
	client  *Client
	feedURL string
}

// NewSAFMCMeetings creates the meeting schedule adapter
func NewSAFMCMeetings(client *Client, feedURL string) *SAFMCMeetings {
	return &SAFMCMeetings{client: client, feedURL: feedURL}
}

// Name returns the registered source name
func (s *SAFMCMeetings) Name() string { return "safmc-meetings" }

// Kind returns the record family this adapter produces
func (s *SAFMCMeetings) Kind() entities.RecordKind { return entities.RecordKindMeeting }

// meetingsFeed represents the schedule JSON payload
type meetingsFeed struct {
	Meetings []meetingJSON `json:"meetings"`
}

type meetingJSON struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Council          string   `json:"council"`
	OrganizationType string   `json:"organization_type"`
	Region           string   `json:"region"`
	Type             string   `json:"type"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Description      string   `json:"description"`
	URL              string   `json:"url"`
	Topics           []string `json:"topics"`
	SpeciesDiscussed []string `json:"species_discussed"`
	AgendaContent    string   `json:"agenda_content"`
}

// toEntity normalizes one feed meeting, filling council defaults when the
// feed omits them
func (m meetingJSON) toEntity(source, defaultCouncil, defaultOrgType, defaultRegion string) entities.Meeting {
	council := m.Council
	if council == "" {
		council = defaultCouncil
	}
	orgType := m.OrganizationType
	if orgType == "" {
		orgType = defaultOrgType
	}
	region := m.Region
	if region == "" {
		region = defaultRegion
	}

	meetingID := ""
	if m.ID != "" {
		meetingID = fmt.Sprintf("%s-%s", source, m.ID)
	}

	return entities.Meeting{
		MeetingID:        meetingID,
		Title:            m.Title,
		Council:          council,
		OrganizationType: orgType,
		Region:           region,
		Type:             m.Type,
		Location:         m.Location,
		StartDate:        parseDate(m.StartDate),
		EndDate:          parseDate(m.EndDate),
		Description:      optional(m.Description),
		SourceURL:        m.URL,
		Topics:           datatypes.NewJSONSlice(m.Topics),
		SpeciesDiscussed: datatypes.NewJSONSlice(m.SpeciesDiscussed),
		AgendaContent:    optional(m.AgendaContent),
		Source:           source,
	}
}

// Fetch retrieves and normalizes the meeting schedule
func (s *SAFMCMeetings) Fetch(ctx context.Context) (*Batch, error) {
	var feed meetingsFeed
	raw, err := s.client.GetJSON(ctx, s.feedURL, &feed)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Raw: raw}
	for _, m := range feed.Meetings {
		batch.Meetings = append(batch.Meetings,
			m.toEntity(s.Name(), "SAFMC", "council", "South Atlantic"))
	}
	return batch, nil
}
