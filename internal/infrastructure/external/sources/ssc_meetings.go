package sources

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// SSCMeetings pulls the Scientific and Statistical Committee meeting feed,
// including the recommendations attached to each session.
type SSCMeetings struct {
	client  *Client
	feedURL string
}

// NewSSCMeetings creates the SSC import adapter
func NewSSCMeetings(client *Client, feedURL string) *SSCMeetings {
	return &SSCMeetings{client: client, feedURL: feedURL}
}

// Name returns the registered source name
func (s *SSCMeetings) Name() string { return "ssc-meetings" }

// Kind returns the record family this adapter produces
func (s *SSCMeetings) Kind() entities.RecordKind { return entities.RecordKindSSCMeeting }

// sscFeed represents the SSC meeting JSON payload
type sscFeed struct {
	Meetings []struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		Status          string `json:"status"`
		DateStart       string `json:"meeting_date_start"`
		DateEnd         string `json:"meeting_date_end"`
		AgendaURL       string `json:"agenda_url"`
		BriefingBookURL string `json:"briefing_book_url"`
		ReportURL       string `json:"report_url"`
		WebinarLink     string `json:"webinar_link"`
		AttendanceCount *int   `json:"attendance_count"`
		Recommendations []struct {
			ID               string   `json:"id"`
			Text             string   `json:"recommendation_text"`
			Type             string   `json:"recommendation_type"`
			ABCValue         *float64 `json:"abc_value"`
			OverfishingLimit *float64 `json:"overfishing_limit"`
			Species          []string `json:"species"`
			CouncilResponse  string   `json:"council_response"`
		} `json:"recommendations"`
	} `json:"meetings"`
}

// normalizeSSCStatus folds feed status text into the canonical states
func normalizeSSCStatus(raw string) entities.SSCMeetingStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "held", "past":
		return entities.SSCMeetingStatusCompleted
	case "cancelled", "canceled":
		return entities.SSCMeetingStatusCancelled
	default:
		return entities.SSCMeetingStatusScheduled
	}
}

// Fetch retrieves and normalizes SSC meetings and their recommendations
func (s *SSCMeetings) Fetch(ctx context.Context) (*Batch, error) {
	var feed sscFeed
	raw, err := s.client.GetJSON(ctx, s.feedURL, &feed)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Raw: raw}
	for _, m := range feed.Meetings {
		meetingID := ""
		if m.ID != "" {
			meetingID = fmt.Sprintf("ssc-%s", m.ID)
		}

		batch.SSCMeetings = append(batch.SSCMeetings, entities.SSCMeeting{
			MeetingID:        meetingID,
			Title:            m.Title,
			Status:           normalizeSSCStatus(m.Status),
			MeetingDateStart: parseDate(m.DateStart),
			MeetingDateEnd:   parseDate(m.DateEnd),
			AgendaURL:        optional(m.AgendaURL),
			BriefingBookURL:  optional(m.BriefingBookURL),
			ReportURL:        optional(m.ReportURL),
			WebinarLink:      optional(m.WebinarLink),
			AttendanceCount:  m.AttendanceCount,
			Source:           s.Name(),
		})

		for idx, r := range m.Recommendations {
			recID := r.ID
			if recID == "" {
				// Recommendations rarely carry ids upstream; key them by
				// position within their meeting so reruns stay stable.
				recID = fmt.Sprintf("%s/rec-%d", m.ID, idx)
			}

			batch.SSCRecommendations = append(batch.SSCRecommendations, entities.SSCRecommendation{
				RecommendationID:   fmt.Sprintf("ssc-%s", recID),
				MeetingID:          meetingID,
				RecommendationText: r.Text,
				RecommendationType: r.Type,
				ABCValue:           r.ABCValue,
				OverfishingLimit:   r.OverfishingLimit,
				Species:            datatypes.NewJSONSlice(r.Species),
				CouncilResponse:    optional(r.CouncilResponse),
				Source:             s.Name(),
			})
		}
	}
	return batch, nil
}
