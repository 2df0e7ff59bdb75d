package sources

import (
	"strings"
	"time"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// Batch is the normalized output of one adapter fetch. Most adapters fill a
// single slice; the FisheryPulse aggregator fills meetings from many feeds.
type Batch struct {
	Actions            []entities.Action
	Meetings           []entities.Meeting
	Comments           []entities.Comment
	SSCMeetings        []entities.SSCMeeting
	SSCRecommendations []entities.SSCRecommendation
	Indicators         []entities.EcosystemIndicator

	// Raw is the fetched payload, archived verbatim for replay
	Raw []byte

	// FeedErrors carries per-feed failures from aggregating adapters. The
	// batch itself still holds whatever was fetched successfully.
	FeedErrors []error
}

// Size returns the total number of normalized records in the batch
func (b *Batch) Size() int {
	return len(b.Actions) + len(b.Meetings) + len(b.Comments) +
		len(b.SSCMeetings) + len(b.SSCRecommendations) + len(b.Indicators)
}

// parseDate accepts the date layouts council sites actually emit
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "01/02/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// optional returns nil for empty strings so they land as SQL NULLs
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// normalizeActionStatus folds the free-form status text councils publish into
// the canonical lifecycle states
func normalizeActionStatus(raw string) entities.ActionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "under development", "in development", "development":
		return entities.ActionStatusUnderDevelopment
	case "public comment", "public hearing", "comment period":
		return entities.ActionStatusPublicComment
	case "secretarial review", "under review", "nmfs review":
		return entities.ActionStatusSecretarialRev
	case "implemented", "final", "effective":
		return entities.ActionStatusImplemented
	case "withdrawn", "cancelled", "abandoned":
		return entities.ActionStatusWithdrawn
	default:
		return entities.ActionStatusUnderDevelopment
	}
}
