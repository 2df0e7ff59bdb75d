package sync

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/external/sources"
)

// Counts summarizes one reconcile pass. Only committed writes are counted, so
// a rerun over identical input reports zero created and zero updated.
type Counts struct {
	Found   int
	Created int
	Updated int
	Failed  int
}

func (c *Counts) add(other Counts) {
	c.Found += other.Found
	c.Created += other.Created
	c.Updated += other.Updated
	c.Failed += other.Failed
}

// Reconciler turns normalized batches into database writes. Records are
// matched on their natural key and written only when the content fingerprint
// changed; one bad record never aborts the rest of the batch.
type Reconciler struct {
	actions   repositories.ActionRepository
	meetings  repositories.MeetingRepository
	comments  repositories.CommentRepository
	ssc       repositories.SSCRepository
	ecosystem repositories.EcosystemRepository
	logger    *zap.Logger
}

// NewReconciler creates a reconciler over the record repositories
func NewReconciler(
	actions repositories.ActionRepository,
	meetings repositories.MeetingRepository,
	comments repositories.CommentRepository,
	ssc repositories.SSCRepository,
	ecosystem repositories.EcosystemRepository,
	logger *zap.Logger,
) *Reconciler {
	return &Reconciler{
		actions:   actions,
		meetings:  meetings,
		comments:  comments,
		ssc:       ssc,
		ecosystem: ecosystem,
		logger:    logger,
	}
}

// Apply reconciles every record family present in the batch
func (r *Reconciler) Apply(ctx context.Context, batch *sources.Batch) Counts {
	var counts Counts
	counts.add(r.applyActions(ctx, batch.Actions))
	counts.add(r.applyMeetings(ctx, batch.Meetings))
	counts.add(r.applyComments(ctx, batch.Comments))
	counts.add(r.applySSCMeetings(ctx, batch.SSCMeetings))
	counts.add(r.applySSCRecommendations(ctx, batch.SSCRecommendations))
	counts.add(r.applyIndicators(ctx, batch.Indicators))
	return counts
}

func (r *Reconciler) applyActions(ctx context.Context, actions []entities.Action) Counts {
	var counts Counts
	for i := range actions {
		counts.Found++
		incoming := &actions[i]

		if incoming.ActionID == "" {
			if incoming.SourceURL == "" && incoming.Title == "" {
				counts.Failed++
				r.logger.Warn("skipping action with no identity material",
					zap.String("source", incoming.Source))
				continue
			}
			incoming.ActionID = DeriveKey(incoming.SourceURL, incoming.Title)
		}
		incoming.Fingerprint = FingerprintAction(incoming)

		existing, err := r.actions.FindByActionID(ctx, incoming.ActionID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.actions.Create(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to create action",
					zap.String("action_id", incoming.ActionID), zap.Error(err))
				continue
			}
			counts.Created++
		case err != nil:
			counts.Failed++
			r.logger.Error("failed to look up action",
				zap.String("action_id", incoming.ActionID), zap.Error(err))
		case existing.Fingerprint == incoming.Fingerprint:
			// unchanged
		default:
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := r.actions.Update(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to update action",
					zap.String("action_id", incoming.ActionID), zap.Error(err))
				continue
			}
			counts.Updated++
		}
	}
	return counts
}

func (r *Reconciler) applyMeetings(ctx context.Context, meetings []entities.Meeting) Counts {
	var counts Counts
	for i := range meetings {
		counts.Found++
		incoming := &meetings[i]

		if incoming.MeetingID == "" {
			if incoming.SourceURL == "" && incoming.Title == "" {
				counts.Failed++
				r.logger.Warn("skipping meeting with no identity material",
					zap.String("source", incoming.Source))
				continue
			}
			incoming.MeetingID = DeriveKey(incoming.SourceURL, incoming.Title)
		}
		incoming.Fingerprint = FingerprintMeeting(incoming)

		existing, err := r.meetings.FindByMeetingID(ctx, incoming.MeetingID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.meetings.Create(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to create meeting",
					zap.String("meeting_id", incoming.MeetingID), zap.Error(err))
				continue
			}
			counts.Created++
		case err != nil:
			counts.Failed++
			r.logger.Error("failed to look up meeting",
				zap.String("meeting_id", incoming.MeetingID), zap.Error(err))
		case existing.Fingerprint == incoming.Fingerprint:
			// unchanged
		default:
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := r.meetings.Update(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to update meeting",
					zap.String("meeting_id", incoming.MeetingID), zap.Error(err))
				continue
			}
			counts.Updated++
		}
	}
	return counts
}

func (r *Reconciler) applyComments(ctx context.Context, comments []entities.Comment) Counts {
	var counts Counts
	for i := range comments {
		counts.Found++
		incoming := &comments[i]

		if incoming.CommentID == "" {
			// Comments rarely carry a source URL of their own, so fall back to
			// submitter and text for identity.
			if incoming.Name == "" && incoming.CommentText == "" {
				counts.Failed++
				r.logger.Warn("skipping comment with no identity material",
					zap.String("source", incoming.Source))
				continue
			}
			incoming.CommentID = DeriveKey(incoming.Name, incoming.CommentText)
		}
		incoming.Fingerprint = FingerprintComment(incoming)

		existing, err := r.comments.FindByCommentID(ctx, incoming.CommentID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.comments.Create(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to create comment",
					zap.String("comment_id", incoming.CommentID), zap.Error(err))
				continue
			}
			counts.Created++
		case err != nil:
			counts.Failed++
			r.logger.Error("failed to look up comment",
				zap.String("comment_id", incoming.CommentID), zap.Error(err))
		case existing.Fingerprint == incoming.Fingerprint:
			// unchanged
		default:
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := r.comments.Update(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to update comment",
					zap.String("comment_id", incoming.CommentID), zap.Error(err))
				continue
			}
			counts.Updated++
		}
	}
	return counts
}

func (r *Reconciler) applySSCMeetings(ctx context.Context, meetings []entities.SSCMeeting) Counts {
	var counts Counts
	for i := range meetings {
		counts.Found++
		incoming := &meetings[i]

		if incoming.MeetingID == "" {
			if incoming.Title == "" {
				counts.Failed++
				r.logger.Warn("skipping ssc meeting with no identity material",
					zap.String("source", incoming.Source))
				continue
			}
			incoming.MeetingID = DeriveKey(canonStr(incoming.AgendaURL), incoming.Title)
		}
		incoming.Fingerprint = FingerprintSSCMeeting(incoming)

		existing, err := r.ssc.FindMeetingByID(ctx, incoming.MeetingID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.ssc.CreateMeeting(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to create ssc meeting",
					zap.String("meeting_id", incoming.MeetingID), zap.Error(err))
				continue
			}
			counts.Created++
		case err != nil:
			counts.Failed++
			r.logger.Error("failed to look up ssc meeting",
				zap.String("meeting_id", incoming.MeetingID), zap.Error(err))
		case existing.Fingerprint == incoming.Fingerprint:
			// unchanged
		default:
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := r.ssc.UpdateMeeting(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to update ssc meeting",
					zap.String("meeting_id", incoming.MeetingID), zap.Error(err))
				continue
			}
			counts.Updated++
		}
	}
	return counts
}

func (r *Reconciler) applySSCRecommendations(ctx context.Context, recs []entities.SSCRecommendation) Counts {
	var counts Counts
	for i := range recs {
		counts.Found++
		incoming := &recs[i]

		if incoming.RecommendationID == "" {
			if incoming.RecommendationText == "" {
				counts.Failed++
				r.logger.Warn("skipping ssc recommendation with no identity material",
					zap.String("source", incoming.Source))
				continue
			}
			incoming.RecommendationID = DeriveKey(incoming.MeetingID, incoming.RecommendationText)
		}
		incoming.Fingerprint = FingerprintSSCRecommendation(incoming)

		existing, err := r.ssc.FindRecommendationByID(ctx, incoming.RecommendationID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.ssc.CreateRecommendation(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to create ssc recommendation",
					zap.String("recommendation_id", incoming.RecommendationID), zap.Error(err))
				continue
			}
			counts.Created++
		case err != nil:
			counts.Failed++
			r.logger.Error("failed to look up ssc recommendation",
				zap.String("recommendation_id", incoming.RecommendationID), zap.Error(err))
		case existing.Fingerprint == incoming.Fingerprint:
			// unchanged
		default:
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := r.ssc.UpdateRecommendation(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to update ssc recommendation",
					zap.String("recommendation_id", incoming.RecommendationID), zap.Error(err))
				continue
			}
			counts.Updated++
		}
	}
	return counts
}

func (r *Reconciler) applyIndicators(ctx context.Context, indicators []entities.EcosystemIndicator) Counts {
	var counts Counts
	for i := range indicators {
		counts.Found++
		incoming := &indicators[i]

		if incoming.IndicatorID == "" {
			if incoming.Name == "" {
				counts.Failed++
				r.logger.Warn("skipping indicator with no identity material",
					zap.String("source", incoming.Source))
				continue
			}
			incoming.IndicatorID = DeriveKey(incoming.SourceURL, incoming.Name+"|"+incoming.Region)
		}
		incoming.Fingerprint = FingerprintIndicator(incoming)

		existing, err := r.ecosystem.FindByIndicatorID(ctx, incoming.IndicatorID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.ecosystem.Create(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to create indicator",
					zap.String("indicator_id", incoming.IndicatorID), zap.Error(err))
				continue
			}
			counts.Created++
		case err != nil:
			counts.Failed++
			r.logger.Error("failed to look up indicator",
				zap.String("indicator_id", incoming.IndicatorID), zap.Error(err))
		case existing.Fingerprint == incoming.Fingerprint:
			// unchanged
		default:
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := r.ecosystem.Update(ctx, incoming); err != nil {
				counts.Failed++
				r.logger.Error("failed to update indicator",
					zap.String("indicator_id", incoming.IndicatorID), zap.Error(err))
				continue
			}
			counts.Updated++
		}
	}
	return counts
}
