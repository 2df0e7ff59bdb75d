package sync

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// DeriveKey builds a natural key for records whose source publishes no stable
// id: the hash of the source URL and title. Case and surrounding whitespace
// are folded so cosmetic upstream edits do not mint new identities.
func DeriveKey(sourceURL, title string) string {
	canonical := strings.ToLower(strings.TrimSpace(sourceURL)) + "|" + strings.ToLower(strings.TrimSpace(title))
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// fingerprint hashes the canonical JSON form of a record's content fields
func fingerprint(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Canonical structs below only contain marshalable fields; reaching
		// this means a programming error, and an empty fingerprint forces an
		// update rather than silently skipping one.
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// canonDate renders a date deterministically for fingerprinting
func canonDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func canonStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FingerprintAction hashes the content fields of an action. Identity fields,
// surrogate ids and timestamps are excluded so only real content changes
// register as updates.
func FingerprintAction(a *entities.Action) string {
	return fingerprint(struct {
		Title       string                   `json:"title"`
		Description string                   `json:"description"`
		FMP         string                   `json:"fmp"`
		Type        string                   `json:"type"`
		Status      entities.ActionStatus    `json:"status"`
		Stage       string                   `json:"stage"`
		Progress    int                      `json:"progress"`
		LastUpdated string                   `json:"last_updated"`
		StartDate   string                   `json:"start_date"`
		EndDate     string                   `json:"end_date"`
		SourceURL   string                   `json:"source_url"`
		Species     []entities.SpeciesStatus `json:"species"`
	}{
		a.Title, canonStr(a.Description), a.FMP, a.Type, a.Status, a.ProgressStage,
		a.Progress, canonDate(a.LastUpdated), canonDate(a.StartDate), canonDate(a.EndDate),
		a.SourceURL, a.Species,
	})
}

// FingerprintMeeting hashes the content fields of a meeting
func FingerprintMeeting(m *entities.Meeting) string {
	return fingerprint(struct {
		Title    string   `json:"title"`
		Council  string   `json:"council"`
		OrgType  string   `json:"organization_type"`
		Region   string   `json:"region"`
		Type     string   `json:"type"`
		Location string   `json:"location"`
		Start    string   `json:"start_date"`
		End      string   `json:"end_date"`
		Desc     string   `json:"description"`
		URL      string   `json:"source_url"`
		Topics   []string `json:"topics"`
		Species  []string `json:"species_discussed"`
		Agenda   string   `json:"agenda_content"`
	}{
		m.Title, m.Council, m.OrganizationType, m.Region, m.Type, m.Location,
		canonDate(m.StartDate), canonDate(m.EndDate), canonStr(m.Description),
		m.SourceURL, m.Topics, m.SpeciesDiscussed, canonStr(m.AgendaContent),
	})
}

// FingerprintComment hashes the content fields of a comment
func FingerprintComment(c *entities.Comment) string {
	return fingerprint(struct {
		Name      string                   `json:"name"`
		Org       string                   `json:"organization"`
		State     string                   `json:"state"`
		Position  entities.CommentPosition `json:"position"`
		Text      string                   `json:"comment_text"`
		Submitted string                   `json:"submitted_date"`
		ActionID  string                   `json:"action_id"`
	}{
		c.Name, canonStr(c.Organization), c.State, c.Position, c.CommentText,
		canonDate(c.SubmittedDate), c.ActionID,
	})
}

// FingerprintSSCMeeting hashes the content fields of an SSC meeting
func FingerprintSSCMeeting(m *entities.SSCMeeting) string {
	attendance := -1
	if m.AttendanceCount != nil {
		attendance = *m.AttendanceCount
	}
	return fingerprint(struct {
		Title      string                    `json:"title"`
		Status     entities.SSCMeetingStatus `json:"status"`
		Start      string                    `json:"meeting_date_start"`
		End        string                    `json:"meeting_date_end"`
		Agenda     string                    `json:"agenda_url"`
		Briefing   string                    `json:"briefing_book_url"`
		Report     string                    `json:"report_url"`
		Webinar    string                    `json:"webinar_link"`
		Attendance int                       `json:"attendance_count"`
	}{
		m.Title, m.Status, canonDate(m.MeetingDateStart), canonDate(m.MeetingDateEnd),
		canonStr(m.AgendaURL), canonStr(m.BriefingBookURL), canonStr(m.ReportURL),
		canonStr(m.WebinarLink), attendance,
	})
}

// FingerprintSSCRecommendation hashes the content fields of a recommendation
func FingerprintSSCRecommendation(r *entities.SSCRecommendation) string {
	return fingerprint(struct {
		MeetingID string   `json:"meeting_id"`
		Text      string   `json:"recommendation_text"`
		Type      string   `json:"recommendation_type"`
		ABC       *float64 `json:"abc_value"`
		OFL       *float64 `json:"overfishing_limit"`
		Species   []string `json:"species"`
		Response  string   `json:"council_response"`
	}{
		r.MeetingID, r.RecommendationText, r.RecommendationType, r.ABCValue,
		r.OverfishingLimit, r.Species, canonStr(r.CouncilResponse),
	})
}

// FingerprintIndicator hashes the content fields of an ecosystem indicator
func FingerprintIndicator(i *entities.EcosystemIndicator) string {
	return fingerprint(struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Region   string  `json:"region"`
		Value    float64 `json:"value"`
		Unit     string  `json:"unit"`
		Trend    string  `json:"trend"`
		Observed string  `json:"observed_at"`
		URL      string  `json:"source_url"`
	}{
		i.Name, i.Category, i.Region, i.Value, i.Unit, i.Trend,
		canonDate(i.ObservedAt), i.SourceURL,
	})
}
