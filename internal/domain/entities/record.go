package entities

// RecordKind identifies which normalized record family a sync source produces.
type RecordKind string

const (
	RecordKindAction             RecordKind = "action"
	RecordKindMeeting            RecordKind = "meeting"
	RecordKindComment            RecordKind = "comment"
	RecordKindSSCMeeting         RecordKind = "ssc_meeting"
	RecordKindSSCRecommendation  RecordKind = "ssc_recommendation"
	RecordKindEcosystemIndicator RecordKind = "ecosystem_indicator"
)
