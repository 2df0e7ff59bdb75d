package catalog

// ListActionsRequest carries action list query parameters
type ListActionsRequest struct {
	Search    string `query:"search"`
	FMP       string `query:"fmp"`
	Type      string `query:"type"`
	Status    string `query:"status"`
	Stage     string `query:"stage"`
	Source    string `query:"source"`
	SortBy    string `query:"sort"`
	SortOrder string `query:"order"`
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
}

// ListMeetingsRequest carries meeting list query parameters
type ListMeetingsRequest struct {
	Council   string `query:"council"`
	OrgType   string `query:"organization_type"`
	Region    string `query:"region"`
	Type      string `query:"type"`
	From      string `query:"from"`
	To        string `query:"to"`
	SortBy    string `query:"sort"`
	SortOrder string `query:"order"`
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
}

// ListCommentsRequest carries comment list query parameters
type ListCommentsRequest struct {
	Position  string `query:"position"`
	State     string `query:"state"`
	ActionID  string `query:"action_id"`
	Search    string `query:"search"`
	SortBy    string `query:"sort"`
	SortOrder string `query:"order"`
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
}

// ListSSCMeetingsRequest carries SSC meeting list query parameters
type ListSSCMeetingsRequest struct {
	Status   string `query:"status"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// ListSSCRecommendationsRequest carries SSC recommendation list query parameters
type ListSSCRecommendationsRequest struct {
	MeetingID string `query:"meeting_id"`
	Type      string `query:"type"`
	Species   string `query:"species"`
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
}

// ListIndicatorsRequest carries ecosystem indicator list query parameters
type ListIndicatorsRequest struct {
	Category string `query:"category"`
	Region   string `query:"region"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}
