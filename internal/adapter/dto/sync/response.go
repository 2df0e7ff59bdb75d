package sync

// Result is the response body for a single sync trigger
type Result struct {
	Success      bool   `json:"success"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	ItemsFound   int    `json:"itemsFound"`
	ItemsNew     int    `json:"itemsNew"`
	ItemsUpdated int    `json:"itemsUpdated"`
	ItemsFailed  int    `json:"itemsFailed,omitempty"`
	DurationMs   int64  `json:"durationMs"`
	Error        string `json:"error,omitempty"`
}

// Totals aggregates counts across a full sync
type Totals struct {
	Sources      int `json:"sources"`
	Succeeded    int `json:"succeeded"`
	Failed       int `json:"failed"`
	ItemsFound   int `json:"itemsFound"`
	ItemsNew     int `json:"itemsNew"`
	ItemsUpdated int `json:"itemsUpdated"`
}

// RunAllResponse is the response body for a full sync trigger
type RunAllResponse struct {
	Results []Result `json:"results"`
	Totals  Totals   `json:"totals"`
}

// RunResponse is one row of the sync run history
type RunResponse struct {
	ID            string  `json:"id"`
	Source        string  `json:"source"`
	Kind          string  `json:"kind"`
	Status        string  `json:"status"`
	ItemsFound    int     `json:"items_found"`
	ItemsNew      int     `json:"items_new"`
	ItemsUpdated  int     `json:"items_updated"`
	ItemsFailed   int     `json:"items_failed"`
	Error         *string `json:"error,omitempty"`
	ArchiveObject *string `json:"archive_object,omitempty"`
	StartedAt     string  `json:"started_at"`
	FinishedAt    *string `json:"finished_at,omitempty"`
	DurationMs    int64   `json:"duration_ms"`
}
