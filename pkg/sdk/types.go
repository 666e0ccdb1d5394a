package sdk

// DateRange is a resolved date interval, dates in YYYY-MM-DD.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Location is a resolved place.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Flags are the boolean filters.
type Flags struct {
	Archived bool `json:"archived"`
	Favorite bool `json:"favorite"`
	Motion   bool `json:"motion"`
}

// Camera is a detected device.
type Camera struct {
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
}

// FilterSet is the structured interpretation of a query.
type FilterSet struct {
	DateRange *DateRange `json:"dateRange,omitempty"`
	Location  *Location  `json:"location,omitempty"`
	Flags     Flags      `json:"flags"`
	Camera    *Camera    `json:"camera,omitempty"`
	Residual  string     `json:"residual"`
}

// SearchPayload is the Immich advanced-search body the service produced.
type SearchPayload struct {
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	TakenAfter  string `json:"takenAfter,omitempty"`
	TakenBefore string `json:"takenBefore,omitempty"`
	IsArchived  bool   `json:"isArchived,omitempty"`
	IsFavorite  bool   `json:"isFavorite,omitempty"`
	IsMotion    bool   `json:"isMotion,omitempty"`
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Query       string `json:"query,omitempty"`
}

// ParseResult is the outcome of Parse.
type ParseResult struct {
	Filters FilterSet     `json:"filters"`
	Payload SearchPayload `json:"payload"`
	URL     string        `json:"url"`
}

// HealthStatus represents the aggregated service health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
