package core

// Confidence rates how well-corroborated a discovered prospect is.
type Confidence string

const (
	// ConfidenceHigh means the prospect was corroborated by two or more sources.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means one corroborating source, or a fully-detailed
	// candidate with none.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow means the prospect rests on extracted text alone.
	ConfidenceLow Confidence = "low"
)

// ErrorCode is a machine-readable classification of a discovery failure.
type ErrorCode string

const (
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeRateLimited         ErrorCode = "RATE_LIMITED"
	CodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	CodeLinkupUnavailable   ErrorCode = "LINKUP_UNAVAILABLE"
	CodeNoResults           ErrorCode = "NO_RESULTS"
	CodeTimeout             ErrorCode = "TIMEOUT"
	CodeInsufficientCredits ErrorCode = "INSUFFICIENT_CREDITS"
	CodeServerError         ErrorCode = "SERVER_ERROR"
)

// FocusArea narrows a discovery to a philanthropic sector.
type FocusArea string

const (
	FocusEducation      FocusArea = "education"
	FocusHealthcare     FocusArea = "healthcare"
	FocusArts           FocusArea = "arts"
	FocusEnvironment    FocusArea = "environment"
	FocusSocialServices FocusArea = "social-services"
)

// FocusAreas lists every valid focus area value.
var FocusAreas = []FocusArea{
	FocusEducation,
	FocusHealthcare,
	FocusArts,
	FocusEnvironment,
	FocusSocialServices,
}

// ParseFocusArea maps a raw string onto the closed focus-area enum.
// Unknown values return false rather than an error so callers can
// discard them without failing the whole request.
func ParseFocusArea(s string) (FocusArea, bool) {
	for _, fa := range FocusAreas {
		if string(fa) == s {
			return fa, true
		}
	}
	return "", false
}

// Location narrows a discovery geographically. Any field may be empty.
type Location struct {
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Region string `json:"region,omitempty"`
}

// Empty reports whether no location field is set.
func (l *Location) Empty() bool {
	return l == nil || (l.City == "" && l.State == "" && l.Region == "")
}

// DiscoveryRequest is a sanitized, bounds-checked discovery request.
// Construct one through ValidateRequest; treat it as immutable afterwards.
type DiscoveryRequest struct {
	Prompt       string      `json:"prompt"`
	MaxResults   int         `json:"maxResults"`
	TemplateID   string      `json:"templateId,omitempty"`
	Location     *Location   `json:"location,omitempty"`
	FocusAreas   []FocusArea `json:"focusAreas,omitempty"`
	DeepResearch bool        `json:"deepResearch,omitempty"`
}

// Source is a citation supporting a prospect or query answer.
type Source struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// DiscoveredProspect is one ranked, deduplicated candidate.
// Constructed once by the pipeline and never mutated.
type DiscoveredProspect struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Title        string     `json:"title,omitempty"`
	Company      string     `json:"company,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	Confidence   Confidence `json:"confidence"`
	MatchReasons []string   `json:"matchReasons"`
	Sources      []Source   `json:"sources"`
}

// DiscoveryResult is the outcome of one discovery call.
//
// Success distinguishes infrastructure outcomes, not match counts: a run
// where every query succeeded but nothing matched is still Success=true
// with a warning, while a run where every query errored is Success=false.
type DiscoveryResult struct {
	Success            bool                 `json:"success"`
	Prospects          []DiscoveredProspect `json:"prospects"`
	TotalFound         int                  `json:"totalFound"`
	QueryExecuted      string               `json:"queryExecuted"`
	DurationMs         int64                `json:"durationMs"`
	EstimatedCostCents int                  `json:"estimatedCostCents"`
	QueryCount         int                  `json:"queryCount"`
	Warnings           []string             `json:"warnings,omitempty"`
	Error              string               `json:"error,omitempty"`
	ErrorCode          ErrorCode            `json:"errorCode,omitempty"`
}

// RawLocation is an unvalidated location as received from a caller.
type RawLocation struct {
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Region string `json:"region,omitempty"`
}

// RawRequest is an unvalidated discovery request as received from a caller.
// It must pass through ValidateRequest before entering the pipeline.
type RawRequest struct {
	Prompt       string       `json:"prompt"`
	MaxResults   int          `json:"maxResults,omitempty"`
	TemplateID   string       `json:"templateId,omitempty"`
	Location     *RawLocation `json:"location,omitempty"`
	FocusAreas   []string     `json:"focusAreas,omitempty"`
	DeepResearch bool         `json:"deepResearch,omitempty"`
}
