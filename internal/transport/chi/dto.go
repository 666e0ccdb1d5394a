package chi

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/syntax922/immich-search/internal/domain"
	"github.com/syntax922/immich-search/internal/usecase/payload"
)

const maxQueryLen = 512

// ParseRequest is the body of POST /parse. An empty query is legal and
// yields an empty filter set.
type ParseRequest struct {
	Query string `json:"query"`
}

// Validate checks request bounds.
func (r ParseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Length(0, maxQueryLen)),
	)
}

// DateRangeDTO is a resolved date interval, dates in YYYY-MM-DD.
type DateRangeDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// LocationDTO is a resolved place.
type LocationDTO struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// FlagsDTO are the boolean filters.
type FlagsDTO struct {
	Archived bool `json:"archived"`
	Favorite bool `json:"favorite"`
	Motion   bool `json:"motion"`
}

// CameraDTO is a detected device.
type CameraDTO struct {
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
}

// FilterSetDTO mirrors the interpreted filters for API clients.
type FilterSetDTO struct {
	DateRange *DateRangeDTO `json:"dateRange,omitempty"`
	Location  *LocationDTO  `json:"location,omitempty"`
	Flags     FlagsDTO      `json:"flags"`
	Camera    *CameraDTO    `json:"camera,omitempty"`
	Residual  string        `json:"residual"`
}

// ParseResponse is the body returned by POST /parse.
type ParseResponse struct {
	Filters FilterSetDTO          `json:"filters"`
	Payload payload.SearchPayload `json:"payload"`
	URL     string                `json:"url"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeBadRequest            = "bad_request"
	codeValidationFailed      = "validation_failed"
	codeRecognizerUnavailable = "recognizer_unavailable"
	codeInternalError         = "internal_error"
)

func filterSetToDTO(fs domain.FilterSet) FilterSetDTO {
	dto := FilterSetDTO{
		Flags: FlagsDTO{
			Archived: fs.Flags.Archived,
			Favorite: fs.Flags.Favorite,
			Motion:   fs.Flags.Motion,
		},
		Residual: fs.Residual,
	}

	if fs.DateRange != nil {
		dto.DateRange = &DateRangeDTO{
			Start: fs.DateRange.Start.Format("2006-01-02"),
			End:   fs.DateRange.End.Format("2006-01-02"),
		}
	}
	if fs.Location != nil {
		dto.Location = &LocationDTO{
			City:    fs.Location.City,
			State:   fs.Location.State,
			Country: fs.Location.Country,
		}
	}
	if fs.Camera != nil {
		dto.Camera = &CameraDTO{
			Make:  fs.Camera.Make,
			Model: fs.Camera.Model,
		}
	}

	return dto
}
