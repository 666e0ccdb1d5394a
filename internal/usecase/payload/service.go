// Package payload serializes a FilterSet into the Immich advanced-search
// contract and builds the final redirect URL. Pure mapping: it never fails
// on a well-formed FilterSet.
package payload

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/syntax922/immich-search/internal/domain"
)

const dateLayout = "2006-01-02"

// SearchPayload is the JSON body Immich's advanced search accepts. Field
// names are dictated by that contract; empty fields are omitted.
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

// Config locates the downstream Immich instance.
type Config struct {
	Scheme   string
	Host     string
	Port     int
	BasePath string
}

// Service builds payloads and URLs for one configured Immich instance.
type Service struct {
	cfg Config
}

// New creates a payload builder.
func New(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Payload maps a FilterSet to the Immich payload shape.
func (s *Service) Payload(fs domain.FilterSet) SearchPayload {
	p := SearchPayload{Query: fs.Residual}

	if fs.Location != nil {
		p.City = fs.Location.City
		p.State = fs.Location.State
		p.Country = fs.Location.Country
	}
	if fs.DateRange != nil {
		p.TakenAfter = fs.DateRange.Start.Format(dateLayout)
		p.TakenBefore = fs.DateRange.End.Format(dateLayout)
	}
	p.IsArchived = fs.Flags.Archived
	p.IsFavorite = fs.Flags.Favorite
	p.IsMotion = fs.Flags.Motion
	if fs.Camera != nil {
		p.Make = fs.Camera.Make
		p.Model = fs.Camera.Model
	}

	return p
}

// Build returns the search payload together with the ready-to-open URL. The
// payload is URL-encoded JSON in the query parameter Immich's search page
// reads.
func (s *Service) Build(fs domain.FilterSet) (SearchPayload, string) {
	p := s.Payload(fs)

	// SearchPayload contains only strings and bools; marshaling cannot fail.
	body, _ := json.Marshal(p)

	return p, s.searchURL(url.QueryEscape(string(body)))
}

// RedirectURL builds the search URL from an already-JSON-encoded payload,
// as handed to the redirect endpoint.
func (s *Service) RedirectURL(rawPayload string) string {
	return s.searchURL(url.QueryEscape(rawPayload))
}

func (s *Service) searchURL(encoded string) string {
	return fmt.Sprintf("%s://%s:%d%s/search?query=%s",
		s.cfg.Scheme, s.cfg.Host, s.cfg.Port, s.cfg.BasePath, encoded)
}
