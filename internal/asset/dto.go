package asset

import (
	"strings"

	"github.com/dschabow91/maintrack/internal"
)

// CreateAssetDTO is the request payload for registering an asset.
type CreateAssetDTO struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Criticality string `json:"criticality"`
	Notes       string `json:"notes"`
}

func (d CreateAssetDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if !ValidCriticality(d.Criticality) {
		return internal.NewValidationError("unrecognized criticality", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateAssetDTO is the allow-list of mutable asset fields.
type UpdateAssetDTO struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	Criticality *string `json:"criticality"`
	Notes       *string `json:"notes"`
}

func (d UpdateAssetDTO) Validate() error {
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		return internal.NewValidationError("name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Criticality != nil && !ValidCriticality(*d.Criticality) {
		return internal.NewValidationError("unrecognized criticality", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d UpdateAssetDTO) Apply(a *Asset) {
	if d.Name != nil {
		a.Name = *d.Name
	}
	if d.Category != nil {
		a.Category = *d.Category
	}
	if d.Location != nil {
		a.Location = *d.Location
	}
	if d.Criticality != nil {
		a.Criticality = *d.Criticality
	}
	if d.Notes != nil {
		a.Notes = *d.Notes
	}
}
