package template

import (
	"encoding/json"

	"github.com/dschabow91/maintrack/internal"
)

type CreateTemplateDTO struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

func (d *CreateTemplateDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if len(d.Payload) == 0 {
		d.Payload = json.RawMessage("{}")
	}
	if !json.Valid(d.Payload) {
		return internal.NewValidationError("payload must be valid JSON", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateTemplateDTO struct {
	Name    *string          `json:"name"`
	Payload *json.RawMessage `json:"payload"`
}

func (d *UpdateTemplateDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return internal.NewValidationError("name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Payload != nil && !json.Valid(*d.Payload) {
		return internal.NewValidationError("payload must be valid JSON", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d *UpdateTemplateDTO) Apply(t *WorkOrderTemplate) {
	if d.Name != nil {
		t.Name = *d.Name
	}
	if d.Payload != nil {
		t.Payload = []byte(*d.Payload)
	}
}
