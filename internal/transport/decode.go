package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dschabow91/maintrack/internal"
)

// DecodeStrict decodes a JSON request body rejecting unknown fields. Partial
// updates go through an explicit allow-list of mutable fields per resource
// kind; a field outside that list is a validation error, not a silent drop.
func (h *BaseHandler) DecodeStrict(r *http.Request, dst interface{}) *internal.AppError {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return internal.NewValidationError(err.Error(), internal.ErrCodeUnknownField)
		}
		return internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed)
	}
	return nil
}
