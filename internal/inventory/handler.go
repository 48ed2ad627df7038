package inventory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/transport"
	"github.com/dschabow91/maintrack/pkg/logger"
)

type ServiceAPI interface {
	List() ([]View, error)
	Create(ident *internal.Identity, dto CreateItemDTO) (*Item, error)
	Update(id string, dto UpdateItemDTO) error
	Delete(ident *internal.Identity, id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.List()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := internal.IdentityFromContext(r.Context())
	if !ok || ident == nil {
		h.HandleError(w, internal.ErrMissingToken)
		return
	}

	var dto CreateItemDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	item, err := h.Service.Create(ident, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateItemDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	if err := h.Service.Update(chi.URLParam(r, "id"), dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := internal.IdentityFromContext(r.Context())
	if !ok || ident == nil {
		h.HandleError(w, internal.ErrMissingToken)
		return
	}

	if err := h.Service.Delete(ident, chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
