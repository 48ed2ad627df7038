package pmschedule

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/transport"
	"github.com/dschabow91/maintrack/pkg/logger"
)

type ServiceAPI interface {
	List() ([]*View, error)
	Get(id string) (*View, error)
	Create(ident *internal.Identity, dto CreateScheduleDTO) (*View, error)
	Update(ident *internal.Identity, id string, dto UpdateScheduleDTO) (*View, error)
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

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) *internal.Identity {
	ident, ok := internal.IdentityFromContext(r.Context())
	if !ok || ident == nil {
		h.HandleError(w, internal.ErrMissingToken)
		return nil
	}
	return ident
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.List()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	var dto CreateScheduleDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	view, err := h.Service.Create(ident, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, view)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	var dto UpdateScheduleDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	view, err := h.Service.Update(ident, chi.URLParam(r, "id"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	if err := h.Service.Delete(ident, chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
