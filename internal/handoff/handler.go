package handoff

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/transport"
	"github.com/dschabow91/maintrack/pkg/logger"
)

type ServiceAPI interface {
	List(ident *internal.Identity) ([]*Handoff, error)
	Get(ident *internal.Identity, id string) (*Handoff, error)
	Create(ident *internal.Identity, dto CreateHandoffDTO) (*Handoff, error)
	Update(ident *internal.Identity, id string, dto UpdateHandoffDTO) (*Handoff, error)
	Pickup(ident *internal.Identity, id string) (*Handoff, error)
	Done(ident *internal.Identity, id string) (*Handoff, error)
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
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	handoffs, err := h.Service.List(ident)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, handoffs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	ho, err := h.Service.Get(ident, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ho)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	var dto CreateHandoffDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	ho, err := h.Service.Create(ident, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ho)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	var dto UpdateHandoffDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	ho, err := h.Service.Update(ident, chi.URLParam(r, "id"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ho)
}

func (h *Handler) Pickup(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	ho, err := h.Service.Pickup(ident, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ho)
}

func (h *Handler) Done(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	ho, err := h.Service.Done(ident, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ho)
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
