package report

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/transport"
	"github.com/dschabow91/maintrack/pkg/logger"
)

type ServiceAPI interface {
	List(ident *internal.Identity, date string) ([]*DailyReport, error)
	Get(ident *internal.Identity, id string) (*DailyReport, error)
	Create(ident *internal.Identity, dto CreateReportDTO) (*DailyReport, error)
	Update(ident *internal.Identity, id string, dto UpdateReportDTO) (*DailyReport, error)
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

	reports, err := h.Service.List(ident, r.URL.Query().Get("date"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, reports)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	rep, err := h.Service.Get(ident, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	var dto CreateReportDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	rep, err := h.Service.Create(ident, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, rep)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ident := h.identity(w, r)
	if ident == nil {
		return
	}

	var dto UpdateReportDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	rep, err := h.Service.Update(ident, chi.URLParam(r, "id"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
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
