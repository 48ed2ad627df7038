package auth

import (
	"log/slog"
	"net/http"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/transport"
	"github.com/dschabow91/maintrack/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	resp, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err, "email", dto.Email)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// Register creates a new account. The route is mounted behind RequireAdmin.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	view, err := h.Service.Register(dto)
	if err != nil {
		h.Logger.Error("registration failed", "error", err, "email", dto.Email)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, view)
}

// ChangePassword is self-service for the authenticated identity.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ident, ok := internal.IdentityFromContext(r.Context())
	if !ok || ident == nil {
		h.HandleError(w, internal.ErrMissingToken)
		return
	}

	var dto ChangePasswordDTO
	if appErr := h.DecodeStrict(r, &dto); appErr != nil {
		h.HandleError(w, appErr)
		return
	}

	if err := h.Service.ChangePassword(ident.ID, dto); err != nil {
		h.Logger.Error("password change failed", "error", err, "user_id", ident.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// AuthMiddleware verifies the bearer token and installs the identity
// snapshot into the request context. The snapshot is not re-joined against
// the user table; claims stay valid as issued until expiry.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.HandleError(w, internal.ErrMissingToken)
			return
		}

		ident, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.HandleServiceError(w, err)
			return
		}

		ctx := internal.ContextWithIdentity(r.Context(), ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route group on the admin role.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := internal.IdentityFromContext(r.Context())
		if !ok || ident == nil {
			h.HandleError(w, internal.ErrMissingToken)
			return
		}

		if !ident.IsAdmin() {
			h.Logger.Warn("admin route denied", "user_id", ident.ID, "role", ident.Role, "path", r.URL.Path)
			h.HandleError(w, internal.ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
