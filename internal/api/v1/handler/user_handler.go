package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/apperror"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, v *validator.Validate, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, validate: v, logger: logger}
}

// RegisterRoutes mounts user routes. Sign-up is public; the current-user
// endpoint requires authentication.
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /users", authMw(http.HandlerFunc(h.getCurrentUser)))
	mux.Handle("POST /users", http.HandlerFunc(h.createUser))
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, h.logger, apperror.NewValidation(req.ValidationMessages(err)))
		return
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
	}
	if err := h.userService.Create(r.Context(), user, req.Password); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

func (h *UserHandler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, apperror.NewAuth("no authenticated user in context"))
		return
	}

	resp := dto.UserResponseDTO{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
	writeJSON(w, http.StatusOK, resp)
}
