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
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, v *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: v, logger: logger}
}

// RegisterRoutes mounts course routes. Reads are public; mutations go through
// the authentication middleware.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /courses", http.HandlerFunc(h.listCourses))
	mux.Handle("GET /courses/{id}", http.HandlerFunc(h.getCourse))
	mux.Handle("POST /courses", authMw(http.HandlerFunc(h.createCourse)))
	mux.Handle("PUT /courses/{id}", authMw(http.HandlerFunc(h.updateCourse)))
	mux.Handle("DELETE /courses/{id}", authMw(http.HandlerFunc(h.deleteCourse)))
}

func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, courseResponse(&c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathCourseID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	course, err := h.courseService.Get(r.Context(), courseID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, courseResponse(course))
}

func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, apperror.NewAuth("no authenticated user in context"))
		return
	}

	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, h.logger, apperror.NewValidation(req.ValidationMessages(err)))
		return
	}

	// The authenticated user becomes the owner. A userId in the request body
	// is deliberately ignored so a caller cannot create courses on behalf of
	// someone else.
	course := &model.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          user.ID,
	}
	if err := h.courseService.Create(r.Context(), course); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/courses/"+course.ID)
	w.WriteHeader(http.StatusCreated)
}

func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, apperror.NewAuth("no authenticated user in context"))
		return
	}
	courseID, err := pathCourseID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, h.logger, apperror.NewValidation(req.ValidationMessages(err)))
		return
	}

	upd := model.CourseUpdate{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
	if err := h.courseService.Update(r.Context(), user.ID, courseID, upd); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, apperror.NewAuth("no authenticated user in context"))
		return
	}
	courseID, err := pathCourseID(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.courseService.Delete(r.Context(), user.ID, courseID); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathCourseID extracts the course identifier from the route. A malformed
// identifier can never name a stored course, so it reports not found.
func pathCourseID(r *http.Request) (string, error) {
	courseID := r.PathValue("id")
	if _, err := uuid.Parse(courseID); err != nil {
		return "", service.ErrCourseNotFound
	}
	return courseID, nil
}

func courseResponse(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
}
