package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fakeCourseService is an in-memory CourseService with the same ordering
// semantics as the real one.
type fakeCourseService struct {
	courses map[string]*model.Course
	order   []string
}

func newFakeCourseService() *fakeCourseService {
	return &fakeCourseService{courses: make(map[string]*model.Course)}
}

func (s *fakeCourseService) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.courses[id])
	}
	return out, nil
}

func (s *fakeCourseService) Get(_ context.Context, courseID string) (*model.Course, error) {
	c, ok := s.courses[courseID]
	if !ok {
		return nil, service.ErrCourseNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCourseService) Create(_ context.Context, c *model.Course) error {
	c.ID = uuid.NewString()
	stored := *c
	s.courses[c.ID] = &stored
	s.order = append(s.order, c.ID)
	return nil
}

func (s *fakeCourseService) Update(_ context.Context, callerID, courseID string, upd model.CourseUpdate) error {
	c, ok := s.courses[courseID]
	if !ok {
		return service.ErrCourseNotFound
	}
	if c.UserID != callerID {
		return service.ErrNotCourseOwner
	}
	c.Title = upd.Title
	c.Description = upd.Description
	if upd.EstimatedTime != nil {
		c.EstimatedTime = upd.EstimatedTime
	}
	if upd.MaterialsNeeded != nil {
		c.MaterialsNeeded = upd.MaterialsNeeded
	}
	return nil
}

func (s *fakeCourseService) Delete(_ context.Context, callerID, courseID string) error {
	c, ok := s.courses[courseID]
	if !ok {
		return service.ErrCourseNotFound
	}
	if c.UserID != callerID {
		return service.ErrNotCourseOwner
	}
	delete(s.courses, courseID)
	return nil
}

// stubAuth binds a fixed user into every request, standing in for the Basic
// auth middleware.
func stubAuth(user *model.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), user)))
		})
	}
}

func newCourseMux(svc service.CourseService, user *model.User) *http.ServeMux {
	h := NewCourseHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, stubAuth(user))
	return mux
}

func seedCourse(t *testing.T, svc *fakeCourseService, ownerID string) *model.Course {
	t.Helper()
	c := &model.Course{Title: "Build a Basics API", Description: "REST fundamentals", UserID: ownerID}
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return c
}

func do(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestListCoursesEmpty(t *testing.T) {
	mux := newCourseMux(newFakeCourseService(), &model.User{ID: "u1"})

	rr := do(mux, http.MethodGet, "/courses", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestListCoursesProjection(t *testing.T) {
	svc := newFakeCourseService()
	seedCourse(t, svc, "u1")
	mux := newCourseMux(svc, &model.User{ID: "u1"})

	rr := do(mux, http.MethodGet, "/courses", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, field := range []string{"title", "description", "estimatedTime", "materialsNeeded", "userId"} {
		if !strings.Contains(body, field) {
			t.Fatalf("expected projection field %q in %q", field, body)
		}
	}
}

func TestGetCourseIdempotent(t *testing.T) {
	svc := newFakeCourseService()
	c := seedCourse(t, svc, "u1")
	mux := newCourseMux(svc, &model.User{ID: "u1"})

	first := do(mux, http.MethodGet, "/courses/"+c.ID, "")
	second := do(mux, http.MethodGet, "/courses/"+c.ID, "")
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200s, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("expected identical projections across repeated reads")
	}
}

func TestGetCourseNotFound(t *testing.T) {
	mux := newCourseMux(newFakeCourseService(), &model.User{ID: "u1"})

	rr := do(mux, http.MethodGet, "/courses/"+uuid.NewString(), "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGetCourseMalformedID(t *testing.T) {
	mux := newCourseMux(newFakeCourseService(), &model.User{ID: "u1"})

	rr := do(mux, http.MethodGet, "/courses/not-a-uuid", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", rr.Code)
	}
}

func TestCreateCourseValidationMessages(t *testing.T) {
	mux := newCourseMux(newFakeCourseService(), &model.User{ID: "u1"})

	rr := do(mux, http.MethodPost, "/courses", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := rr.Body.String()
	titleIdx := strings.Index(body, "A title is required")
	descIdx := strings.Index(body, "A description is required")
	if titleIdx < 0 || descIdx < 0 {
		t.Fatalf("expected a message per missing field, got %q", body)
	}
	if titleIdx > descIdx {
		t.Fatalf("expected messages in field order, got %q", body)
	}
}

func TestCreateCourseOverridesOwner(t *testing.T) {
	svc := newFakeCourseService()
	mux := newCourseMux(svc, &model.User{ID: "u1"})

	rr := do(mux, http.MethodPost, "/courses",
		`{"title":"T","description":"D","userId":"someone-else"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}

	location := rr.Header().Get("Location")
	if !strings.HasPrefix(location, "/courses/") {
		t.Fatalf("expected course Location header, got %q", location)
	}
	created := svc.courses[strings.TrimPrefix(location, "/courses/")]
	if created == nil {
		t.Fatal("expected course to be stored")
	}
	if created.UserID != "u1" {
		t.Fatalf("expected owner to be the authenticated user, got %q", created.UserID)
	}
}

func TestUpdateCourseByOwner(t *testing.T) {
	svc := newFakeCourseService()
	c := seedCourse(t, svc, "u1")
	mux := newCourseMux(svc, &model.User{ID: "u1"})

	rr := do(mux, http.MethodPut, "/courses/"+c.ID, `{"title":"New","description":"Also new"}`)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if svc.courses[c.ID].Title != "New" {
		t.Fatalf("expected title to be updated, got %q", svc.courses[c.ID].Title)
	}
}

func TestUpdateCourseOrdering(t *testing.T) {
	svc := newFakeCourseService()
	c := seedCourse(t, svc, "owner")
	mux := newCourseMux(svc, &model.User{ID: "intruder"})

	// Nonexistent course: 404 even for a non-owner.
	rr := do(mux, http.MethodPut, "/courses/"+uuid.NewString(), `{"title":"T","description":"D"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing course, got %d", rr.Code)
	}

	// Existing course owned by someone else: 403.
	rr = do(mux, http.MethodPut, "/courses/"+c.ID, `{"title":"T","description":"D"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign course, got %d", rr.Code)
	}
}

func TestUpdateCourseValidation(t *testing.T) {
	svc := newFakeCourseService()
	c := seedCourse(t, svc, "u1")
	mux := newCourseMux(svc, &model.User{ID: "u1"})

	rr := do(mux, http.MethodPut, "/courses/"+c.ID, `{"estimatedTime":"1 hour"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestDeleteCourse(t *testing.T) {
	svc := newFakeCourseService()
	c := seedCourse(t, svc, "u1")
	mux := newCourseMux(svc, &model.User{ID: "u1"})

	rr := do(mux, http.MethodDelete, "/courses/"+c.ID, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if _, ok := svc.courses[c.ID]; ok {
		t.Fatal("expected course to be removed")
	}

	rr = do(mux, http.MethodDelete, "/courses/"+c.ID, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}
