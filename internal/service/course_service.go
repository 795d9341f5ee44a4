package service

import (
	"context"

	"app/internal/apperror"
	"app/internal/model"
	"app/internal/repository"
)

var (
	// ErrCourseNotFound means no course exists for the given identifier.
	ErrCourseNotFound = apperror.NewNotFound("course not found")
	// ErrNotCourseOwner means the caller is not the course's owning user.
	ErrNotCourseOwner = apperror.NewForbidden("course owned by another user")
)

// CourseService defines the interface for course operations. Mutations check
// existence before ownership: a missing course is always reported as not
// found, never as forbidden.
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, courseID string) (*model.Course, error)
	// Create persists a course owned by c.UserID.
	Create(ctx context.Context, c *model.Course) error
	// Update applies a partial update on behalf of the caller.
	Update(ctx context.Context, callerID, courseID string, upd model.CourseUpdate) error
	// Delete removes a course on behalf of the caller.
	Delete(ctx context.Context, callerID, courseID string) error
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list courses", err)
	}
	return courses, nil
}

func (s *courseService) Get(ctx context.Context, courseID string) (*model.Course, error) {
	c, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, apperror.NewInternal("failed to retrieve course", err)
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) Create(ctx context.Context, c *model.Course) error {
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return apperror.NewInternal("failed to create course", err)
	}
	return nil
}

func (s *courseService) Update(ctx context.Context, callerID, courseID string, upd model.CourseUpdate) error {
	existing, err := s.authorize(ctx, callerID, courseID)
	if err != nil {
		return err
	}

	existing.Title = upd.Title
	existing.Description = upd.Description
	if upd.EstimatedTime != nil {
		existing.EstimatedTime = upd.EstimatedTime
	}
	if upd.MaterialsNeeded != nil {
		existing.MaterialsNeeded = upd.MaterialsNeeded
	}

	if err := s.repo.UpdateCourse(ctx, existing); err != nil {
		return apperror.NewInternal("failed to update course", err)
	}
	return nil
}

func (s *courseService) Delete(ctx context.Context, callerID, courseID string) error {
	if _, err := s.authorize(ctx, callerID, courseID); err != nil {
		return err
	}
	if err := s.repo.DeleteCourse(ctx, courseID); err != nil {
		return apperror.NewInternal("failed to delete course", err)
	}
	return nil
}

// authorize loads the course and checks ownership, in that order.
func (s *courseService) authorize(ctx context.Context, callerID, courseID string) (*model.Course, error) {
	existing, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, apperror.NewInternal("failed to retrieve course", err)
	}
	if existing == nil {
		return nil, ErrCourseNotFound
	}
	if existing.UserID != callerID {
		return nil, ErrNotCourseOwner
	}
	return existing, nil
}
