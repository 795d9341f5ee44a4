package repository

import (
	"context"
	"database/sql"
	"errors"

	"app/internal/model"

	"github.com/google/uuid"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID, returning nil when absent.
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	UpdateCourse(ctx context.Context, c *model.Course) error
	DeleteCourse(ctx context.Context, courseID string) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

// ListCourses retrieves all courses
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	query := `
		SELECT id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at
		FROM courses
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var course model.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.EstimatedTime,
			&course.MaterialsNeeded,
			&course.UserID,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	return courses, nil
}

// GetCourseByID retrieves a course by its ID
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	query := `
		SELECT id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.UserID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// CreateCourse inserts a new course and fills in the generated identifier and
// timestamps.
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	c.ID = uuid.NewString()
	query := `
		INSERT INTO courses (id, title, description, estimated_time, materials_needed, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, c.ID, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.UserID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

// UpdateCourse updates an existing course record and returns updated timestamps
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3, materials_needed = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

// DeleteCourse removes a course by its ID
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	query := `DELETE FROM courses WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, courseID)
	return err
}
