package model

import "time"

// Course represents a course owned by exactly one user. UserID references the
// owning user and never changes after creation; deleting the owner cascades
// to their courses.
type Course struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	EstimatedTime   *string   `db:"estimated_time" json:"estimatedTime"`
	MaterialsNeeded *string   `db:"materials_needed" json:"materialsNeeded"`
	UserID          string    `db:"user_id" json:"userId"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// CourseUpdate carries the mutable course fields for a partial update.
// Title and Description are always applied; the optional fields are applied
// only when present in the request.
type CourseUpdate struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}
