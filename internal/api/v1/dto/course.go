package dto

// CourseCreateDTO is used for incoming course creation requests. A userId
// field in the body is accepted but ignored: the owner is always the
// authenticated user.
type CourseCreateDTO struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
	UserID          string  `json:"userId,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests. Title and
// description are validated exactly as on creation; the optional fields keep
// their stored values when absent.
type CourseUpdateDTO struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// CourseResponseDTO is the public projection returned in API responses.
type CourseResponseDTO struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          string  `json:"userId"`
}

// courseMessages maps violated rules on course DTO fields to the
// human-readable messages returned to the client.
var courseMessages = map[string]string{
	"Title":       "A title is required",
	"Description": "A description is required",
}

// ValidationMessages translates a validator error on CourseCreateDTO into the
// ordered list of rule-violation messages.
func (d *CourseCreateDTO) ValidationMessages(err error) []string {
	return translate(err, courseMessages)
}

// ValidationMessages translates a validator error on CourseUpdateDTO into the
// ordered list of rule-violation messages.
func (d *CourseUpdateDTO) ValidationMessages(err error) []string {
	return translate(err, courseMessages)
}
