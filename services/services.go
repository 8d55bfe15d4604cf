package services

// Lifecycle event subjects consumed by sibling services
const (
	COURSE_UPLOADED_EVENT = "courses.uploaded"
	COURSE_UPDATED_EVENT  = "courses.updated"
	COURSE_DELETED_EVENT  = "courses.deleted"
	QUIZ_UPLOADED_EVENT   = "quizzes.uploaded"
	QUIZ_UPDATED_EVENT    = "quizzes.updated"
	QUIZ_DELETED_EVENT    = "quizzes.deleted"
)

type Publisher interface {
	Publish(subject string, data interface{})
}
