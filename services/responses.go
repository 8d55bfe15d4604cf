package services

import "github.com/learnhub/course-backend/models"

type CourseUploadedRes struct {
	Message string         `json:"message"`
	Course  *models.Course `json:"course"`
}

type QuizRes struct {
	Message string       `json:"message"`
	Quiz    *models.Quiz `json:"quiz"`
}

type MessageRes struct {
	Message string `json:"message"`
}
