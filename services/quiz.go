package services

import (
	"fmt"
	"strings"

	"github.com/learnhub/course-backend/forms"
	"github.com/learnhub/course-backend/models"
	"github.com/learnhub/course-backend/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Single combined message for every create-path validation failure
const QUIZ_REQUIRED_MESSAGE = "Invalid data for quiz. Please include title, description, level, and questions."

type QuizStore interface {
	GetAll() ([]models.Quiz, error)
	NewDocument(data models.Quiz) (primitive.ObjectID, error)
	UpdateByID(id primitive.ObjectID, update bson.M) (*models.Quiz, error)
	DeleteByID(id primitive.ObjectID) (bool, error)
}

type QuizService struct {
	store  QuizStore
	events Publisher
}

func (q *QuizService) GetQuizzes() ([]models.Quiz, *res.ErrorRes) {
	quizzes, err := q.store.GetAll()
	if err != nil {
		return nil, res.StorageErr(err)
	}
	return quizzes, nil
}

func (q *QuizService) UploadQuiz(form *forms.QuizForm) (*models.Quiz, *res.ErrorRes) {
	if form.Title == "" || form.Description == "" ||
		strings.TrimSpace(form.Level) == "" || len(form.Questions) == 0 {
		return nil, res.ValidationErr(fmt.Errorf(QUIZ_REQUIRED_MESSAGE))
	}
	quiz := models.Quiz{
		Title:       form.Title,
		Description: form.Description,
		Level:       form.Level,
		Questions:   form.Questions,
	}
	insertedID, err := q.store.NewDocument(quiz)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	quiz.ID = insertedID
	q.events.Publish(QUIZ_UPLOADED_EVENT, quiz)
	return &quiz, nil
}

// UpdateQuiz has no presence validation, every field replaces the
// stored value as given
func (q *QuizService) UpdateQuiz(idQuiz string, form *forms.QuizUpdateForm) (*models.Quiz, *res.ErrorRes) {
	idObjQuiz, err := primitive.ObjectIDFromHex(idQuiz)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	updated, err := q.store.UpdateByID(idObjQuiz, bson.M{
		"title":       form.Title,
		"description": form.Description,
		"level":       form.Level,
		"questions":   form.Questions,
	})
	if err != nil {
		return nil, res.StorageErr(err)
	}
	if updated == nil {
		return nil, res.NotFoundErr(fmt.Errorf("Quiz not found"))
	}
	q.events.Publish(QUIZ_UPDATED_EVENT, updated)
	return updated, nil
}

func (q *QuizService) DeleteQuiz(idQuiz string) *res.ErrorRes {
	idObjQuiz, err := primitive.ObjectIDFromHex(idQuiz)
	if err != nil {
		return res.StorageErr(err)
	}
	deleted, err := q.store.DeleteByID(idObjQuiz)
	if err != nil {
		return res.StorageErr(err)
	}
	if !deleted {
		return res.NotFoundErr(fmt.Errorf("Quiz not found"))
	}
	q.events.Publish(QUIZ_DELETED_EVENT, bson.M{"_id": idQuiz})
	return nil
}

func NewQuizService(store QuizStore, events Publisher) *QuizService {
	return &QuizService{
		store:  store,
		events: events,
	}
}
