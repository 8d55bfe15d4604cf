package services

import (
	"github.com/learnhub/course-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePublisher struct {
	subjects []string
}

func (p *fakePublisher) Publish(subject string, data interface{}) {
	p.subjects = append(p.subjects, subject)
}

type mockCourseStore struct {
	courses    []models.Course
	course     *models.Course
	insertedID primitive.ObjectID
	deleted    bool
	err        error

	lastInserted *models.Course
	lastUpdate   bson.M
	deleteCalls  int
}

func (m *mockCourseStore) GetAll() ([]models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseStore) GetByID(id primitive.ObjectID) (*models.Course, error) {
	return m.course, m.err
}

func (m *mockCourseStore) NewDocument(data models.Course) (primitive.ObjectID, error) {
	m.lastInserted = &data
	return m.insertedID, m.err
}

func (m *mockCourseStore) UpdateByID(id primitive.ObjectID, update bson.M) (*models.Course, error) {
	m.lastUpdate = update
	return m.course, m.err
}

func (m *mockCourseStore) DeleteByID(id primitive.ObjectID) (bool, error) {
	m.deleteCalls++
	return m.deleted, m.err
}

type mockQuizStore struct {
	quizzes    []models.Quiz
	quiz       *models.Quiz
	insertedID primitive.ObjectID
	deleted    bool
	err        error

	lastInserted *models.Quiz
	lastUpdate   bson.M
}

func (m *mockQuizStore) GetAll() ([]models.Quiz, error) {
	return m.quizzes, m.err
}

func (m *mockQuizStore) NewDocument(data models.Quiz) (primitive.ObjectID, error) {
	m.lastInserted = &data
	return m.insertedID, m.err
}

func (m *mockQuizStore) UpdateByID(id primitive.ObjectID, update bson.M) (*models.Quiz, error) {
	m.lastUpdate = update
	return m.quiz, m.err
}

func (m *mockQuizStore) DeleteByID(id primitive.ObjectID) (bool, error) {
	return m.deleted, m.err
}

type mockUserStore struct {
	dashboard *models.Dashboard
	err       error
	calls     int
}

func (m *mockUserStore) GetDashboard(id primitive.ObjectID) (*models.Dashboard, error) {
	m.calls++
	return m.dashboard, m.err
}
