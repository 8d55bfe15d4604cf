package models

import (
	"github.com/learnhub/course-backend/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const QUIZ_COLLECTION = "quizzes"

var quizModel *QuizModel

type Quiz struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Level       string             `json:"level" bson:"level"`
	Questions   []interface{}      `json:"questions" bson:"questions"`
}

type QuizModel struct {
	CollectionName string
}

func (quiz *QuizModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(quiz.CollectionName)
}

func (quiz *QuizModel) GetAll() ([]Quiz, error) {
	cursor, err := quiz.Use().Find(db.Ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var quizzes []Quiz
	if err := cursor.All(db.Ctx, &quizzes); err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []Quiz{}
	}
	return quizzes, nil
}

func (quiz *QuizModel) NewDocument(data Quiz) (primitive.ObjectID, error) {
	result, err := quiz.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (quiz *QuizModel) UpdateByID(id primitive.ObjectID, update bson.M) (*Quiz, error) {
	var updated *Quiz

	after := options.After
	cursor := quiz.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: id,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: update,
			},
		},
		&options.FindOneAndUpdateOptions{
			ReturnDocument: &after,
		},
	)
	if err := cursor.Decode(&updated); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

func (quiz *QuizModel) DeleteByID(id primitive.ObjectID) (bool, error) {
	result, err := quiz.Use().DeleteOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func NewQuizModel() *QuizModel {
	if quizModel == nil {
		quizModel = &QuizModel{
			CollectionName: QUIZ_COLLECTION,
		}
	}
	return quizModel
}
