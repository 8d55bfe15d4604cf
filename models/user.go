package models

import (
	"github.com/learnhub/course-backend/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const USER_COLLECTION = "users"

var userModel *UserModel

// User is owned by the users service. Only the two reference
// arrays are read here, anything else is passed through on decode.
type User struct {
	ID              primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name            string               `json:"name,omitempty" bson:"name,omitempty"`
	UploadedCourses []primitive.ObjectID `json:"uploadedCourses" bson:"uploadedCourses"`
	UploadedQuizzes []primitive.ObjectID `json:"uploadedQuizzes" bson:"uploadedQuizzes"`
}

type Dashboard struct {
	UploadedCourses []Course `json:"uploadedCourses" bson:"uploadedCourses"`
	UploadedQuizzes []Quiz   `json:"uploadedQuizzes" bson:"uploadedQuizzes"`
}

type UserModel struct {
	CollectionName string
}

func (user *UserModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(user.CollectionName)
}

// GetDashboard expands uploadedCourses/uploadedQuizzes into their
// full documents. Returns nil when the instructor does not exist.
func (user *UserModel) GetDashboard(id primitive.ObjectID) (*Dashboard, error) {
	pipeline := mongo.Pipeline{
		bson.D{
			{
				Key: "$match",
				Value: bson.M{
					"_id": id,
				},
			},
		},
		bson.D{
			{
				Key: "$lookup",
				Value: bson.M{
					"from":         COURSE_COLLECTION,
					"localField":   "uploadedCourses",
					"foreignField": "_id",
					"as":           "uploadedCourses",
				},
			},
		},
		bson.D{
			{
				Key: "$lookup",
				Value: bson.M{
					"from":         QUIZ_COLLECTION,
					"localField":   "uploadedQuizzes",
					"foreignField": "_id",
					"as":           "uploadedQuizzes",
				},
			},
		},
	}
	cursor, err := user.Use().Aggregate(db.Ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var dashboards []Dashboard
	if err := cursor.All(db.Ctx, &dashboards); err != nil {
		return nil, err
	}
	if len(dashboards) == 0 {
		return nil, nil
	}
	return &dashboards[0], nil
}

func NewUserModel() *UserModel {
	if userModel == nil {
		userModel = &UserModel{
			CollectionName: USER_COLLECTION,
		}
	}
	return userModel
}
