package models

import (
	"github.com/learnhub/course-backend/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const COURSE_COLLECTION = "courses"

var courseModel *CourseModel

type Course struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	ImageUrl    string             `json:"imageUrl" bson:"imageUrl"`
	Duration    string             `json:"duration" bson:"duration"`
	Modules     []interface{}      `json:"modules" bson:"modules"`
	Videos      []string           `json:"videos" bson:"videos"`
	Pdfs        []string           `json:"pdfs" bson:"pdfs"`
}

type CourseModel struct {
	CollectionName string
}

func (course *CourseModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(course.CollectionName)
}

func (course *CourseModel) GetAll() ([]Course, error) {
	cursor, err := course.Use().Find(db.Ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var courses []Course
	if err := cursor.All(db.Ctx, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []Course{}
	}
	return courses, nil
}

func (course *CourseModel) GetByID(id primitive.ObjectID) (*Course, error) {
	var courseData *Course

	cursor := course.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	if err := cursor.Decode(&courseData); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, nil
		}
		return nil, err
	}
	return courseData, nil
}

func (course *CourseModel) NewDocument(data Course) (primitive.ObjectID, error) {
	result, err := course.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (course *CourseModel) UpdateByID(id primitive.ObjectID, update bson.M) (*Course, error) {
	var updated *Course

	after := options.After
	cursor := course.Use().FindOneAndUpdate(
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

func (course *CourseModel) DeleteByID(id primitive.ObjectID) (bool, error) {
	result, err := course.Use().DeleteOne(db.Ctx, bson.D{
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

func NewCourseModel() *CourseModel {
	if courseModel == nil {
		courseModel = &CourseModel{
			CollectionName: COURSE_COLLECTION,
		}
	}
	return courseModel
}
