package services

import (
	"fmt"
	"mime/multipart"

	"github.com/learnhub/course-backend/forms"
	"github.com/learnhub/course-backend/models"
	"github.com/learnhub/course-backend/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseStore interface {
	GetAll() ([]models.Course, error)
	GetByID(id primitive.ObjectID) (*models.Course, error)
	NewDocument(data models.Course) (primitive.ObjectID, error)
	UpdateByID(id primitive.ObjectID, update bson.M) (*models.Course, error)
	DeleteByID(id primitive.ObjectID) (bool, error)
}

type CourseService struct {
	store   CourseStore
	uploads *UploadsService
	events  Publisher
}

func (c *CourseService) GetCourses() ([]models.Course, *res.ErrorRes) {
	courses, err := c.store.GetAll()
	if err != nil {
		return nil, res.StorageErr(err)
	}
	return courses, nil
}

func (c *CourseService) GetCourse(idCourse string) (*models.Course, *res.ErrorRes) {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	course, err := c.store.GetByID(idObjCourse)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	if course == nil {
		return nil, res.NotFoundErr(fmt.Errorf("Course not found"))
	}
	return course, nil
}

// UploadCourse stores the attached files, normalizes the form and
// persists the course. Files are written before validation runs, so
// a rejected request can leave files behind - that matches the
// declared no-cleanup contract.
func (c *CourseService) UploadCourse(
	form *forms.CourseForm,
	multipartForm *multipart.Form,
) (*models.Course, *res.ErrorRes) {
	files, errRes := c.uploads.ReceiveFiles(multipartForm)
	if errRes != nil {
		return nil, errRes
	}
	if form.MissingRequired() {
		return nil, res.ValidationErr(
			fmt.Errorf("Title, description, price and duration are required"),
		)
	}
	price, err := form.ParsePrice()
	if err != nil {
		return nil, res.ValidationErr(err)
	}
	modules, err := form.ParseModules()
	if err != nil {
		return nil, res.ValidationErr(err)
	}
	// An uploaded image wins over the imageUrl text field
	imageUrl := files.Image
	if imageUrl == "" {
		imageUrl = form.ImageUrl
	}

	course := models.Course{
		Title:       form.Title,
		Description: form.Description,
		Price:       price,
		ImageUrl:    imageUrl,
		Duration:    form.Duration,
		Modules:     modules,
		Videos:      files.Videos,
		Pdfs:        files.Pdfs,
	}
	insertedID, err := c.store.NewDocument(course)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	course.ID = insertedID
	c.events.Publish(COURSE_UPLOADED_EVENT, course)
	return &course, nil
}

// UpdateCourse replaces every field wholesale, including the file
// lists - a request with no files empties videos/pdfs. Only the
// modules format is validated on this path.
func (c *CourseService) UpdateCourse(
	idCourse string,
	form *forms.CourseForm,
	multipartForm *multipart.Form,
) (*models.Course, *res.ErrorRes) {
	files, errRes := c.uploads.ReceiveFiles(multipartForm)
	if errRes != nil {
		return nil, errRes
	}
	modules, err := form.ParseModules()
	if err != nil {
		return nil, res.ValidationErr(err)
	}
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	// Unchecked pass-through, a non-numeric price becomes zero
	price, _ := form.ParsePrice()
	imageUrl := files.Image
	if imageUrl == "" {
		imageUrl = form.ImageUrl
	}

	updated, err := c.store.UpdateByID(idObjCourse, bson.M{
		"title":       form.Title,
		"description": form.Description,
		"price":       price,
		"imageUrl":    imageUrl,
		"duration":    form.Duration,
		"modules":     modules,
		"videos":      files.Videos,
		"pdfs":        files.Pdfs,
	})
	if err != nil {
		return nil, res.StorageErr(err)
	}
	if updated == nil {
		return nil, res.NotFoundErr(fmt.Errorf("Course not found"))
	}
	c.events.Publish(COURSE_UPDATED_EVENT, updated)
	return updated, nil
}

// DeleteCourse validates the identifier format before touching the
// store. No other path does this.
func (c *CourseService) DeleteCourse(idCourse string) *res.ErrorRes {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return res.ValidationErr(fmt.Errorf("Invalid course ID format"))
	}
	deleted, err := c.store.DeleteByID(idObjCourse)
	if err != nil {
		return res.StorageErr(err)
	}
	if !deleted {
		return res.NotFoundErr(fmt.Errorf("Course not found"))
	}
	c.events.Publish(COURSE_DELETED_EVENT, bson.M{"_id": idCourse})
	return nil
}

func NewCourseService(store CourseStore, uploads *UploadsService, events Publisher) *CourseService {
	return &CourseService{
		store:   store,
		uploads: uploads,
		events:  events,
	}
}
