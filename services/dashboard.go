package services

import (
	"fmt"

	"github.com/learnhub/course-backend/models"
	"github.com/learnhub/course-backend/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	GetDashboard(id primitive.ObjectID) (*models.Dashboard, error)
}

type DashboardService struct {
	store UserStore
}

// GetDashboard expands the instructor's uploadedCourses and
// uploadedQuizzes references into full documents. Each sequence
// defaults to empty independently.
func (d *DashboardService) GetDashboard(idInstructor string) (*models.Dashboard, *res.ErrorRes) {
	if idInstructor == "" {
		return nil, res.ValidationErr(fmt.Errorf("Invalid instructor ID"))
	}
	idObjInstructor, err := primitive.ObjectIDFromHex(idInstructor)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	dashboard, err := d.store.GetDashboard(idObjInstructor)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	if dashboard == nil {
		return nil, res.NotFoundErr(fmt.Errorf("Instructor not found"))
	}
	if dashboard.UploadedCourses == nil {
		dashboard.UploadedCourses = []models.Course{}
	}
	if dashboard.UploadedQuizzes == nil {
		dashboard.UploadedQuizzes = []models.Quiz{}
	}
	return dashboard, nil
}

func NewDashboardService(store UserStore) *DashboardService {
	return &DashboardService{
		store: store,
	}
}
