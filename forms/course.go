package forms

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/learnhub/course-backend/funct"
)

// CourseForm carries the raw multipart fields of a course
// create/update request before normalization. Absent and empty
// `modules` must be told apart: an absent field defaults to an
// empty list, an empty string is a parse failure.
type CourseForm struct {
	Title       string
	Description string
	Price       string
	ImageUrl    string
	Duration    string
	Modules     string
	HasModules  bool
}

func NewCourseForm(c *gin.Context) *CourseForm {
	modules, hasModules := c.GetPostForm("modules")
	return &CourseForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		ImageUrl:    c.PostForm("imageUrl"),
		Duration:    c.PostForm("duration"),
		Modules:     modules,
		HasModules:  hasModules,
	}
}

// MissingRequired reports whether any create-path required field is absent
func (form *CourseForm) MissingRequired() bool {
	required := []string{form.Title, form.Description, form.Price, form.Duration}
	return funct.Some(required, func(field string) bool {
		return field == ""
	})
}

// ParsePrice coerces the raw price field into a finite number
func (form *CourseForm) ParsePrice() (float64, error) {
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, fmt.Errorf("Price must be a valid number")
	}
	return price, nil
}

// ParseModules decodes the modules field. A missing field yields an
// empty list. A string that fails to parse as JSON is an error. A
// string that parses to anything other than an array also yields an
// empty list, never an error.
func (form *CourseForm) ParseModules() ([]interface{}, error) {
	if !form.HasModules {
		return []interface{}{}, nil
	}
	var parsed interface{}
	if err := json.Unmarshal([]byte(form.Modules), &parsed); err != nil {
		return nil, fmt.Errorf("Invalid modules format")
	}
	modules, ok := parsed.([]interface{})
	if !ok {
		return []interface{}{}, nil
	}
	if modules == nil {
		modules = []interface{}{}
	}
	return modules, nil
}
