package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type QuizForm struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Level       string        `json:"level" binding:"required,quizLevel"`
	Questions   []interface{} `json:"questions" binding:"required,min=1"`
}

// QuizUpdateForm has no presence requirements, every field fully
// replaces the stored value as given
type QuizUpdateForm struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Level       string        `json:"level"`
	Questions   []interface{} `json:"questions"`
}

// Levels are free-form, only a blank value is rejected
var QuizLevel validator.Func = func(fl validator.FieldLevel) bool {
	level, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(level) != ""
}
