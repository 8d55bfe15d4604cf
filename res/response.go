package res

import "net/http"

// Error kinds
const (
	ERR_VALIDATION      = "validation"
	ERR_NOT_FOUND       = "not_found"
	ERR_STORAGE_FAILURE = "storage_failure"
)

type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"body,omitempty"`
}

// ErrorBody is the uniform failure envelope
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorRes struct {
	Err        error
	Kind       string
	StatusCode int
}

func (errRes *ErrorRes) Body() ErrorBody {
	return ErrorBody{
		Kind:    errRes.Kind,
		Message: errRes.Err.Error(),
	}
}

func ValidationErr(err error) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		Kind:       ERR_VALIDATION,
		StatusCode: http.StatusBadRequest,
	}
}

func NotFoundErr(err error) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		Kind:       ERR_NOT_FOUND,
		StatusCode: http.StatusNotFound,
	}
}

func StorageErr(err error) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		Kind:       ERR_STORAGE_FAILURE,
		StatusCode: http.StatusInternalServerError,
	}
}
