package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/learnhub/course-backend/funct"
	"github.com/learnhub/course-backend/res"
)

// Recognized multipart fields and their limits
const (
	IMAGE_FIELD  = "image"
	VIDEOS_FIELD = "videos"
	PDFS_FIELD   = "pdfs"

	MAX_IMAGE_FILES = 1
	MAX_VIDEO_FILES = 10
	MAX_PDF_FILES   = 10
)

const IMAGES_DIR = "images"

// UploadedFiles holds the generated storage names of a single
// request, per field, in the order the files were received
type UploadedFiles struct {
	Image  string
	Videos []string
	Pdfs   []string
}

type UploadsService struct {
	basePath string
}

// Classify routes a declared media type to a storage subdirectory.
// Total: anything that is not an image goes to the general location.
func Classify(declaredType string) string {
	if strings.HasPrefix(declaredType, "image/") {
		return IMAGES_DIR
	}
	return ""
}

func generateFilename(originalName string) string {
	return strconv.FormatInt(time.Now().UnixNano(), 10) + filepath.Ext(originalName)
}

// InitDirs creates the two storage locations. Idempotent, called
// once at process start.
func (uploads *UploadsService) InitDirs() error {
	if err := os.MkdirAll(uploads.basePath, 0755); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(uploads.basePath, IMAGES_DIR), 0755)
}

// SaveFile writes one uploaded file under its classified location
// and returns the generated storage name
func (uploads *UploadsService) SaveFile(file *multipart.FileHeader) (string, error) {
	filename := generateFilename(file.Filename)
	dir := Classify(file.Header.Get("Content-Type"))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(uploads.basePath, dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

// ReceiveFiles stores every recognized file part of the form. A nil
// form means no files were attached. There is no cleanup of already
// written files when a later write fails.
func (uploads *UploadsService) ReceiveFiles(form *multipart.Form) (*UploadedFiles, *res.ErrorRes) {
	received := &UploadedFiles{
		Videos: []string{},
		Pdfs:   []string{},
	}
	if form == nil {
		return received, nil
	}

	images := form.File[IMAGE_FIELD]
	videos := form.File[VIDEOS_FIELD]
	pdfs := form.File[PDFS_FIELD]
	if len(images) > MAX_IMAGE_FILES || len(videos) > MAX_VIDEO_FILES || len(pdfs) > MAX_PDF_FILES {
		return nil, res.ValidationErr(fmt.Errorf("Too many files"))
	}

	for _, image := range images {
		filename, err := uploads.SaveFile(image)
		if err != nil {
			return nil, res.StorageErr(err)
		}
		received.Image = filename
	}
	videoNames, err := funct.Map(videos, uploads.SaveFile)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	received.Videos = videoNames
	pdfNames, err := funct.Map(pdfs, uploads.SaveFile)
	if err != nil {
		return nil, res.StorageErr(err)
	}
	received.Pdfs = pdfNames
	return received, nil
}

func NewUploadsService(basePath string) *UploadsService {
	return &UploadsService{
		basePath: basePath,
	}
}
