package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/learnhub/course-backend/res"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploads(t *testing.T) *UploadsService {
	t.Helper()
	uploads := NewUploadsService(t.TempDir())
	require.NoError(t, uploads.InitDirs())
	return uploads
}

func writeFilePart(t *testing.T, w *multipart.Writer, field, filename, contentType, content string) {
	t.Helper()
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
}

func readForm(t *testing.T, body *bytes.Buffer, boundary string) *multipart.Form {
	t.Helper()
	form, err := multipart.NewReader(body, boundary).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func TestClassify(t *testing.T) {
	assert.Equal(t, IMAGES_DIR, Classify("image/png"))
	assert.Equal(t, IMAGES_DIR, Classify("image/jpeg"))
	assert.Equal(t, "", Classify("video/mp4"))
	assert.Equal(t, "", Classify("application/pdf"))
	// Total, unrecognized types go to the general location
	assert.Equal(t, "", Classify(""))
	assert.Equal(t, "", Classify("garbage"))
}

func TestGenerateFilenameKeepsExtension(t *testing.T) {
	name := generateFilename("lecture-01.mp4")
	assert.True(t, strings.HasSuffix(name, ".mp4"))
	noExt := generateFilename("README")
	assert.NotContains(t, noExt, ".")
}

func TestReceiveFilesNilForm(t *testing.T) {
	uploads := newTestUploads(t)
	received, errRes := uploads.ReceiveFiles(nil)
	require.Nil(t, errRes)
	assert.Equal(t, "", received.Image)
	assert.Equal(t, []string{}, received.Videos)
	assert.Equal(t, []string{}, received.Pdfs)
}

func TestReceiveFilesStoresAndClassifies(t *testing.T) {
	uploads := newTestUploads(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	writeFilePart(t, w, IMAGE_FIELD, "cover.png", "image/png", "png-bytes")
	writeFilePart(t, w, VIDEOS_FIELD, "lecture1.mp4", "video/mp4", "video-one")
	writeFilePart(t, w, VIDEOS_FIELD, "lecture2.mp4", "video/mp4", "video-two")
	writeFilePart(t, w, PDFS_FIELD, "notes.pdf", "application/pdf", "pdf-bytes")
	require.NoError(t, w.Close())

	received, errRes := uploads.ReceiveFiles(readForm(t, &body, w.Boundary()))
	require.Nil(t, errRes)

	// Image goes to the image location, keeps its extension
	assert.True(t, strings.HasSuffix(received.Image, ".png"))
	imageContent, err := os.ReadFile(filepath.Join(uploads.basePath, IMAGES_DIR, received.Image))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(imageContent))

	// Videos and pdfs go to the general location, receive order kept
	require.Len(t, received.Videos, 2)
	first, err := os.ReadFile(filepath.Join(uploads.basePath, received.Videos[0]))
	require.NoError(t, err)
	assert.Equal(t, "video-one", string(first))
	second, err := os.ReadFile(filepath.Join(uploads.basePath, received.Videos[1]))
	require.NoError(t, err)
	assert.Equal(t, "video-two", string(second))

	require.Len(t, received.Pdfs, 1)
	assert.True(t, strings.HasSuffix(received.Pdfs[0], ".pdf"))
}

func TestReceiveFilesFieldLimits(t *testing.T) {
	uploads := newTestUploads(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	writeFilePart(t, w, IMAGE_FIELD, "a.png", "image/png", "a")
	writeFilePart(t, w, IMAGE_FIELD, "b.png", "image/png", "b")
	require.NoError(t, w.Close())

	received, errRes := uploads.ReceiveFiles(readForm(t, &body, w.Boundary()))
	assert.Nil(t, received)
	require.NotNil(t, errRes)
	assert.Equal(t, res.ERR_VALIDATION, errRes.Kind)
	assert.Equal(t, 400, errRes.StatusCode)
}

func TestReceiveFilesWriteFailure(t *testing.T) {
	dir := t.TempDir()
	uploads := NewUploadsService(dir)
	// Directories never created, the write must fail as a storage error
	require.NoError(t, os.RemoveAll(dir))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	writeFilePart(t, w, VIDEOS_FIELD, "lecture.mp4", "video/mp4", "video")
	require.NoError(t, w.Close())

	_, errRes := uploads.ReceiveFiles(readForm(t, &body, w.Boundary()))
	require.NotNil(t, errRes)
	assert.Equal(t, res.ERR_STORAGE_FAILURE, errRes.Kind)
	assert.Equal(t, 500, errRes.StatusCode)
}
