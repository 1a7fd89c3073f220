package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damacus/iron-files/internal/filemeta"
	"github.com/damacus/iron-files/internal/models"
	"github.com/damacus/iron-files/internal/services"
	"github.com/damacus/iron-files/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingRenderer remembers the last template rendered
type recordingRenderer struct {
	name string
	data interface{}
}

func (r *recordingRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.name = name
	r.data = data
	return nil
}

var testCreds = services.Credentials{Endpoint: "play.minio.io:9000", AccessKey: "admin", SecretKey: "password"}

func newBrowserServer(t *testing.T) (*echo.Echo, *testutil.MockMinioFactory, *testutil.MockMinioClient, *recordingRenderer) {
	t.Helper()
	e := echo.New()
	renderer := &recordingRenderer{}
	e.Renderer = renderer
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())

	factory := new(testutil.MockMinioFactory)
	client := new(testutil.MockMinioClient)
	factory.On("NewClient", testCreds).Return(client, nil)

	h := NewBrowserHandler(services.NewCatalog(factory, testCreds, 100, zap.NewNop()), zap.NewNop())
	e.GET("/buckets", h.ListBuckets)
	e.GET("/buckets/:bucketName", h.BrowseBucket)
	e.GET("/buckets/:bucketName/object/info", h.GetObjectInfo)
	return e, factory, client, renderer
}

func getJSON(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBrowserHandler_ListBuckets_HTML(t *testing.T) {
	e, factory, client, renderer := newBrowserServer(t)
	admin := new(testutil.MockMinioClient)
	factory.On("NewAdminClient", testCreds).Return(admin, nil)
	admin.On("DataUsageInfo", mock.Anything).Return(madmin.DataUsageInfo{
		BucketSizes: map[string]uint64{"bucket-1": 2048},
	}, nil)
	client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{{Name: "bucket-1"}}, nil)

	rec := get(e, "/buckets")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "buckets", renderer.name)
	data := renderer.data.(map[string]interface{})
	buckets := data["Buckets"].([]models.BucketInfo)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2 KB", buckets[0].FormattedSize)
}

func TestBrowserHandler_ListBuckets_Error(t *testing.T) {
	e, _, client, _ := newBrowserServer(t)
	client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo(nil), errors.New("connection refused"))

	rec := getJSON(e, "/buckets")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "Failed to list buckets", apiErr.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestBrowserHandler_BrowseBucket_JSON(t *testing.T) {
	e, _, client, _ := newBrowserServer(t)
	client.On("ListObjectsPaginated", mock.Anything, "my-bucket", services.ListObjectsOptions{
		Prefix:            "docs/",
		MaxKeys:           100,
		ContinuationToken: "docs/a.pdf",
	}).Return(services.ListObjectsResult{
		Objects: []minio.ObjectInfo{
			{Key: "docs/old/"},
			{Key: "docs/Report.PDF", Size: 1048576},
			{Key: "docs/photo.JPG", Size: 1024},
		},
	}, nil)

	rec := getJSON(e, "/buckets/my-bucket?prefix=docs/&token=docs/a.pdf&category=Document")

	require.Equal(t, http.StatusOK, rec.Code)
	var listing models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, filemeta.CategoryDocument, listing.Category)
	require.Len(t, listing.Files, 1)
	assert.Equal(t, "Report.PDF", listing.Files[0].Name)
	assert.Equal(t, "docs/Report.PDF", listing.Files[0].Key)
	assert.Equal(t, "doc-color", listing.Files[0].IconStyle)
	assert.Equal(t, "1 MB", listing.Files[0].FormattedSize)
	require.Len(t, listing.Folders, 1)
	assert.Equal(t, "old", listing.Folders[0].Name)
}

func TestBrowserHandler_BrowseBucket_HTML(t *testing.T) {
	e, _, client, renderer := newBrowserServer(t)
	client.On("ListObjectsPaginated", mock.Anything, "my-bucket", mock.Anything).
		Return(services.ListObjectsResult{Objects: []minio.ObjectInfo{{Key: "file1.txt", Size: 123}}}, nil)

	rec := get(e, "/buckets/my-bucket")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "browser", renderer.name)
	data := renderer.data.(map[string]interface{})
	listing := data["Listing"].(*models.Listing)
	require.Len(t, listing.Files, 1)
	assert.Equal(t, "123 Bytes", listing.Files[0].FormattedSize)
	assert.Equal(t, filemeta.Categories(), data["Categories"])
}

func TestBrowserHandler_BrowseBucket_UnknownCategory(t *testing.T) {
	e, _, client, _ := newBrowserServer(t)

	rec := getJSON(e, "/buckets/my-bucket?category=spreadsheet")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	client.AssertNotCalled(t, "ListObjectsPaginated", mock.Anything, mock.Anything, mock.Anything)
}

func TestBrowserHandler_BrowseBucket_NotFound(t *testing.T) {
	e, _, client, _ := newBrowserServer(t)
	client.On("ListObjectsPaginated", mock.Anything, "nope", mock.Anything).
		Return(services.ListObjectsResult{}, minio.ErrorResponse{Code: "NoSuchBucket"})

	rec := getJSON(e, "/buckets/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestBrowserHandler_GetObjectInfo(t *testing.T) {
	e, _, client, _ := newBrowserServer(t)
	client.On("StatObject", mock.Anything, "media", "clips/intro.webm", mock.Anything).
		Return(minio.ObjectInfo{Key: "clips/intro.webm", Size: 5 * 1024 * 1024, ContentType: "video/webm"}, nil)

	rec := getJSON(e, "/buckets/media/object/info?key=clips/intro.webm")

	require.Equal(t, http.StatusOK, rec.Code)
	var info models.FileInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "intro.webm", info.Name)
	assert.Equal(t, filemeta.CategoryVideo, info.Category)
	assert.Equal(t, "default-color", info.IconStyle)
	assert.Equal(t, "5 MB", info.FormattedSize)
	assert.True(t, info.Previewable)
}

func TestBrowserHandler_GetObjectInfo_MissingKey(t *testing.T) {
	e, _, _, _ := newBrowserServer(t)

	rec := getJSON(e, "/buckets/media/object/info")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
