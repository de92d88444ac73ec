package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/usecases"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

type uploadServiceStub struct {
	uploadFn func(ctx context.Context, userID uuid.UUID, upload *usecases.AvatarUpload) (*entities.UploadedAvatar, error)
}

func (s uploadServiceStub) UploadAvatar(ctx context.Context, userID uuid.UUID, upload *usecases.AvatarUpload) (*entities.UploadedAvatar, error) {
	return s.uploadFn(ctx, userID, upload)
}

// multipartRequest builds a form with the given fields and an optional file part
func multipartRequest(t *testing.T, method, path string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		part, err := mw.CreateFormFile(AvatarField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newUploadRouter(userID uuid.UUID, stub uploadServiceStub, maxBytes int64) *gin.Engine {
	h := NewUploadHandler(stub, maxBytes)
	r := gin.New()
	r.POST("/api/upload/avatar", asUser(userID), h.UploadAvatar)
	return r
}

func TestUploadHandler_UploadAvatar(t *testing.T) {
	userID := uuid.New()
	var got *usecases.AvatarUpload
	var body []byte
	r := newUploadRouter(userID, uploadServiceStub{
		uploadFn: func(_ context.Context, owner uuid.UUID, upload *usecases.AvatarUpload) (*entities.UploadedAvatar, error) {
			assert.Equal(t, userID, owner)
			got = upload
			body, _ = io.ReadAll(upload.Body)
			return &entities.UploadedAvatar{
				OriginalName: upload.OriginalName,
				Filename:     "profilePic-1-2.png",
				UserAvatar:   "/uploads/profilePic/profilePic-1-2.png",
			}, nil
		},
	}, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "/api/upload/avatar", nil, "Me.PNG", pngBytes))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "File uploaded successfully", resp["message"])
	assert.Equal(t, "/uploads/profilePic/profilePic-1-2.png", resp["file"].(map[string]interface{})["useravatar"])

	require.NotNil(t, got)
	assert.Equal(t, "Me.PNG", got.OriginalName)
	assert.Equal(t, ".PNG", got.Ext)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, int64(len(pngBytes)), got.Size)
	assert.Equal(t, pngBytes, body)
}

func TestUploadHandler_Rejections(t *testing.T) {
	r := newUploadRouter(uuid.New(), uploadServiceStub{
		uploadFn: func(_ context.Context, _ uuid.UUID, upload *usecases.AvatarUpload) (*entities.UploadedAvatar, error) {
			if upload == nil {
				return nil, domainerrors.BadRequest("No file uploaded")
			}
			return nil, domainerrors.NotFound("User not found")
		},
	}, 32)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "/api/upload/avatar", map[string]string{"x": "y"}, "", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decode(t, w)["message"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "/api/upload/avatar", nil, "big.png", pngBytes))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["message"], "too large")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "/api/upload/avatar", nil, "note.png", []byte("plain text")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["message"], "invalid file type")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, http.MethodPost, "/api/upload/avatar", nil, "a.png", pngBytes[:20]))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
