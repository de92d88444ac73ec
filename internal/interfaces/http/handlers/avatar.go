package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/usecases"
	"lawconnect.backend/internal/validation"
)

// AvatarField is the multipart field carrying a profile picture
const AvatarField = "profilePic"

// readAvatar validates the optional profilePic part. It returns a nil upload
// when the request carries no file. The caller must close the returned body.
func readAvatar(c *gin.Context, constraints validation.FileConstraints) (*usecases.AvatarUpload, io.Closer, error) {
	header, err := c.FormFile(AvatarField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, domainerrors.BadRequest("Invalid multipart body")
	}

	mime, err := validation.ValidateFile(header, constraints)
	if err != nil {
		return nil, nil, domainerrors.BadRequest(err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, domainerrors.InternalError(err)
	}
	return &usecases.AvatarUpload{
		OriginalName: header.Filename,
		Ext:          filepath.Ext(header.Filename),
		ContentType:  mime,
		Size:         header.Size,
		Body:         file,
	}, file, nil
}
