package controller

import (
	"fmt"
	"time"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// saveUploadField stores every file of one multipart field and returns the
// stored metadata. Filenames are generated (timestamp + random suffix), so
// uploads are write-once and collision-free.
func saveUploadField(ctx *gin.Context, storage *service.StorageService, field, prefix string, maxBytes int64, allowed []string) ([]model.MediaFile, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, err
	}

	files := form.File[field]
	var out []model.MediaFile
	for _, fh := range files {
		if fh.Size > maxBytes {
			return nil, fmt.Errorf("file %s exceeds the %dMB limit", fh.Filename, maxBytes>>20)
		}

		sniff, err := fh.Open()
		if err != nil {
			return nil, err
		}
		mimeType, err := util.ValidateMimeType(sniff, allowed)
		sniff.Close()
		if err != nil {
			return nil, err
		}

		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		name := util.UniqueFilename(prefix, fh.Filename)
		url, err := storage.Provider.Upload(ctx.Request.Context(), name, src, fh.Size, mimeType)
		src.Close()
		if err != nil {
			return nil, err
		}

		out = append(out, model.MediaFile{
			FileName:   name,
			URL:        url,
			MimeType:   mimeType,
			Size:       fh.Size,
			UploadedAt: time.Now().Unix(),
		})
	}
	return out, nil
}
