package handler

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FilesHandler serves uploaded assets (profile pictures) straight from the
// GridFS bucket they were stored in.
type FilesHandler struct {
	bucket *mongo.GridFSBucket
}

func NewFilesHandler(bucket *mongo.GridFSBucket) *FilesHandler {
	return &FilesHandler{bucket: bucket}
}

// Download handles GET /v1/files/:id.
//
// @Summary      Download an uploaded file
// @Tags         files
// @Produce      octet-stream
// @Param        id   path  string  true  "File ID"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /v1/files/{id} [get]
func (h *FilesHandler) Download(c echo.Context) error {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}

	var buf bytes.Buffer
	if _, err := h.bucket.DownloadToStream(c.Request().Context(), id, &buf); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}

	return c.Blob(http.StatusOK, http.DetectContentType(buf.Bytes()), buf.Bytes())
}
