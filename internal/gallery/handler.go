package gallery

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grace-celebration/backend/internal/models"
	"github.com/grace-celebration/backend/pkg/response"
	"github.com/grace-celebration/backend/pkg/storage"
)

// RegisterRequest is the body for POST /gallery (after a client uploads via
// presigned URL, the completion callback registers the metadata).
type RegisterRequest struct {
	URL        string `json:"url" binding:"required,url"`
	MimeType   string `json:"mime_type" binding:"required"`
	Caption    string `json:"caption"`
	UploadedBy string `json:"uploaded_by"`
	Path       string `json:"path"`
}

// GenerateUploadURLRequest is the body for POST /admin/gallery/generate-upload-url.
type GenerateUploadURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size" binding:"required,gt=0"`
}

// Handler handles gallery HTTP endpoints.
type Handler struct {
	repo   *Repository
	s3     *storage.S3
	logger *zap.Logger
}

// NewHandler creates a gallery handler. s3 may be nil; upload endpoints then
// report storage as unavailable while list/delete of registered items keep working.
func NewHandler(repo *Repository, s3 *storage.S3, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, s3: s3, logger: logger}
}

// List handles GET /gallery.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list media failed", zap.Error(err))
		response.Internal(c, "failed to load gallery")
		return
	}
	response.OK(c, list)
}

// Upload handles POST /gallery/upload: server-side multipart upload to the
// public media bucket, then metadata insert.
func (h *Handler) Upload(c *gin.Context) {
	if h.s3 == nil {
		response.Internal(c, "media storage not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file (form field: file)")
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !storage.ValidateMediaType(contentType, file.Filename) {
		response.BadRequest(c, "invalid file type: only images (jpg, png, webp, gif) and video (mp4, mov, webm) allowed")
		return
	}
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(file.Filename)
	}
	if file.Size > storage.MaxSizeFor(contentType) {
		response.BadRequest(c, "file too large: images up to 4MB, videos up to 16MB")
		return
	}

	rc, err := file.Open()
	if err != nil {
		h.logger.Error("open uploaded file failed", zap.Error(err))
		response.Internal(c, "failed to read file")
		return
	}
	defer rc.Close()

	key := storage.MediaKey(uuid.New().String(), file.Filename)
	url, err := h.s3.Upload(c.Request.Context(), key, contentType, rc, file.Size)
	if err != nil {
		h.logger.Error("media upload failed", zap.Error(err), zap.String("key", key))
		response.Internal(c, "failed to upload file to storage")
		return
	}

	item, err := h.saveMetadata(c, url, contentType, c.PostForm("caption"), c.PostForm("uploaded_by"), key)
	if err != nil {
		return
	}
	response.Created(c, item)
}

// Register handles POST /gallery: records metadata for a file already
// uploaded through a presigned URL.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !storage.ValidateMediaType(req.MimeType, req.Path) {
		response.BadRequest(c, "unsupported media type")
		return
	}

	path := req.Path
	if path == "" {
		path = req.URL
	}
	item, err := h.saveMetadata(c, req.URL, req.MimeType, req.Caption, req.UploadedBy, path)
	if err != nil {
		return
	}
	response.Created(c, item)
}

// saveMetadata inserts the media row; on failure it writes the HTTP error and
// returns a non-nil error so callers just bail out.
func (h *Handler) saveMetadata(c *gin.Context, url, mimeType, caption, uploadedBy, path string) (*models.MediaItem, error) {
	mediaType := models.MediaTypeImage
	if storage.IsVideoType(mimeType) {
		mediaType = models.MediaTypeVideo
	}
	if uploadedBy == "" {
		uploadedBy = "Anonymous"
	}
	item := &models.MediaItem{
		URL:        url,
		Type:       mediaType,
		MimeType:   mimeType,
		Caption:    caption,
		UploadedBy: uploadedBy,
		Path:       path,
		CreatedAt:  time.Now().UnixMilli(),
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		h.logger.Error("save media metadata failed", zap.Error(err), zap.String("url", url))
		response.Internal(c, "failed to save media")
		return nil, err
	}
	return item, nil
}

// GenerateUploadURL handles POST /admin/gallery/generate-upload-url.
func (h *Handler) GenerateUploadURL(c *gin.Context) {
	if h.s3 == nil {
		response.Internal(c, "media storage not configured")
		return
	}
	var req GenerateUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !storage.ValidateMediaType(req.ContentType, req.Filename) {
		response.BadRequest(c, "invalid file type: only images (jpg, png, webp, gif) and video (mp4, mov, webm) allowed")
		return
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(req.Filename)
	}
	if req.FileSize > storage.MaxSizeFor(contentType) {
		response.BadRequest(c, "file too large: images up to 4MB, videos up to 16MB")
		return
	}

	key := storage.MediaKey(uuid.New().String(), req.Filename)
	expire := h.s3.PresignExpire()
	url, err := h.s3.GeneratePresignedUploadURL(c.Request.Context(), key, contentType, expire)
	if err != nil {
		h.logger.Error("generate presigned upload URL failed", zap.Error(err), zap.String("bucket", h.s3.MediaBucket()))
		response.Internal(c, "media storage unavailable")
		return
	}

	response.OK(c, gin.H{
		"upload_url":   url,
		"path":         key,
		"public_url":   h.s3.PublicObjectURL(key),
		"content_type": contentType,
		"expires_in":   int(expire.Seconds()),
	})
}

// Delete handles DELETE /admin/gallery/:id. Hard delete: the row goes first,
// then the stored object best-effort. Other collections are untouched.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid media id")
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil || item == nil {
		response.NotFound(c, "media item not found")
		return
	}

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("delete media failed", zap.Error(err), zap.String("media_id", id.String()))
		response.Internal(c, "failed to delete media")
		return
	}
	if removed == 0 {
		response.NotFound(c, "media item not found")
		return
	}

	if h.s3 != nil && item.Path != "" && item.Path != item.URL {
		if err := h.s3.DeleteObject(c.Request.Context(), item.Path); err != nil {
			h.logger.Warn("delete stored object failed", zap.Error(err), zap.String("key", item.Path))
		}
	}

	response.OK(c, gin.H{"deleted": id})
}
