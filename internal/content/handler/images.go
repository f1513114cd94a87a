package handler

import (
	"net/http"

	"fisiohome_backend/internal/adapters/storage"
	"fisiohome_backend/platform/httpkit"
	"fisiohome_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// imagesFolder is the prefix every CMS upload lands under.
const imagesFolder = "pages"

// ImagesHandler exposes the admin media library backed by object storage.
type ImagesHandler struct {
	store storage.ImageStore
	log   *logger.Logger
}

func NewImagesHandler(store storage.ImageStore, log *logger.Logger) *ImagesHandler {
	return &ImagesHandler{store: store, log: log}
}

// RegisterRoutes mounts the media library endpoints.
func (h *ImagesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/content/images", h.Upload)
	rg.GET("/content/images", h.List)
	rg.DELETE("/content/images/*key", h.Delete)
}

func (h *ImagesHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "missing file", nil)
		return
	}

	contentType := file.Header.Get("Content-Type")
	if err := h.store.ValidateImage(contentType, file.Size); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer src.Close()

	key, err := h.store.Upload(c.Request.Context(), imagesFolder, file.Filename, contentType, src, file.Size)
	if err != nil {
		h.log.Error("image upload failed", "error", err, "file", file.Filename)
		httpkit.Error(c, http.StatusInternalServerError, "upload failed", nil)
		return
	}

	httpkit.JSON(c, http.StatusCreated, gin.H{
		"key": key,
		"url": h.store.PublicURL(key),
	})
}

func (h *ImagesHandler) List(c *gin.Context) {
	objects, err := h.store.List(c.Request.Context(), imagesFolder)
	if err != nil {
		h.log.Error("image list failed", "error", err)
		httpkit.Error(c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	if objects == nil {
		objects = []storage.Object{}
	}

	httpkit.OK(c, gin.H{"items": objects})
}

func (h *ImagesHandler) Delete(c *gin.Context) {
	// Wildcard params carry a leading slash.
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	if key == "" {
		httpkit.Error(c, http.StatusBadRequest, "missing key", nil)
		return
	}

	if err := h.store.Delete(c.Request.Context(), key); err != nil {
		h.log.Error("image delete failed", "error", err, "key", key)
		httpkit.Error(c, http.StatusInternalServerError, "delete failed", nil)
		return
	}

	httpkit.OK(c, gin.H{"deleted": key})
}
