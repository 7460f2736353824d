package objects

import (
	"errors"
	"os"

	"oss-bridge/core/logger"
	"oss-bridge/core/middleware/rayid"
	"oss-bridge/core/storage"
	"oss-bridge/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bucket objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the objects routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleDelete)
	group.Get("/exists", h.HandleExists)
	group.Get("/sign", h.HandleSign)
	group.Get("/url", h.HandleURL)
	group.Get("/content", h.HandleContent)
	group.Get("/events", h.HandleEvents)
	group.Post("/upload", h.HandleUpload)
	group.Post("/dirs", h.HandleCreateDir)
}

// CreateDirRequest is the body of POST /objects/dirs.
type CreateDirRequest struct {
	Name string `json:"name"`
}

// HandleList lists objects in the bucket.
// @Summary List Objects
// @Description Lists object keys and directory prefixes. With raw=true the full listing including pagination state is returned.
// @Tags objects
// @Produce json
// @Param prefix query string false "Key prefix"
// @Param delimiter query string false "Grouping delimiter (e.g. '/')"
// @Param marker query string false "Start listing after this key"
// @Param max_keys query int false "Maximum entries (default 100, max 1000)"
// @Param raw query boolean false "Return the raw listing"
// @Success 200 {object} storage.ListResult "Listing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := storage.ListOptions{
		Prefix:    c.Query("prefix"),
		Delimiter: c.Query("delimiter"),
		Marker:    c.Query("marker"),
		MaxKeys:   utils.ToInt(c.Query("max_keys")),
	}

	if utils.ToBool(c.Query("raw")) {
		listing, err := h.service.ListRaw(c.Context(), opts)
		if err != nil {
			return h.fail(c, l, "List failed", err)
		}
		return c.JSON(listing)
	}

	result, err := h.service.List(c.Context(), opts)
	if err != nil {
		return h.fail(c, l, "List failed", err)
	}
	return c.JSON(result)
}

// HandleExists checks whether an object exists.
// @Summary Check Object Existence
// @Tags objects
// @Produce json
// @Param path query string true "Object key"
// @Success 200 {object} map[string]interface{} "Existence"
// @Failure 400 {object} map[string]string "Missing path"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/exists [get]
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	path := c.Query("path")
	if path == "" {
		return missingPath(c)
	}

	exists, err := h.service.Exists(c.Context(), path)
	if err != nil {
		return h.fail(c, l, "Existence check failed", err)
	}
	return c.JSON(fiber.Map{"path": path, "exists": exists})
}

// HandleSign returns a signed URL for an object.
// @Summary Sign Object URL
// @Description Returns a time-limited GET URL. The object is not checked for existence.
// @Tags objects
// @Produce json
// @Param path query string true "Object key"
// @Success 200 {object} map[string]string "Signed URL"
// @Failure 400 {object} map[string]string "Missing path"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/sign [get]
func (h *Handler) HandleSign(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	path := c.Query("path")
	if path == "" {
		return missingPath(c)
	}

	signed, err := h.service.Sign(c.Context(), path)
	if err != nil {
		return h.fail(c, l, "Signing failed", err)
	}
	return c.JSON(fiber.Map{"path": path, "url": signed})
}

// HandleURL returns the URL clients should use for an object.
// @Summary Object URL
// @Description Returns a signed URL for private buckets and the plain object URL for public ones.
// @Tags objects
// @Produce json
// @Param path query string true "Object key"
// @Success 200 {object} map[string]string "URL"
// @Failure 400 {object} map[string]string "Missing path"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/url [get]
func (h *Handler) HandleURL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	path := c.Query("path")
	if path == "" {
		return missingPath(c)
	}

	u, err := h.service.URL(c.Context(), path)
	if err != nil {
		return h.fail(c, l, "URL resolution failed", err)
	}
	return c.JSON(fiber.Map{"path": path, "url": u})
}

// HandleContent returns the contents of an object.
// @Summary Read Object
// @Description Reads an object through a signed URL. With stream=true the body is streamed instead of buffered.
// @Tags objects
// @Produce octet-stream
// @Param path query string true "Object key"
// @Param stream query boolean false "Stream the body"
// @Success 200 {file} binary "Object contents"
// @Failure 400 {object} map[string]string "Missing path"
// @Failure 404 {object} map[string]string "Object could not be opened"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/content [get]
func (h *Handler) HandleContent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	path := c.Query("path")
	if path == "" {
		return missingPath(c)
	}

	if utils.ToBool(c.Query("stream")) {
		stream, err := h.service.ReadStream(c.Context(), path)
		if err != nil {
			return h.fail(c, l, "Read stream failed", err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		// fasthttp closes the body once it has been written.
		return c.SendStream(stream.Body)
	}

	result, err := h.service.Read(c.Context(), path)
	if err != nil {
		return h.fail(c, l, "Read failed", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(result.Contents)
}

// HandleUpload uploads a file.
// @Summary Upload Object
// @Tags objects
// @Accept mpfd
// @Produce json
// @Param path formData string true "Object key"
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]string "Request URL"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	remotePath := c.FormValue("path")
	if remotePath == "" {
		return missingPath(c)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	tmp, err := os.CreateTemp("", "oss-bridge-upload-*")
	if err != nil {
		return h.fail(c, l, "Failed to create temp file", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fh, tmpPath); err != nil {
		return h.fail(c, l, "Failed to spool upload", err)
	}

	location, err := h.service.Upload(c.Context(), rayid.FromCtx(c), remotePath, tmpPath)
	if err != nil {
		return h.fail(c, l, "Upload failed", err)
	}

	l.Info("Object uploaded", zap.String("path", remotePath), zap.Int64("size", fh.Size))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"path": remotePath, "url": location})
}

// HandleCreateDir creates a directory marker.
// @Summary Create Directory
// @Description Writes a zero-byte "name/" marker. Trailing slashes in name are ignored.
// @Tags objects
// @Accept json
// @Produce json
// @Param request body CreateDirRequest true "Directory"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/dirs [post]
func (h *Handler) HandleCreateDir(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateDirRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	if err := h.service.CreateDir(c.Context(), rayid.FromCtx(c), req.Name); err != nil {
		return h.fail(c, l, "Create directory failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created", "name": req.Name})
}

// HandleDelete deletes an object.
// @Summary Delete Object
// @Tags objects
// @Produce json
// @Param path query string true "Object key"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Missing path"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	path := c.Query("path")
	if path == "" {
		return missingPath(c)
	}

	if err := h.service.Delete(c.Context(), rayid.FromCtx(c), path); err != nil {
		return h.fail(c, l, "Delete failed", err)
	}
	return c.JSON(fiber.Map{"status": "deleted", "path": path})
}

// HandleEvents lists recent audit events.
// @Summary Audit Events
// @Tags objects
// @Produce json
// @Param limit query int false "Maximum events (default 50)"
// @Success 200 {array} Event "Events"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/events [get]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	events, err := h.service.Events(c.Context(), utils.ToInt(c.Query("limit")))
	if err != nil {
		return h.fail(c, l, "Listing events failed", err)
	}
	return c.JSON(events)
}

func missingPath(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotOpenable):
		status = fiber.StatusNotFound
	case errors.Is(err, storage.ErrEmptyName):
		status = fiber.StatusBadRequest
	}

	l.Error(msg, zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
