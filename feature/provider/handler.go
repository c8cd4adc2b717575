package provider

import (
	"errors"

	"storage-provider/core/logger"
	"storage-provider/core/storage"
	"storage-provider/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the storage provider.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MoveRequest is the body of a move request.
type MoveRequest struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	MimeType    string `json:"mimetype"`
	Disposition string `json:"disposition"`
	Private     bool   `json:"private"`
	Trashed     bool   `json:"trashed"`
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleDelete)
	group.Get("/info", h.HandleInfo)
	group.Get("/content", h.HandleGetContent)
	group.Put("/content", h.HandlePutContent)
	group.Post("/move", h.HandleMove)
}

// HandleList lists every object under a prefix.
// @Summary List Objects
// @Description Lists all objects under the prefix as a table of name, path, size and last modification time.
// @Tags objects
// @Produce json
// @Param prefix query string false "Key prefix"
// @Success 200 {object} provider.RowSet "Listing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	prefix := c.Query("prefix")

	listing, err := h.service.ListObjects(c.Context(), prefix)
	if err != nil {
		l.Error("Listing failed", zap.String("prefix", prefix), zap.Error(err))
		return fail(c, err)
	}

	l.Debug("Listed objects", zap.String("prefix", prefix), zap.Int("count", len(listing)))
	return c.JSON(listing.RowSet())
}

// HandleInfo returns size and modification time of one object.
// @Summary Object Info
// @Description Returns the size and last modification time of an object.
// @Tags objects
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} map[string]interface{} "Record"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/info [get]
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return missingKey(c)
	}

	info, err := h.service.GetObjectInfo(c.Context(), key)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Debug("Object info failed", zap.String("key", key), zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(info.Record())
}

// HandleGetContent returns the raw object body.
// @Summary Get Object
// @Description Returns the object content. The whole object is buffered; large objects should be fetched through the CLI.
// @Tags objects
// @Produce octet-stream
// @Param key query string true "Object key"
// @Success 200 {string} binary "Content"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/content [get]
func (h *Handler) HandleGetContent(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return missingKey(c)
	}

	data, err := h.service.GetObject(c.Context(), key)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Debug("Object read failed", zap.String("key", key), zap.Error(err))
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

// HandlePutContent stores the request body under key.
// @Summary Put Object
// @Description Stores the request body. Content-Type and Content-Disposition headers are kept as object metadata.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param key query string true "Object key"
// @Param private query boolean false "Private object"
// @Param trashed query boolean false "Trashed object"
// @Success 200 {object} map[string]string "Stored"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/content [put]
func (h *Handler) HandlePutContent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Query("key")
	if key == "" {
		return missingKey(c)
	}

	meta := ObjectMeta{
		MimeType:    c.Get(fiber.HeaderContentType),
		Disposition: c.Get(fiber.HeaderContentDisposition),
		IsPrivate:   utils.ToBool(c.Query("private")),
		IsTrashed:   utils.ToBool(c.Query("trashed")),
	}

	if err := h.service.PutObject(c.Context(), key, c.Body(), meta); err != nil {
		l.Error("Object write failed", zap.String("key", key), zap.Error(err))
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "stored",
		"key":    key,
		"policy": meta.Policy().String(),
	})
}

// HandleDelete removes one object.
// @Summary Delete Object
// @Description Deletes an object. Deleting a missing key succeeds.
// @Tags objects
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return missingKey(c)
	}

	if err := h.service.DeleteObject(c.Context(), key); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Object delete failed", zap.String("key", key), zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted", "key": key})
}

// HandleMove moves an object to a new key.
// @Summary Move Object
// @Description Copies the source to the target with new metadata, then deletes the source. Not atomic: a failed delete leaves both objects and reports outcome copied_but_delete_failed.
// @Tags objects
// @Accept json
// @Produce json
// @Param request body provider.MoveRequest true "Move request"
// @Success 200 {object} map[string]string "Moved"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/move [post]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Source == "" || req.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source and target are required"})
	}

	meta := ObjectMeta{
		MimeType:    req.MimeType,
		Disposition: req.Disposition,
		IsPrivate:   req.Private,
		IsTrashed:   req.Trashed,
	}

	err := h.service.MoveObject(c.Context(), req.Source, req.Target, meta)
	if err != nil {
		outcome := MoveOutcomeOf(err)
		l.Error("Move failed", zap.String("source", req.Source), zap.String("target", req.Target),
			zap.Stringer("outcome", outcome), zap.Error(err))

		status := fiber.StatusInternalServerError
		if outcome == MoveCopyFailed && storage.IsNotFound(err) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"outcome": outcome.String(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "moved",
		"outcome": Moved.String(),
		"source":  req.Source,
		"target":  req.Target,
	})
}

var errMissingKey = errors.New("key query parameter is required")

func missingKey(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMissingKey.Error()})
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if storage.IsNotFound(err) {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
