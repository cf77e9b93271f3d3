// FILE: internal/controller/upload_controller.go
// Controller for logo uploads
package controller

import (
	"io"

	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(api fiber.Router)
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(service service.IUploadService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(api fiber.Router) {
	api.Post("/upload", c.Upload)
}

// Upload accepts a multipart "file" field
// @Router /api/upload [post]
func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validation("No file provided")
	}

	if header.Size > service.MaxUploadBytes {
		return service.FileTooLargeError(header.Size)
	}

	file, err := header.Open()
	if err != nil {
		return apperror.Wrap(apperror.KindValidation, err, "No file provided")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, int64(service.MaxUploadBytes)+1))
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, err, "Failed to read upload")
	}

	res, err := c.service.UploadLogo(ctx.UserContext(), header.Filename, header.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
