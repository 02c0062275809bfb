package handlers

import (
	"context"
	"errors"

	"movie-demo/internal/services"
	"movie-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CoverPresigner issues upload URLs for cover images.
type CoverPresigner interface {
	PresignUpload(ctx context.Context, filename, contentType string) (string, string, error)
}

type UploadHandler struct {
	covers CoverPresigner
	logger *logrus.Logger
}

func NewUploadHandler(covers CoverPresigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		covers: covers,
		logger: logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a cover image upload
// @Description Generate a presigned URL for uploading a cover image to MinIO/S3. Store public_url as the movie's cover_img.
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(image/jpeg)
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /api/v1/upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "image/jpeg")

	presignedURL, publicURL, err := h.covers.PresignUpload(c.Context(), filename, contentType)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedContentType) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
