package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/application/usecase"
)

// CropHandler handles the crops CRUD surface (protected).
type CropHandler struct {
	uc *usecase.CropUseCase
}

// NewCropHandler builds the handler.
func NewCropHandler(uc *usecase.CropUseCase) *CropHandler {
	return &CropHandler{uc: uc}
}

// Create godoc
// @Summary      Add a crop
// @Tags         crops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CropRequest  true  "Crop data"
// @Success      201   {object}  dto.CropResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crops [post]
func (h *CropHandler) Create(c *fiber.Ctx) error {
	var in dto.CropRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	crop, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCropResponse(crop))
}

// GetByID godoc
// @Summary      Get a crop
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Crop ID"
// @Success      200  {object}  dto.CropResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crops/{id} [get]
func (h *CropHandler) GetByID(c *fiber.Ctx) error {
	crop, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toCropResponse(crop))
}

// List godoc
// @Summary      List crops
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CropResponse
// @Router       /api/crops [get]
func (h *CropHandler) List(c *fiber.Ctx) error {
	crops, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.CropResponse, 0, len(crops))
	for _, crop := range crops {
		out = append(out, toCropResponse(crop))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a crop
// @Tags         crops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Crop ID"
// @Param        body  body  dto.CropRequest  true  "Crop data"
// @Success      200   {object}  dto.CropResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crops/{id} [put]
func (h *CropHandler) Update(c *fiber.Ctx) error {
	var in dto.CropRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	crop, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toCropResponse(crop))
}

// Delete godoc
// @Summary      Delete a crop
// @Tags         crops
// @Security     Bearer
// @Param        id  path  string  true  "Crop ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crops/{id} [delete]
func (h *CropHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
