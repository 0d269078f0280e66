package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/application/usecase"
)

// LivestockHandler handles the livestock CRUD surface (protected). Responses
// carry the derived age string.
type LivestockHandler struct {
	uc *usecase.LivestockUseCase
}

// NewLivestockHandler builds the handler.
func NewLivestockHandler(uc *usecase.LivestockUseCase) *LivestockHandler {
	return &LivestockHandler{uc: uc}
}

// Create godoc
// @Summary      Add an animal
// @Tags         livestock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LivestockRequest  true  "Animal data"
// @Success      201   {object}  dto.LivestockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/livestock [post]
func (h *LivestockHandler) Create(c *fiber.Ctx) error {
	var in dto.LivestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	animal, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLivestockResponse(animal))
}

// GetByID godoc
// @Summary      Get an animal
// @Tags         livestock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Animal ID"
// @Success      200  {object}  dto.LivestockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/livestock/{id} [get]
func (h *LivestockHandler) GetByID(c *fiber.Ctx) error {
	animal, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toLivestockResponse(animal))
}

// List godoc
// @Summary      List the herd
// @Tags         livestock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LivestockResponse
// @Router       /api/livestock [get]
func (h *LivestockHandler) List(c *fiber.Ctx) error {
	herd, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.LivestockResponse, 0, len(herd))
	for _, animal := range herd {
		out = append(out, toLivestockResponse(animal))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update an animal
// @Tags         livestock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Animal ID"
// @Param        body  body  dto.LivestockRequest  true  "Animal data"
// @Success      200   {object}  dto.LivestockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/livestock/{id} [put]
func (h *LivestockHandler) Update(c *fiber.Ctx) error {
	var in dto.LivestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	animal, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toLivestockResponse(animal))
}

// Delete godoc
// @Summary      Delete an animal
// @Tags         livestock
// @Security     Bearer
// @Param        id  path  string  true  "Animal ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/livestock/{id} [delete]
func (h *LivestockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
