package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/application/usecase"
)

// ComplainantHandler serves complainant records. Complainants carry a photo
// but no thumbprint.
type ComplainantHandler struct {
	uc *usecase.ComplainantUseCase
}

func NewComplainantHandler(uc *usecase.ComplainantUseCase) *ComplainantHandler {
	return &ComplainantHandler{uc: uc}
}

// Create godoc
// @Summary      Create a complainant record
// @Tags         complainants
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string  true  "Full name"
// @Param        photo  formData  file    false "Photo"
// @Success      201  {object}  dto.ComplainantResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/complainants [post]
func (h *ComplainantHandler) Create(c *fiber.Ctx) error {
	photo, err := formAttachment(c, "photo")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.Create(c.Context(), formValues(c), photo, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List complainant records
// @Tags         complainants
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ComplainantResponse
// @Router       /api/complainants [get]
func (h *ComplainantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Photo godoc
// @Summary      Fetch a complainant's photo
// @Tags         complainants
// @Security     Bearer
// @Produce      image/*
// @Param        id  path  string  true  "Record ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/complainants/photo/{id} [get]
func (h *ComplainantHandler) Photo(c *fiber.Ctx) error {
	a, err := h.uc.Photo(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendAttachment(c, a)
}

// Update godoc
// @Summary      Update a complainant record
// @Tags         complainants
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  dto.ComplainantResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/complainants/{id} [put]
func (h *ComplainantHandler) Update(c *fiber.Ctx) error {
	photo, err := formAttachment(c, "photo")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), formValues(c), photo, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a complainant record
// @Tags         complainants
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/complainants/{id} [delete]
func (h *ComplainantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Complainant record deleted"})
}
