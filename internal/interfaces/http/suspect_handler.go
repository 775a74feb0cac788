package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/application/usecase"
)

// SuspectHandler serves suspect records and their image blobs.
type SuspectHandler struct {
	uc *usecase.SuspectUseCase
}

func NewSuspectHandler(uc *usecase.SuspectUseCase) *SuspectHandler {
	return &SuspectHandler{uc: uc}
}

// Create godoc
// @Summary      Create a suspect record
// @Tags         suspects
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name  formData  string  true  "Full name"
// @Param        photo       formData  file  false  "Photo"
// @Param        thumbprint  formData  file  false  "Thumbprint"
// @Success      201  {object}  dto.SuspectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suspects [post]
func (h *SuspectHandler) Create(c *fiber.Ctx) error {
	photo, err := formAttachment(c, "photo")
	if err != nil {
		return respondDomainError(c, err)
	}
	thumbprint, err := formAttachment(c, "thumbprint")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.Create(c.Context(), formValues(c), photo, thumbprint, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List suspect records
// @Tags         suspects
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SuspectResponse
// @Router       /api/suspects [get]
func (h *SuspectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Photo godoc
// @Summary      Fetch a suspect's photo
// @Tags         suspects
// @Security     Bearer
// @Produce      image/*
// @Param        id  path  string  true  "Record ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suspects/photo/{id} [get]
func (h *SuspectHandler) Photo(c *fiber.Ctx) error {
	a, err := h.uc.Photo(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendAttachment(c, a)
}

// Thumbprint godoc
// @Summary      Fetch a suspect's thumbprint
// @Tags         suspects
// @Security     Bearer
// @Produce      image/*
// @Param        id  path  string  true  "Record ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suspects/thumbprint/{id} [get]
func (h *SuspectHandler) Thumbprint(c *fiber.Ctx) error {
	a, err := h.uc.Thumbprint(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendAttachment(c, a)
}

// Update godoc
// @Summary      Update a suspect record
// @Tags         suspects
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  dto.SuspectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suspects/{id} [put]
func (h *SuspectHandler) Update(c *fiber.Ctx) error {
	photo, err := formAttachment(c, "photo")
	if err != nil {
		return respondDomainError(c, err)
	}
	thumbprint, err := formAttachment(c, "thumbprint")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), formValues(c), photo, thumbprint, GetUsername(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a suspect record
// @Tags         suspects
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suspects/{id} [delete]
func (h *SuspectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Suspect record deleted"})
}
