package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/application/usecase"
	"github.com/crimsng/crims-api/internal/domain/entity"
)

// CriminalHandler serves convicted-criminal records, their image blobs and
// the roster export.
type CriminalHandler struct {
	uc *usecase.CriminalUseCase
}

func NewCriminalHandler(uc *usecase.CriminalUseCase) *CriminalHandler {
	return &CriminalHandler{uc: uc}
}

// sendAttachment streams a stored blob with its original MIME type.
func sendAttachment(c *fiber.Ctx, a *entity.Attachment) error {
	c.Set(fiber.HeaderContentType, a.ContentType)
	return c.Send(a.Data)
}

// Create godoc
// @Summary      Create a criminal record
// @Tags         criminals
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name  formData  string  true  "Full name"
// @Param        photo       formData  file  false  "Photo"
// @Param        thumbprint  formData  file  false  "Thumbprint"
// @Success      201  {object}  dto.CriminalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/criminals [post]
func (h *CriminalHandler) Create(c *fiber.Ctx) error {
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
// @Summary      List criminal records
// @Tags         criminals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CriminalResponse
// @Router       /api/criminals [get]
func (h *CriminalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Photo godoc
// @Summary      Fetch a criminal's photo
// @Tags         criminals
// @Security     Bearer
// @Produce      image/*
// @Param        id  path  string  true  "Record ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/criminals/photo/{id} [get]
func (h *CriminalHandler) Photo(c *fiber.Ctx) error {
	a, err := h.uc.Photo(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendAttachment(c, a)
}

// Thumbprint godoc
// @Summary      Fetch a criminal's thumbprint
// @Tags         criminals
// @Security     Bearer
// @Produce      image/*
// @Param        id  path  string  true  "Record ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/criminals/thumbprint/{id} [get]
func (h *CriminalHandler) Thumbprint(c *fiber.Ctx) error {
	a, err := h.uc.Thumbprint(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendAttachment(c, a)
}

// ExportPDF godoc
// @Summary      Export the criminal roster as PDF
// @Tags         criminals
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/criminals/export/pdf [get]
func (h *CriminalHandler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.ExportPDF(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="criminal-roster.pdf"`)
	return c.Send(pdf)
}

// Update godoc
// @Summary      Update a criminal record
// @Tags         criminals
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  dto.CriminalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/criminals/{id} [put]
func (h *CriminalHandler) Update(c *fiber.Ctx) error {
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
// @Summary      Delete a criminal record
// @Tags         criminals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/criminals/{id} [delete]
func (h *CriminalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Criminal record deleted"})
}
