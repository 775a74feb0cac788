package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/domain"
	"github.com/crimsng/crims-api/internal/domain/entity"
)

// formValues flattens the submitted form, multipart or urlencoded, into the
// first-value-per-field view the use cases merge from.
func formValues(c *fiber.Ctx) dto.FormValues {
	out := dto.FormValues{}
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for k, vs := range mf.Value {
			if len(vs) > 0 {
				out[k] = vs[0]
			} else {
				out[k] = ""
			}
		}
		return out
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		out[string(k)] = string(v)
	})
	return out
}

// formAttachment buffers an uploaded file fully in memory (the request body
// limit bounds the size) and captures its MIME type. Returns (nil, nil) when
// the field was not uploaded; rejects non-image uploads.
func formAttachment(c *fiber.Ctx, field string) (*entity.Attachment, error) {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return nil, nil
	}
	files := mf.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", field, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", field, err)
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %s must be an image", domain.ErrInvalidInput, field)
	}
	return &entity.Attachment{Data: data, ContentType: contentType}, nil
}
