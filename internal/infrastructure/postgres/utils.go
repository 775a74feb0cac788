package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crimsng/crims-api/internal/domain/entity"
)

// isUniqueViolation checks whether an error is a unique-constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// attachmentArgs maps an attachment onto the (data, content_type) column pair
// for COALESCE-style updates: a nil or empty attachment keeps the stored blob.
func attachmentArgs(a *entity.Attachment) ([]byte, *string) {
	if !a.HasData() {
		return nil, nil
	}
	return a.Data, &a.ContentType
}

// presentAttachment converts a scanned content-type column into a presence
// marker: records list/read responses expose hasPhoto/hasThumbprint without
// ever loading the bytes.
func presentAttachment(contentType *string) *entity.Attachment {
	if contentType == nil {
		return nil
	}
	return &entity.Attachment{ContentType: *contentType}
}
