package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmation body for destructive operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// FormValues is a flat view over a submitted multipart form: first value per
// field. Update handlers merge only the keys that were actually submitted,
// mirroring document-merge update semantics.
type FormValues map[string]string

// Has reports whether the field was submitted at all (possibly empty).
func (f FormValues) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Get returns the submitted value or "".
func (f FormValues) Get(key string) string {
	return f[key]
}
