package entity

// Attachment is a binary field embedded in a record: the raw bytes plus the
// MIME content type captured at upload time.
type Attachment struct {
	Data        []byte
	ContentType string
}

// HasData reports whether an attachment was actually stored.
func (a *Attachment) HasData() bool {
	return a != nil && len(a.Data) > 0
}
