package request

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// FileAttachment is a single file destined for a multipart upload.
// Content is treated as read-only once the attachment is handed to a Builder.
type FileAttachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// NewFileAttachment returns an attachment holding a private copy of content.
func NewFileAttachment(fileName, contentType string, content []byte) FileAttachment {
	return FileAttachment{
		FileName:    fileName,
		ContentType: contentType,
		Content:     bytes.Clone(content),
	}
}

// Equal reports whether f and other carry the same name, content type and bytes.
// Distinct allocations with identical bytes are equal.
func (f FileAttachment) Equal(other FileAttachment) bool {
	return f.FileName == other.FileName &&
		f.ContentType == other.ContentType &&
		bytes.Equal(f.Content, other.Content)
}

// Hash returns a value hash consistent with Equal.
func (f FileAttachment) Hash() uint64 {
	d := xxhash.New()

	// Field separators keep ("ab","c") and ("a","bc") apart.
	_, _ = d.WriteString(f.FileName)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(f.ContentType)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(f.Content)

	return d.Sum64()
}

// Size returns the length of the attachment content in bytes.
func (f FileAttachment) Size() int {
	return len(f.Content)
}
