package provider

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMimeType sniffs the content type of a local file, falling back to
// its extension and then to application/octet-stream.
func DetectMimeType(path string) string {
	if mt, err := mimetype.DetectFile(path); err == nil && mt.String() != "application/octet-stream" {
		return mt.String()
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
