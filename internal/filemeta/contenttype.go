package filemeta

import "strings"

// DefaultContentType is reported for extensions missing from the lookup table.
const DefaultContentType = "application/octet-stream"

// PreviewSizeLimit is the largest object the browser will preview inline.
const PreviewSizeLimit = 10 * 1024 * 1024

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
	"txt":  "text/plain",
	"md":   "text/markdown",
	"csv":  "text/csv",
	"json": "application/json",
	"xml":  "application/xml",
	"html": "text/html",
	"css":  "text/css",
	"js":   "application/javascript",
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"mp4":  "video/mp4",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"wmv":  "video/x-ms-wmv",
	"flv":  "video/x-flv",
	"webm": "video/webm",
	"mkv":  "video/x-matroska",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"aac":  "audio/aac",
	"flac": "audio/flac",
	"wma":  "audio/x-ms-wma",
	"zip":  "application/zip",
	"rar":  "application/vnd.rar",
	"7z":   "application/x-7z-compressed",
	"tar":  "application/x-tar",
	"gz":   "application/gzip",
}

// ContentTypeFor guesses a MIME type from the file extension alone.
func ContentTypeFor(name string) string {
	if t, ok := contentTypes[ExtensionOf(name)]; ok {
		return t
	}
	return DefaultContentType
}

func isTextContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "text/") ||
		contentType == "application/json" ||
		contentType == "application/xml" ||
		contentType == "application/javascript"
}

// IsPreviewable reports whether an object can be shown inline: images, text
// and video no larger than PreviewSizeLimit. Negative sizes are never previewable.
func IsPreviewable(contentType string, size int64) bool {
	if size < 0 || size > PreviewSizeLimit {
		return false
	}
	return strings.HasPrefix(contentType, "image/") ||
		strings.HasPrefix(contentType, "video/") ||
		isTextContentType(contentType)
}
