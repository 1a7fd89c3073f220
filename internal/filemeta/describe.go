package filemeta

// Metadata is the display metadata for a single file.
type Metadata struct {
	Name          string   `json:"name"`
	SafeName      string   `json:"safeName"`
	Extension     string   `json:"extension"`
	Category      Category `json:"category"`
	IconStyle     string   `json:"iconStyle"`
	Size          int64    `json:"size"`
	FormattedSize string   `json:"formattedSize"`
	ContentType   string   `json:"contentType"`
	Previewable   bool     `json:"previewable"`
}

// Describe computes every display attribute for name and size in one call.
// A negative size is recorded as 0, matching FormatSize.
func Describe(name string, size int64) Metadata {
	if size < 0 {
		size = 0
	}
	category := Classify(name)
	contentType := ContentTypeFor(name)
	return Metadata{
		Name:          name,
		SafeName:      Sanitize(name),
		Extension:     ExtensionOf(name),
		Category:      category,
		IconStyle:     IconStyleFor(category),
		Size:          size,
		FormattedSize: FormatSize(size),
		ContentType:   contentType,
		Previewable:   IsPreviewable(contentType, size),
	}
}

// WithContentType returns a copy of m using an authoritative content type,
// such as the one stored alongside an object, and recomputes Previewable.
func (m Metadata) WithContentType(contentType string) Metadata {
	if contentType == "" {
		return m
	}
	m.ContentType = contentType
	m.Previewable = IsPreviewable(contentType, m.Size)
	return m
}
