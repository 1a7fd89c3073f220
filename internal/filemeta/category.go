package filemeta

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Category is a semantic file-type bucket derived from the extension.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryArchive  Category = "archive"
	CategoryOther    Category = "other"
)

// ErrUnknownCategory is returned by ParseCategory for unrecognised names.
var ErrUnknownCategory = errors.New("unknown file category")

// categoryTable is checked in order; the first matching set wins.
var categoryTable = []struct {
	category   Category
	extensions ExtensionSet
}{
	{CategoryImage, NewExtensionSet("jpg", "jpeg", "png", "gif", "webp", "bmp", "svg")},
	{CategoryVideo, NewExtensionSet("mp4", "avi", "mov", "wmv", "flv", "webm", "mkv")},
	{CategoryAudio, NewExtensionSet("mp3", "wav", "ogg", "aac", "flac", "wma")},
	{CategoryDocument, NewExtensionSet("pdf", "doc", "docx")},
	{CategoryArchive, NewExtensionSet("zip", "rar", "7z")},
}

// Only documents, images and archives get a distinct icon colour.
var iconStyles = map[Category]string{
	CategoryDocument: "doc-color",
	CategoryImage:    "image-color",
	CategoryArchive:  "archive-color",
}

const defaultIconStyle = "default-color"

func (c Category) String() string {
	return string(c)
}

// Classify maps a file name to its category. Names that match no table
// entry, including names without an extension, are CategoryOther.
func Classify(name string) Category {
	for _, entry := range categoryTable {
		if IsOfType(name, entry.extensions) {
			return entry.category
		}
	}
	return CategoryOther
}

// IconStyleFor returns the CSS class used to colour a category's icon.
func IconStyleFor(c Category) string {
	if style, ok := iconStyles[c]; ok {
		return style
	}
	return defaultIconStyle
}

// Categories lists every category in classification order, CategoryOther last.
func Categories() []Category {
	out := make([]Category, 0, len(categoryTable)+1)
	for _, entry := range categoryTable {
		out = append(out, entry.category)
	}
	return append(out, CategoryOther)
}

// ExtensionsFor returns the sorted extensions that classify as c.
// CategoryOther and unknown categories have none.
func ExtensionsFor(c Category) []string {
	for _, entry := range categoryTable {
		if entry.category != c {
			continue
		}
		exts := make([]string, 0, len(entry.extensions))
		for ext := range entry.extensions {
			exts = append(exts, ext)
		}
		slices.Sort(exts)
		return exts
	}
	return nil
}

// ParseCategory converts a case-insensitive category name into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Categories(), c) {
		return c, nil
	}
	return "", errors.Wrapf(ErrUnknownCategory, "%q", s)
}
