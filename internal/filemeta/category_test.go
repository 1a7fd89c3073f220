package filemeta

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"photo.JPG", CategoryImage},
		{"diagram.svg", CategoryImage},
		{"clip.mkv", CategoryVideo},
		{"movie.MOV", CategoryVideo},
		{"song.flac", CategoryAudio},
		{"voice.wma", CategoryAudio},
		{"Report.PDF", CategoryDocument},
		{"letter.docx", CategoryDocument},
		{"backup.7z", CategoryArchive},
		{"bundle.rar", CategoryArchive},
		{"archive.tar.gz", CategoryOther},
		{"notes.txt", CategoryOther},
		{"noext", CategoryOther},
		{"trailing.", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.input))
		})
	}
}

func TestCategoryTable_SetsAreDisjoint(t *testing.T) {
	seen := make(map[string]Category)
	for _, entry := range categoryTable {
		for ext := range entry.extensions {
			if prev, ok := seen[ext]; ok {
				t.Errorf("extension %q is in both %s and %s", ext, prev, entry.category)
			}
			seen[ext] = entry.category
		}
	}
}

func TestIconStyleFor(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryDocument, "doc-color"},
		{CategoryImage, "image-color"},
		{CategoryArchive, "archive-color"},
		{CategoryVideo, "default-color"},
		{CategoryAudio, "default-color"},
		{CategoryOther, "default-color"},
		{Category("bogus"), "default-color"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.expected, IconStyleFor(tt.category))
		})
	}
}

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryImage,
		CategoryVideo,
		CategoryAudio,
		CategoryDocument,
		CategoryArchive,
		CategoryOther,
	}, Categories())
}

func TestExtensionsFor(t *testing.T) {
	assert.Equal(t, []string{"doc", "docx", "pdf"}, ExtensionsFor(CategoryDocument))
	assert.Equal(t, []string{"7z", "rar", "zip"}, ExtensionsFor(CategoryArchive))
	assert.Empty(t, ExtensionsFor(CategoryOther))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Image ")
	require.NoError(t, err)
	assert.Equal(t, CategoryImage, c)

	c, err = ParseCategory("other")
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, c)

	_, err = ParseCategory("spreadsheet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
	assert.Contains(t, err.Error(), "spreadsheet")
}
