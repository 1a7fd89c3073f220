// Package models contains data structures shared by handlers and services
package models

import (
	"time"

	"github.com/damacus/iron-files/internal/filemeta"
)

// FileInfo is an object annotated with display metadata. Metadata.Name is the
// key relative to the listed prefix.
type FileInfo struct {
	Key          string    `json:"key"`
	LastModified time.Time `json:"lastModified"`
	ETag         string    `json:"etag,omitempty"`
	filemeta.Metadata
}

// FolderInfo represents a folder (common prefix)
type FolderInfo struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// Breadcrumb for navigation
type Breadcrumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// BucketInfo is a bucket with its usage formatted for display
type BucketInfo struct {
	Name          string    `json:"name"`
	CreationDate  time.Time `json:"creationDate"`
	Size          uint64    `json:"size"`
	FormattedSize string    `json:"formattedSize"`
}

// Listing is one page of a bucket browse
type Listing struct {
	Bucket      string            `json:"bucket"`
	Prefix      string            `json:"prefix"`
	Category    filemeta.Category `json:"category,omitempty"`
	Folders     []FolderInfo      `json:"folders"`
	Files       []FileInfo        `json:"files"`
	Breadcrumbs []Breadcrumb      `json:"breadcrumbs"`
	IsTruncated bool              `json:"isTruncated"`
	NextToken   string            `json:"nextToken,omitempty"`
}
