package services

import (
	"context"
	"math"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/damacus/iron-files/internal/filemeta"
	"github.com/damacus/iron-files/internal/models"
	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// BrowseOptions selects one page of a bucket listing
type BrowseOptions struct {
	Prefix            string
	ContinuationToken string
	// Category keeps only files of this category when non-empty. Folders are always kept.
	Category filemeta.Category
}

// Catalog lists buckets and objects and annotates them with file metadata
type Catalog struct {
	factory  MinioClientFactory
	creds    Credentials
	pageSize int
	logger   *zap.Logger
}

func NewCatalog(factory MinioClientFactory, creds Credentials, pageSize int, logger *zap.Logger) *Catalog {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{factory: factory, creds: creds, pageSize: pageSize, logger: logger}
}

func (c *Catalog) client() (MinioClient, error) {
	client, err := c.factory.NewClient(c.creds)
	if err != nil {
		return nil, errors.Wrapf(err, "connect to MinIO at %s", c.creds.Endpoint)
	}
	return client, nil
}

// Buckets lists every bucket with its data usage. Usage is best effort: when
// the admin API is unavailable sizes are reported as zero.
func (c *Catalog) Buckets(ctx context.Context) ([]models.BucketInfo, error) {
	client, err := c.client()
	if err != nil {
		return nil, err
	}

	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list buckets")
	}

	var usage madmin.DataUsageInfo
	if mdm, err := c.factory.NewAdminClient(c.creds); err != nil {
		c.logger.Warn("admin client unavailable, bucket sizes omitted", zap.Error(err))
	} else if usage, err = mdm.DataUsageInfo(ctx); err != nil {
		c.logger.Warn("data usage unavailable, bucket sizes omitted", zap.Error(err))
	}

	out := make([]models.BucketInfo, 0, len(buckets))
	for _, b := range buckets {
		size := usage.BucketSizes[b.Name]
		out = append(out, models.BucketInfo{
			Name:          b.Name,
			CreationDate:  b.CreationDate,
			Size:          size,
			FormattedSize: filemeta.FormatSize(clampSize(size)),
		})
	}
	return out, nil
}

// Browse returns one page of folders and files directly under opts.Prefix.
func (c *Catalog) Browse(ctx context.Context, bucket string, opts BrowseOptions) (*models.Listing, error) {
	client, err := c.client()
	if err != nil {
		return nil, err
	}

	page, err := client.ListObjectsPaginated(ctx, bucket, ListObjectsOptions{
		Prefix:            opts.Prefix,
		Recursive:         false,
		MaxKeys:           c.pageSize,
		ContinuationToken: opts.ContinuationToken,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list objects in %s", bucket)
	}

	listing := &models.Listing{
		Bucket:      bucket,
		Prefix:      opts.Prefix,
		Category:    opts.Category,
		Folders:     []models.FolderInfo{},
		Files:       []models.FileInfo{},
		Breadcrumbs: Breadcrumbs(opts.Prefix),
		IsTruncated: page.IsTruncated,
		NextToken:   page.NextContinuationToken,
	}

	seenFolders := make(map[string]bool)
	for _, obj := range page.Objects {
		if strings.HasSuffix(obj.Key, "/") {
			name := strings.TrimSuffix(strings.TrimPrefix(obj.Key, opts.Prefix), "/")
			if name != "" && !seenFolders[name] {
				seenFolders[name] = true
				listing.Folders = append(listing.Folders, models.FolderInfo{Name: name, Prefix: obj.Key})
			}
			continue
		}

		file := describeObject(obj, strings.TrimPrefix(obj.Key, opts.Prefix))
		if opts.Category != "" && file.Category != opts.Category {
			continue
		}
		listing.Files = append(listing.Files, file)
	}

	c.logger.Debug("browsed bucket",
		zap.String("bucket", bucket),
		zap.String("prefix", opts.Prefix),
		zap.Int("folders", len(listing.Folders)),
		zap.Int("files", len(listing.Files)),
		zap.Bool("truncated", listing.IsTruncated),
	)
	return listing, nil
}

// Object stats a single object and describes it.
func (c *Catalog) Object(ctx context.Context, bucket, key string) (*models.FileInfo, error) {
	client, err := c.client()
	if err != nil {
		return nil, err
	}

	obj, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s/%s", bucket, key)
	}
	if obj.Key == "" {
		obj.Key = key
	}

	file := describeObject(obj, path.Base(obj.Key))
	return &file, nil
}

func describeObject(obj minio.ObjectInfo, name string) models.FileInfo {
	return models.FileInfo{
		Key:          obj.Key,
		LastModified: obj.LastModified,
		ETag:         obj.ETag,
		Metadata:     filemeta.Describe(name, obj.Size).WithContentType(obj.ContentType),
	}
}

// Breadcrumbs splits a prefix such as "a/b/" into navigable path segments.
func Breadcrumbs(prefix string) []models.Breadcrumb {
	crumbs := []models.Breadcrumb{}
	p := ""
	for _, part := range strings.Split(strings.TrimSuffix(prefix, "/"), "/") {
		if part == "" {
			continue
		}
		p += part + "/"
		crumbs = append(crumbs, models.Breadcrumb{Name: part, Path: p})
	}
	return crumbs
}

func clampSize(size uint64) int64 {
	if size > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(size)
}

// IsNotFound reports whether err came from a missing bucket or object.
func IsNotFound(err error) bool {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	switch resp.Code {
	case "NoSuchBucket", "NoSuchKey", "NotFound":
		return true
	}
	return false
}
