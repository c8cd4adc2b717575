package provider

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"storage-provider/core/storage"
)

// ListingRow is one object of a listing, keyed by leaf name and parent path.
type ListingRow struct {
	Name         string
	Path         string
	Size         float64
	LastModified time.Time
}

// Listing is the flattened result of a prefix listing, in backend order.
type Listing []ListingRow

// ListObjects returns every object under prefix. All backend pages are
// consumed; a failure on any page fails the whole listing.
func (s *Service) ListObjects(ctx context.Context, prefix string) (Listing, error) {
	rows := Listing{}
	in := storage.ListInput{Prefix: prefix, MaxKeys: s.pageSize}

	for {
		page, err := s.client.ListObjectsPage(ctx, s.scope.Bucket, in)
		if err != nil {
			return nil, fmt.Errorf("list objects %q: %w", prefix, err)
		}

		for _, obj := range page.Objects {
			rows = append(rows, rowFor(obj))
		}

		if !page.Truncated {
			return rows, nil
		}
		if page.NextToken == "" || page.NextToken == in.ContinuationToken {
			return nil, fmt.Errorf("list objects %q: truncated page without a new continuation token", prefix)
		}
		in.ContinuationToken = page.NextToken
	}
}

func rowFor(obj storage.ObjectInfo) ListingRow {
	name, dir := splitKey(obj.Key)
	return ListingRow{
		Name:         name,
		Path:         dir,
		Size:         float64(obj.Size),
		LastModified: obj.LastModified.UTC(),
	}
}

// splitKey splits an object key into its leaf name and "/"-rooted parent
// path. Empty segments and trailing slashes are ignored, so "a//b/" names
// "b" under "/a", and keys without a parent live under "/".
func splitKey(key string) (name, dir string) {
	clean := strings.Trim(path.Clean("/"+key), "/")
	parent, name := path.Split(clean)
	parent = strings.TrimSuffix(parent, "/")
	if parent == "" {
		return name, "/"
	}
	return name, "/" + parent
}
