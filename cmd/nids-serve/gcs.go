package main

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/nids"
)

// latestObjectKey finds the most recent NIDS object for site/product
// under the realtime bucket's "<site>/<product>/" prefix. The
// realtime feed names objects so lexicographic order agrees with
// generation time, so the last name iterated is the newest.
func (s *server) latestObjectKey(ctx context.Context, site, product string) (string, error) {
	client, err := s.gcsClient(ctx)
	if err != nil {
		return "", fmt.Errorf("gcs client: %w", err)
	}

	prefix := fmt.Sprintf("%s/%s/", site, product)
	it := client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	var newest string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return "", fmt.Errorf("listing %s: %w", prefix, err)
		}
		if attrs.Name > newest {
			newest = attrs.Name
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no objects under %s", prefix)
	}
	return newest, nil
}

// fetchAndDecode reads one NIDS object from the bucket and decodes it.
func (s *server) fetchAndDecode(ctx context.Context, objectKey string) (*datatype.RadialSet, error) {
	client, err := s.gcsClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}

	r, err := client.Bucket(s.bucket).Object(objectKey).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", objectKey, err)
	}
	defer r.Close()

	rs, err := nids.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", objectKey, err)
	}
	return rs, nil
}
