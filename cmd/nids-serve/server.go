package main

import (
	"context"
	"sync"

	"cloud.google.com/go/storage"
)

// server holds the shared, read-only state every handler needs: the
// GCS client (opened once, reused across goroutines -- per the core's
// no-internal-locking contract, only this client is shared; every
// decoded DataGrid/projection is built fresh inside each request).
type server struct {
	bucket     string
	tileSizePx int

	clientOnce sync.Once
	client     *storage.Client
	clientErr  error
}

func newServer(bucket string, tileSizePx int) *server {
	return &server{bucket: bucket, tileSizePx: tileSizePx}
}

func (s *server) gcsClient(ctx context.Context) (*storage.Client, error) {
	s.clientOnce.Do(func() {
		s.client, s.clientErr = storage.NewClient(ctx)
	})
	return s.client, s.clientErr
}
