package feed

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Source yields raw feed rows. Transport mechanics (FTP download, ZIP
// extraction) live upstream; sources here consume the already-extracted CSV.
type Source interface {
	// Rows fetches and decodes all feed rows. An empty result is not an error
	// by itself; ChainSource converts total emptiness into ErrFeedUnavailable.
	Rows(ctx context.Context) ([]Row, error)
}

// Snapshot names the object a successfully fetched remote feed is copied to,
// keeping the storage fallback current with the last good export.
type Snapshot struct {
	Client storage.Client
	Bucket string
	Object string
}

// HTTPSource fetches the feed CSV from a remote URL. With a Snapshot set, a
// successful fetch is written back to object storage so the fallback source
// always serves the most recent good export.
type HTTPSource struct {
	URL      string
	Client   *http.Client
	Snapshot *Snapshot
	Logger   *zap.Logger
}

// NewHTTPSource creates an HTTP feed source with a sane default timeout.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (s *HTTPSource) Rows(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: fetch %s: unexpected status %d", s.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed: read %s: %w", s.URL, err)
	}

	rows, err := decodeCSV(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		s.snapshot(ctx, body)
	}
	return rows, nil
}

// snapshot writes the fetched CSV back to object storage, best effort. A
// failed write degrades the fallback source but not the load itself.
func (s *HTTPSource) snapshot(ctx context.Context, body []byte) {
	if s.Snapshot == nil {
		return
	}
	_, err := s.Snapshot.Client.PutObject(ctx, s.Snapshot.Bucket, s.Snapshot.Object,
		bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil && s.Logger != nil {
		s.Logger.Warn("Feed snapshot write failed",
			zap.String("object", s.Snapshot.Object), zap.Error(err))
	}
}

// StorageSource reads the feed CSV from object storage. It serves as the
// local fallback when the remote export is unreachable.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (s *StorageSource) Rows(ctx context.Context) ([]Row, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("feed: get object %s/%s: %w", s.Bucket, s.Object, err)
	}
	defer obj.Close()

	return decodeCSV(obj)
}

// ChainSource tries each source in order and returns the first non-empty row
// set. When every source fails or comes back empty it returns
// ErrFeedUnavailable.
type ChainSource struct {
	Sources []Source
	Logger  *zap.Logger
}

func (s *ChainSource) Rows(ctx context.Context) ([]Row, error) {
	for _, source := range s.Sources {
		rows, err := source.Rows(ctx)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("Feed source failed, trying next", zap.Error(err))
			}
			continue
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return nil, ErrFeedUnavailable
}

// decodeCSV reads a header row then maps every following record onto it.
// Short rows are tolerated; surplus cells are dropped.
func decodeCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("feed: read header: %w", err)
	}

	var rows []Row
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A torn row must not abort the whole feed load. Anything that
			// is not a per-record parse error is a broken stream and would
			// recur on every read, so it propagates instead.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("feed: read row: %w", err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
