package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestChainSource(t *testing.T) {
	t.Run("first non-empty source wins", func(t *testing.T) {
		primary := &stubSource{rows: []Row{{"UPC": "123"}}}
		fallback := &stubSource{rows: []Row{{"UPC": "456"}}}
		chain := &ChainSource{Sources: []Source{primary, fallback}}

		rows, err := chain.Rows(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "123", rows[0]["UPC"])
		assert.Equal(t, 0, fallback.loads)
	})

	t.Run("falls through errors and empty results", func(t *testing.T) {
		broken := &stubSource{err: errors.New("timeout")}
		empty := &stubSource{}
		fallback := &stubSource{rows: []Row{{"UPC": "456"}}}
		chain := &ChainSource{Sources: []Source{broken, empty, fallback}}

		rows, err := chain.Rows(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "456", rows[0]["UPC"])
	})

	t.Run("all sources exhausted", func(t *testing.T) {
		chain := &ChainSource{Sources: []Source{&stubSource{err: errors.New("timeout")}, &stubSource{}}}

		_, err := chain.Rows(context.Background())
		assert.ErrorIs(t, err, ErrFeedUnavailable)
	})
}

func TestDecodeCSV(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		csv := "UPC,MAP,Jobber\n123,19.99,25.00\n456,,30.00\n"
		rows, err := decodeCSV(strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "19.99", rows[0]["MAP"])
		assert.Equal(t, "", rows[1]["MAP"])
		assert.Equal(t, "30.00", rows[1]["Jobber"])
	})

	t.Run("torn rows are tolerated", func(t *testing.T) {
		// Short and long rows map only the columns they have.
		csv := "UPC,MAP\n123\n456,19.99,extra\n"
		rows, err := decodeCSV(strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "123", rows[0]["UPC"])
		assert.Equal(t, "19.99", rows[1]["MAP"])
	})

	t.Run("empty body", func(t *testing.T) {
		rows, err := decodeCSV(strings.NewReader(""))
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("quote errors skip the row only", func(t *testing.T) {
		csv := "UPC,MAP\n\"12\"3,4\n123,19.99\n"
		rows, err := decodeCSV(strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "123", rows[0]["UPC"])
	})

	t.Run("broken stream aborts the load", func(t *testing.T) {
		// A reader that keeps failing must surface the error rather than
		// spin on it.
		r := &brokenReader{
			data: strings.NewReader("UPC,MAP\n123,19.99\n"),
			err:  errors.New("read tcp: connection reset by peer"),
		}
		_, err := decodeCSV(r)
		assert.ErrorContains(t, err, "connection reset")
	})
}

// brokenReader serves its data and then fails permanently instead of
// returning io.EOF.
type brokenReader struct {
	data *strings.Reader
	err  error
}

func (r *brokenReader) Read(p []byte) (int, error) {
	n, err := r.data.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}

func TestHTTPSource(t *testing.T) {
	const body = "UPC,MAP\n123,19.99\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	t.Run("snapshots a successful fetch", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "feeds", "feeds/distributor.csv",
			mock.Anything, int64(len(body)), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		source := NewHTTPSource(server.URL)
		source.Snapshot = &Snapshot{Client: client, Bucket: "feeds", Object: "feeds/distributor.csv"}

		rows, err := source.Rows(context.Background())
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "19.99", rows[0]["MAP"])
		client.AssertExpectations(t)
	})

	t.Run("snapshot failure does not fail the load", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "feeds", "feeds/distributor.csv",
			mock.Anything, int64(len(body)), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("bucket gone"))

		source := NewHTTPSource(server.URL)
		source.Snapshot = &Snapshot{Client: client, Bucket: "feeds", Object: "feeds/distributor.csv"}
		source.Logger = zap.NewNop()

		rows, err := source.Rows(context.Background())
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		client.AssertExpectations(t)
	})

	t.Run("no snapshot configured", func(t *testing.T) {
		source := NewHTTPSource(server.URL)
		rows, err := source.Rows(context.Background())
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("unexpected status", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer failing.Close()

		source := NewHTTPSource(failing.URL)
		_, err := source.Rows(context.Background())
		assert.ErrorContains(t, err, "unexpected status 502")
	})
}

func TestStorageSource(t *testing.T) {
	t.Run("reads the fallback CSV", func(t *testing.T) {
		client := new(mocks.Client)
		body := io.NopCloser(strings.NewReader("UPC,MAP\n123,19.99\n"))
		client.On("GetObject", mock.Anything, "feeds", "feeds/distributor.csv", minio.GetObjectOptions{}).
			Return(body, nil)

		source := &StorageSource{Client: client, Bucket: "feeds", Object: "feeds/distributor.csv"}
		rows, err := source.Rows(context.Background())
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "19.99", rows[0]["MAP"])
		client.AssertExpectations(t)
	})

	t.Run("object missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "feeds", "feeds/distributor.csv", minio.GetObjectOptions{}).
			Return(nil, errors.New("NoSuchKey"))

		source := &StorageSource{Client: client, Bucket: "feeds", Object: "feeds/distributor.csv"}
		_, err := source.Rows(context.Background())
		assert.Error(t, err)
	})
}
