package importer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/catalog"
)

type stubReader struct {
	rows []catalog.RawRow
	err  error
}

func (r *stubReader) Rows(_ io.Reader) ([]catalog.RawRow, error) {
	return r.rows, r.err
}

type stubDispatcher struct {
	enqueued []map[string]*catalog.Product
	started  int
}

func (d *stubDispatcher) EnqueueAll(products map[string]*catalog.Product) {
	d.enqueued = append(d.enqueued, products)
}

func (d *stubDispatcher) StartDraining() {
	d.started++
}

func TestService_CreateProducts(t *testing.T) {
	t.Run("skips the header row and queues assembled products", func(t *testing.T) {
		reader := &stubReader{rows: []catalog.RawRow{
			{Handle: "Handle", Title: "Title"}, // header
			{Handle: "mug", Title: "Coffee Mug", Option1Name: "Color", Option1: "Blue", Price: "19.99"},
			{Handle: "mug", Option1: "Red", Price: "19.99"},
		}}
		queue := &stubDispatcher{}
		svc := NewService(reader, queue, zap.NewNop())

		ok, err := svc.CreateProducts(context.Background(), []byte("workbook"))

		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, queue.enqueued, 1)
		require.Len(t, queue.enqueued[0], 1)
		assert.Len(t, queue.enqueued[0]["mug"].Variants, 2)
		assert.Equal(t, 1, queue.started)
	})

	t.Run("an empty row sequence still triggers an empty drain", func(t *testing.T) {
		queue := &stubDispatcher{}
		svc := NewService(&stubReader{}, queue, zap.NewNop())

		ok, err := svc.CreateProducts(context.Background(), nil)

		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, queue.enqueued, 1)
		assert.Empty(t, queue.enqueued[0])
		assert.Equal(t, 1, queue.started)
	})

	t.Run("surfaces decode errors without touching the queue", func(t *testing.T) {
		reader := &stubReader{err: errors.New("not a workbook")}
		queue := &stubDispatcher{}
		svc := NewService(reader, queue, zap.NewNop())

		ok, err := svc.CreateProducts(context.Background(), []byte{0x00})

		require.Error(t, err)
		assert.False(t, ok)
		assert.Empty(t, queue.enqueued)
		assert.Zero(t, queue.started)
	})
}
