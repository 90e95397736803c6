package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/catalog"
)

// RowReader decodes an uploaded workbook into a sequence of raw rows. An
// empty or missing worksheet yields an empty sequence, not an error.
type RowReader interface {
	Rows(r io.Reader) ([]catalog.RawRow, error)
}

// Dispatcher queues assembled products for rate-limited submission.
type Dispatcher interface {
	EnqueueAll(products map[string]*catalog.Product)
	StartDraining()
}

// Service composes row decoding, aggregation, assembly and dispatch.
type Service struct {
	reader RowReader
	queue  Dispatcher
	logger *zap.Logger
}

// NewService creates a new import service.
func NewService(reader RowReader, queue Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		reader: reader,
		queue:  queue,
		logger: logger,
	}
}

// CreateProducts decodes the uploaded workbook, aggregates its rows into
// products and hands them to the dispatch queue. It returns true once every
// product has been queued, not once the external submissions have completed.
func (s *Service) CreateProducts(ctx context.Context, data []byte) (bool, error) {
	rows, err := s.reader.Rows(bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("importer: failed to decode workbook: %w", err)
	}

	// The first row is the column header.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	products := Aggregate(rows).Assemble()

	s.logger.Info("Products aggregated",
		zap.Int("rows", len(rows)),
		zap.Int("products", len(products)),
	)

	s.queue.EnqueueAll(products)
	s.queue.StartDraining()

	return true, nil
}
