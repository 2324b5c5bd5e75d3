package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tcmshop_backend/internal/leads/domain"
	"tcmshop_backend/platform/apperr"

	"github.com/google/uuid"
)

// timestampFormat is ISO-8601 with seconds precision.
const timestampFormat = "2006-01-02T15:04:05"

var csvHeader = []string{"timestamp", "name", "email", "query_type", "message"}

// CSVRepository appends leads to a flat CSV file. The first write creates
// the file with a header row; later writes append records only. A single
// writer mutex serializes concurrent appends so records never interleave.
type CSVRepository struct {
	mu   sync.Mutex
	path string
}

// NewCSV creates a CSV-backed lead repository at the given path.
func NewCSV(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// Append writes one lead record, creating the file and header on first use.
func (r *CSVRepository) Append(_ context.Context, lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperr.Persistence("Could not create lead store directory", err).WithOp("leads.append")
		}
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperr.Persistence("Could not open lead store", err).WithOp("leads.append")
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return apperr.Persistence("Could not stat lead store", err).WithOp("leads.append")
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return apperr.Persistence("Could not write lead store header", err).WithOp("leads.append")
		}
	}

	record := []string{
		lead.SubmittedAt.Format(timestampFormat),
		lead.Name,
		lead.Email,
		string(lead.QueryType),
		lead.Message,
	}
	if err := w.Write(record); err != nil {
		return apperr.Persistence("Could not write lead record", err).WithOp("leads.append")
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return apperr.Persistence("Could not flush lead record", err).WithOp("leads.append")
	}
	return nil
}

// List reads back all stored leads in append order. A missing file is an
// empty store, not an error.
func (r *CSVRepository) List(_ context.Context) ([]domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Lead{}, nil
		}
		return nil, apperr.Persistence("Could not open lead store", err).WithOp("leads.list")
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Persistence("Could not read lead store", err).WithOp("leads.list")
	}

	leads := make([]domain.Lead, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) != len(csvHeader) {
			continue
		}
		submittedAt, _ := time.ParseInLocation(timestampFormat, row[0], time.Local)
		leads = append(leads, domain.Lead{
			ID:          uuid.Nil,
			Name:        row[1],
			Email:       row[2],
			QueryType:   domain.QueryType(row[3]),
			Message:     row[4],
			SubmittedAt: submittedAt,
		})
	}
	return leads, nil
}

// Compile-time check that CSVRepository implements LeadsRepository
var _ LeadsRepository = (*CSVRepository)(nil)
