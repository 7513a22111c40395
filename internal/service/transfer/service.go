// Package transfer exports and imports the whole data set: a JSON bundle
// for backup and restore, and an XLSX workbook for reporting.
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

type gateway interface {
	Get(ctx context.Context, collection string) ([]store.Record, error)
	Save(ctx context.Context, collection string, rec store.Record) (string, error)
}

// Bundle is a snapshot of every collection.
type Bundle struct {
	ExportedAt  time.Time                 `json:"exported_at"`
	Collections map[string][]store.Record `json:"collections"`
}

// ImportResult counts the records written per collection.
type ImportResult struct {
	Counts map[string]int `json:"counts"`
}

// Service moves data in and out of the store.
type Service struct {
	gw  gateway
	log *slog.Logger
	now func() time.Time
}

func NewService(log *slog.Logger, gw gateway) *Service {
	return &Service{
		gw:  gw,
		log: log.With("service", "transfer"),
		now: time.Now,
	}
}

// Export reads every collection into a Bundle.
func (s *Service) Export(ctx context.Context) (*Bundle, error) {
	b := &Bundle{
		ExportedAt:  s.now().UTC(),
		Collections: make(map[string][]store.Record, len(domain.Collections)),
	}
	for _, name := range domain.Collections {
		records, err := s.gw.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("transfer.Export: %w", err)
		}
		b.Collections[name] = records
	}
	return b, nil
}

// Import saves every record of b through the gateway upsert path, one
// collection at a time. A record whose id already exists is merged field by
// field: fields present in the bundle replace the stored ones, fields the
// bundle omits (a stripped passwordHash, say) keep their stored value.
// Unknown collections are rejected before anything is written.
func (s *Service) Import(ctx context.Context, b *Bundle) (*ImportResult, error) {
	if b == nil || len(b.Collections) == 0 {
		return nil, domain.NewValidationError("collections", "required")
	}
	for name := range b.Collections {
		if !slices.Contains(domain.Collections, name) {
			return nil, domain.NewValidationError("collections", fmt.Sprintf("unknown collection %q", name))
		}
	}

	res := &ImportResult{Counts: make(map[string]int, len(b.Collections))}
	for _, name := range domain.Collections {
		records, ok := b.Collections[name]
		if !ok {
			continue
		}
		for _, rec := range records {
			if rec == nil {
				continue
			}
			if _, err := s.gw.Save(ctx, name, rec); err != nil {
				return res, fmt.Errorf("transfer.Import: %w", err)
			}
			res.Counts[name]++
		}
	}

	s.log.InfoContext(ctx, "bundle imported", slog.Any("counts", res.Counts))
	return res, nil
}

// hiddenColumns never appear in the workbook.
var hiddenColumns = map[string]bool{"passwordHash": true}

// ExportWorkbook renders every collection as one sheet of an XLSX file.
// Columns are the union of record keys with id first. Nested values are
// written as JSON.
func (s *Service) ExportWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	b, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("transfer.ExportWorkbook style: %w", err)
	}

	for i, name := range domain.Collections {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("transfer.ExportWorkbook: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("transfer.ExportWorkbook: %w", err)
		}
		if err := writeSheet(f, name, b.Collections[name], headerStyle); err != nil {
			return nil, fmt.Errorf("transfer.ExportWorkbook %s: %w", name, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("transfer.ExportWorkbook write: %w", err)
	}
	return buf, nil
}

func columns(records []store.Record) []string {
	seen := map[string]bool{store.IDField: true}
	var rest []string
	for _, r := range records {
		for k := range r {
			if !seen[k] && !hiddenColumns[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	return append([]string{store.IDField}, rest...)
}

func writeSheet(f *excelize.File, sheet string, records []store.Record, headerStyle int) error {
	cols := columns(records)

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, r := range records {
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = cellValue(r[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func cellValue(v any) any {
	switch v := v.(type) {
	case nil:
		return ""
	case string, bool, float64, int, int64:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
