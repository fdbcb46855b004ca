package inventory

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"inventory-manager/core/metrics"

	"go.uber.org/zap"
)

// Summary is the outcome of GenerateAll.
type Summary struct {
	// Written lists each report file written once, in generation order.
	Written []string
	// Failed maps each report file that could not be written to its error.
	Failed map[string]error
}

// Service owns one inventory and produces its reports.
type Service struct {
	cfg       Config
	inventory *Inventory
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewService creates a service with an empty inventory. m may be nil.
func NewService(cfg Config, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		cfg:       cfg,
		inventory: New(),
		logger:    logger,
		metrics:   m,
		now:       time.Now,
	}
}

// SetClock replaces the clock used by the past-service-date report.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Inventory returns the owned record set.
func (s *Service) Inventory() *Inventory {
	return s.inventory
}

// Load reads the three configured input files in order: manufacturers, prices, service dates.
func (s *Service) Load() error {
	files := []string{s.cfg.ManufacturerFile, s.cfg.PriceFile, s.cfg.ServiceDatesFile}
	readers := make([]io.Reader, 0, len(files))
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		readers = append(readers, f)
	}
	return s.LoadFrom(readers[0], readers[1], readers[2])
}

// LoadFrom applies the three lists from already opened readers.
func (s *Service) LoadFrom(manufacturers, prices, serviceDates io.Reader) error {
	l := NewLoader(s.inventory, s.logger, s.metrics)

	if err := l.LoadManufacturerList(manufacturers); err != nil {
		return fmt.Errorf("failed to load manufacturer list: %w", err)
	}
	if err := l.LoadPriceList(prices); err != nil {
		return fmt.Errorf("failed to load price list: %w", err)
	}
	if err := l.LoadServiceDatesList(serviceDates); err != nil {
		return fmt.Errorf("failed to load service dates list: %w", err)
	}

	s.logger.Info("Inventory loaded", zap.Int("records", s.inventory.Len()))
	return nil
}

// Reports builds every report against the current clock.
func (s *Service) Reports() []Report {
	return AllReports(s.inventory, s.now())
}

// PastServiceDateInventory builds the past-service report against the current clock.
func (s *Service) PastServiceDateInventory() Report {
	return PastServiceDateInventory(s.inventory, s.now())
}

// GenerateAll writes every report into the output directory. A failed file
// is logged and recorded; the remaining reports are still attempted. Reports
// sharing a file name are listed once, with the outcome of the last write.
func (s *Service) GenerateAll() Summary {
	summary := Summary{Failed: make(map[string]error)}

	for _, rep := range s.Reports() {
		path, err := WriteReport(s.cfg.OutputDir, rep)
		if err != nil {
			s.logger.Error("Failed to write report", zap.String("file", path), zap.Error(err))
			s.metrics.ReportFailed()
			summary.Failed[rep.File] = err
			summary.Written = slices.DeleteFunc(summary.Written, func(f string) bool { return f == rep.File })
			continue
		}
		s.logger.Info("Report written", zap.String("file", path), zap.Int("rows", len(rep.Rows)))
		s.metrics.ReportWritten()
		delete(summary.Failed, rep.File)
		if !slices.Contains(summary.Written, rep.File) {
			summary.Written = append(summary.Written, rep.File)
		}
	}

	return summary
}
