package inventory

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"inventory-manager/core/metrics"
	"inventory-manager/core/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Source names, used as log fields and metric labels.
const (
	SourceManufacturer = "manufacturer"
	SourcePrice        = "price"
	SourceServiceDates = "service_dates"
)

const (
	reasonShortRow     = "short_row"
	reasonInvalidPrice = "invalid_price"
	reasonUnknownID    = "unknown_id"
)

// ErrInvalidServiceDate is returned when a service date is not MM/DD/YYYY.
// It aborts the load.
var ErrInvalidServiceDate = errors.New("invalid service date")

// Loader applies the three input lists to an inventory.
type Loader struct {
	inv     *Inventory
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewLoader creates a loader writing into inv. m may be nil.
func NewLoader(inv *Inventory, logger *zap.Logger, m *metrics.Metrics) *Loader {
	return &Loader{inv: inv, logger: logger, metrics: m}
}

// LoadManufacturerList reads id, manufacturer, item type and an optional
// damaged flag. This is the only list that creates records.
func (l *Loader) LoadManufacturerList(r io.Reader) error {
	return readRows(r, func(line int, row []string) error {
		l.logger.Debug("Processing row", zap.String("source", SourceManufacturer), zap.Int("line", line), zap.Strings("row", row))
		if len(row) < 3 {
			l.skip(SourceManufacturer, reasonShortRow, line, row)
			return nil
		}
		rec := Record{
			ID:           row[0],
			Manufacturer: row[1],
			ItemType:     row[2],
		}
		if len(row) > 3 {
			rec.Damaged = row[3]
		}
		l.inv.Put(rec)
		l.metrics.RowLoaded(SourceManufacturer)
		return nil
	})
}

// LoadPriceList reads id and price. Unknown identifiers are ignored.
func (l *Loader) LoadPriceList(r io.Reader) error {
	return readRows(r, func(line int, row []string) error {
		if len(row) < 2 {
			l.skip(SourcePrice, reasonShortRow, line, row)
			return nil
		}
		price, err := decimal.NewFromString(row[1])
		if err != nil {
			l.skip(SourcePrice, reasonInvalidPrice, line, row)
			return nil
		}
		if !l.inv.SetPrice(row[0], price) {
			l.ignore(SourcePrice, line, row[0])
			return nil
		}
		l.metrics.RowLoaded(SourcePrice)
		return nil
	})
}

// LoadServiceDatesList reads id and service date. Unknown identifiers are
// ignored before their date is parsed; a malformed date on a known record
// stops the load with ErrInvalidServiceDate.
func (l *Loader) LoadServiceDatesList(r io.Reader) error {
	return readRows(r, func(line int, row []string) error {
		if len(row) < 2 {
			l.skip(SourceServiceDates, reasonShortRow, line, row)
			return nil
		}
		if _, ok := l.inv.Get(row[0]); !ok {
			l.ignore(SourceServiceDates, line, row[0])
			return nil
		}
		date, err := time.ParseInLocation(parseLayout, row[1], time.Local)
		if err != nil {
			return fmt.Errorf("%w: line %d: %q: %v", ErrInvalidServiceDate, line, row[1], err)
		}
		l.inv.SetServiceDate(row[0], date)
		l.metrics.RowLoaded(SourceServiceDates)
		return nil
	})
}

func (l *Loader) skip(source, reason string, line int, row []string) {
	l.logger.Warn("Skipping incomplete row",
		zap.String("source", source),
		zap.String("reason", reason),
		zap.Int("line", line),
		zap.Strings("row", row),
	)
	l.metrics.RowSkipped(source, reason)
}

func (l *Loader) ignore(source string, line int, id string) {
	l.logger.Debug("Ignoring unknown item", zap.String("source", source), zap.Int("line", line), zap.String("id", id))
	l.metrics.RowSkipped(source, reasonUnknownID)
}

// readRows feeds every trimmed CSV record to fn. Records may have any number
// of fields. Blank lines, which encoding/csv drops, are passed to fn as empty
// rows so loaders report them like any other short row.
func readRows(r io.Reader, fn func(line int, row []string) error) error {
	lc := &lineCounter{r: r}
	cr := csv.NewReader(lc)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	// last is the line on which the previous record ended.
	last := 0
	blanks := func(upto int) error {
		for ; last < upto; last++ {
			if err := fn(last+1, []string{}); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return blanks(lc.lines)
		}
		if err != nil {
			return fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if err := blanks(line - 1); err != nil {
			return err
		}
		end, _ := cr.FieldPos(len(row) - 1)
		last = end + strings.Count(row[len(row)-1], "\n")
		if err := fn(line, utils.TrimAll(row)); err != nil {
			return err
		}
	}
}

// lineCounter counts the newlines read through it.
type lineCounter struct {
	r     io.Reader
	lines int
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.lines += bytes.Count(p[:n], []byte{'\n'})
	return n, err
}
