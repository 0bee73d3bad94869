package importer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/commercedesk/geodata-api/internal/repository"
	"github.com/commercedesk/geodata-api/internal/upstream"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Import formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Importable tables, in the only order that keeps references resolvable
const (
	TableCountries = "countries"
	TableStates    = "states"
	TableCities    = "cities"
)

var tableOrder = []string{TableCountries, TableStates, TableCities}

var (
	ErrUnknownFormat    = errors.New("unknown import format")
	ErrNoTables         = errors.New("no tables requested")
	ErrUnknownTable     = errors.New("unknown table")
	ErrImportInProgress = errors.New("import already in progress for table")
)

// Interface is the importer surface consumed by the HTTP layer
type Interface interface {
	StartImport(format string, tables []string) (string, error)
	GetProgress(importID string) *model.ImportJob
	GetCurrentVersion(ctx context.Context) (*string, error)
	GetLastSyncDate(ctx context.Context) (*time.Time, error)
}

// Importer performs one-shot bulk replaces of the location reference data
// and exposes job progress to polling callers.
type Importer struct {
	repos  *repository.Container
	client *upstream.Client
	jobs   *JobStore
	logger *zap.Logger

	mu       sync.Mutex
	inFlight map[string]string // table -> job id holding it
}

// New creates an importer. The job store is injected so independent
// instances never share progress state.
func New(repos *repository.Container, client *upstream.Client, jobs *JobStore, logger *zap.Logger) *Importer {
	return &Importer{
		repos:    repos,
		client:   client,
		jobs:     jobs,
		logger:   logger,
		inFlight: make(map[string]string),
	}
}

// StartImport validates the request, records a pending job and schedules the
// download-and-import work on its own goroutine. The returned id is
// immediately resolvable via GetProgress; the caller polls for the outcome.
// Requests overlapping an in-flight import's tables are rejected.
func (i *Importer) StartImport(format string, tables []string) (string, error) {
	if format != FormatCSV && format != FormatJSON {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	ordered, err := normalizeTables(tables)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := i.acquire(ordered, id); err != nil {
		return "", err
	}

	i.jobs.Create(id)
	go i.run(id, format, ordered)

	return id, nil
}

// GetProgress returns a snapshot of the job, or nil for an unknown id
func (i *Importer) GetProgress(importID string) *model.ImportJob {
	return i.jobs.Get(importID)
}

// GetCurrentVersion reports the dataset version currently loaded, nil when
// no sync has ever completed
func (i *Importer) GetCurrentVersion(ctx context.Context) (*string, error) {
	entry, err := i.repos.SyncHistory.Latest(ctx)
	if err != nil || entry == nil {
		return nil, err
	}
	return &entry.DataVersion, nil
}

// GetLastSyncDate reports when the dataset was last refreshed, nil when no
// sync has ever completed
func (i *Importer) GetLastSyncDate(ctx context.Context) (*time.Time, error) {
	entry, err := i.repos.SyncHistory.Latest(ctx)
	if err != nil || entry == nil {
		return nil, err
	}
	return &entry.SyncDate, nil
}

// run is the detached import body. Every error funnels into the job record;
// nothing propagates to the caller, which already returned.
func (i *Importer) run(id, format string, tables []string) {
	defer i.release(tables)

	// The request context died when the HTTP handler returned
	ctx := context.Background()

	if err := i.execute(ctx, id, format, tables); err != nil {
		i.jobs.Fail(id, err.Error())
		i.logger.Error("location import failed",
			zap.String("import_id", id),
			zap.Error(err))
	}
}

func (i *Importer) execute(ctx context.Context, id, format string, tables []string) error {
	i.jobs.Update(id, model.ImportStatusDownloading, 10, "downloading dataset")

	total := 0
	switch format {
	case FormatCSV:
		for done, table := range tables {
			records, err := i.client.FetchTableCSV(ctx, table)
			if err != nil {
				return err
			}
			n, err := i.insertTable(ctx, table, records)
			if err != nil {
				return err
			}
			total += n
			i.jobs.Update(id, model.ImportStatusImporting,
				tableProgress(20, 80, done+1, len(tables)),
				fmt.Sprintf("imported %s (%d rows)", table, n))
		}
	case FormatJSON:
		doc, err := i.client.FetchCombined(ctx)
		if err != nil {
			return err
		}
		for done, table := range tables {
			// A requested table missing from the document still truncates
			n, err := i.insertTable(ctx, table, doc[table])
			if err != nil {
				return err
			}
			total += n
			i.jobs.Update(id, model.ImportStatusImporting,
				tableProgress(30, 70, done+1, len(tables)),
				fmt.Sprintf("imported %s (%d rows)", table, n))
		}
	}

	version := i.client.FetchDatasetVersion(ctx)
	if err := i.repos.SyncHistory.Record(ctx, version, total, "success"); err != nil {
		return err
	}

	i.jobs.Complete(id, total)
	i.logger.Info("location import completed",
		zap.String("import_id", id),
		zap.String("data_version", version),
		zap.Int("records_imported", total))
	return nil
}

// insertTable replaces one table's contents: unconditional truncate, then
// chunked bulk upsert. Each table is its own unit of work; there is no
// transaction spanning tables.
func (i *Importer) insertTable(ctx context.Context, table string, records []upstream.Record) (int, error) {
	switch table {
	case TableCountries:
		rows := upstream.Countries(records)
		if err := i.repos.Country.Truncate(ctx); err != nil {
			return 0, err
		}
		if err := i.repos.Country.BulkUpsert(ctx, rows); err != nil {
			return 0, err
		}
		return len(rows), nil
	case TableStates:
		rows := upstream.States(records)
		if err := i.repos.State.Truncate(ctx); err != nil {
			return 0, err
		}
		if err := i.repos.State.BulkUpsert(ctx, rows); err != nil {
			return 0, err
		}
		return len(rows), nil
	case TableCities:
		rows := upstream.Cities(records)
		if err := i.repos.City.Truncate(ctx); err != nil {
			return 0, err
		}
		if err := i.repos.City.BulkUpsert(ctx, rows); err != nil {
			return 0, err
		}
		return len(rows), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTable, table)
}

func tableProgress(baseline, span, done, tables int) int {
	return baseline + int(math.Round(float64(span)*float64(done)/float64(tables)))
}

// normalizeTables dedupes the requested tables and returns them in the
// fixed countries -> states -> cities order
func normalizeTables(tables []string) ([]string, error) {
	requested := make(map[string]bool, len(tables))
	for _, table := range tables {
		switch table {
		case TableCountries, TableStates, TableCities:
			requested[table] = true
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
		}
	}
	if len(requested) == 0 {
		return nil, ErrNoTables
	}

	var ordered []string
	for _, table := range tableOrder {
		if requested[table] {
			ordered = append(ordered, table)
		}
	}
	return ordered, nil
}

func (i *Importer) acquire(tables []string, jobID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, table := range tables {
		if holder, busy := i.inFlight[table]; busy {
			return fmt.Errorf("%w: %s held by job %s", ErrImportInProgress, table, holder)
		}
	}
	for _, table := range tables {
		i.inFlight[table] = jobID
	}
	return nil
}

func (i *Importer) release(tables []string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, table := range tables {
		delete(i.inFlight, table)
	}
}
