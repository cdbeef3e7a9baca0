// Package enrich fills missing plant record fields from external sources.
//
// The Enricher walks records in input order and consults each source in
// priority order, fetching a page only when the source could still fill a
// missing field. Non-additive fields are written only while missing; additive
// fields accumulate across sources.
package enrich

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/normalize"
	"golang.org/x/sync/errgroup"
)

// Enricher runs enrichment passes over plant records.
type Enricher struct {
	Fetcher plantfill.Fetcher
	Parsers plantfill.ParserRegistry

	// Keys assigns keys to records without one. Nil disables key assignment.
	Keys plantfill.KeyGenerator

	// Sources lists the sources to consult, highest priority first.
	// Defaults to plantfill.Sources().
	Sources []plantfill.Source

	// Logger receives skipped rows, skipped sources and fetch failures.
	// Defaults to discarding output.
	Logger *slog.Logger

	// Concurrency is the number of records enriched in parallel.
	// Values of 1 or less process records sequentially.
	Concurrency int
}

// Outcome describes what one record's enrichment did.
type Outcome struct {
	// Skipped is true when the record has no botanical name.
	Skipped bool

	// Key is the key assigned to the record, if any.
	Key string

	// Filled lists the fields written, in the order first written.
	Filled []plantfill.Field

	// Fetched lists the sources whose pages were fetched and parsed.
	Fetched []plantfill.Source

	// Failed lists the sources that were consulted but unavailable.
	Failed []plantfill.Source
}

// Result holds the totals of an enrichment pass.
type Result struct {
	Total          int
	Processed      int
	Skipped        int
	KeysAssigned   int
	FieldsFilled   int
	SourcesFetched int
	SourcesFailed  int
}

// ProgressEvent reports progress during an enrichment pass.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Outcome   Outcome
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressRecord
	ProgressFinished
)

// ProgressFunc is a callback for reporting enrichment progress.
// Calls are serialized even when records are enriched in parallel.
type ProgressFunc func(event ProgressEvent)

// EnrichAll runs one pass over records, enriching them in place.
//
// Existing keys are reserved and missing keys assigned in input order before
// any fetching starts, so key assignment does not depend on Concurrency.
// Cancellation is honored between records; the partial Result is returned
// together with the context error.
func (e *Enricher) EnrichAll(ctx context.Context, records []*plantfill.Record, progress ProgressFunc) (*Result, error) {
	res := &Result{Total: len(records)}
	res.KeysAssigned = e.assignKeys(records)

	var mu sync.Mutex
	notify := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}
	record := func(rec *plantfill.Record, out Outcome) {
		mu.Lock()
		defer mu.Unlock()
		if out.Skipped {
			res.Skipped++
		} else {
			res.Processed++
		}
		res.FieldsFilled += len(out.Filled)
		res.SourcesFetched += len(out.Fetched)
		res.SourcesFailed += len(out.Failed)
		notify(ProgressEvent{
			Type:      ProgressRecord,
			Completed: res.Processed + res.Skipped,
			Total:     res.Total,
			Name:      rec.Name(),
			Outcome:   out,
		})
	}

	notify(ProgressEvent{Type: ProgressStarted, Total: res.Total})

	var err error
	if e.Concurrency <= 1 {
		for _, rec := range records {
			if err = ctx.Err(); err != nil {
				break
			}
			record(rec, e.EnrichRecord(ctx, rec))
		}
	} else {
		var g errgroup.Group
		g.SetLimit(e.Concurrency)
		for _, rec := range records {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				record(rec, e.EnrichRecord(ctx, rec))
				return nil
			})
		}
		err = g.Wait()
		if err == nil {
			err = ctx.Err()
		}
	}

	notify(ProgressEvent{
		Type:      ProgressFinished,
		Completed: res.Processed + res.Skipped,
		Total:     res.Total,
	})
	return res, err
}

// EnrichRecord enriches one record in place.
// Source failures are logged and leave the record's fields unchanged; they
// never fail the record.
func (e *Enricher) EnrichRecord(ctx context.Context, rec *plantfill.Record) Outcome {
	var out Outcome

	name := rec.Name()
	if name == "" {
		e.logger().Debug("skipping record without botanical name")
		out.Skipped = true
		return out
	}
	log := e.logger().With("name", name)

	out.Key = e.assignKey(rec)

	for _, src := range e.sources() {
		if !needs(rec, src) {
			log.Debug("skipping source", "source", src, "reason", "nothing missing")
			continue
		}

		link := Link(rec, src)
		if link == "" {
			log.Debug("skipping source", "source", src, "reason", "no link")
			continue
		}

		partial, err := e.consult(ctx, src, link)
		if err != nil {
			log.Info("source unavailable", "source", src, "url", link, "error", err)
			out.Failed = append(out.Failed, src)
			continue
		}
		out.Fetched = append(out.Fetched, src)

		for _, f := range apply(rec, src, partial) {
			if !slices.Contains(out.Filled, f) {
				out.Filled = append(out.Filled, f)
			}
		}
	}

	renormalize(rec)
	return out
}

// consult fetches and parses one source page.
func (e *Enricher) consult(ctx context.Context, src plantfill.Source, link string) (plantfill.PartialRecord, error) {
	parser := e.Parsers.Get(src)
	if parser == nil {
		return nil, plantfill.Errorf(plantfill.ENOTFOUND, "no parser registered for source %q", src)
	}

	html, err := e.Fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, err
	}
	return parser.Parse(html)
}

// apply folds a source's partial record into rec and returns the fields it
// changed. Only fields the source supplies are considered.
func apply(rec *plantfill.Record, src plantfill.Source, partial plantfill.PartialRecord) []plantfill.Field {
	var changed []plantfill.Field
	for _, f := range src.Fields() {
		v := partial[f]
		if v == "" || !rec.Has(f) {
			continue
		}

		if plantfill.IsAdditive(f) {
			existing := rec.Get(f)
			if existing == plantfill.NotAvailable {
				if rec.Reviewed() {
					continue
				}
				existing = ""
			}
			merged := normalize.Merge(f, existing, v)
			if merged != rec.Get(f) {
				rec.Set(f, merged)
				changed = append(changed, f)
			}
			continue
		}

		if rec.Missing(f) {
			rec.Set(f, v)
			changed = append(changed, f)
		}
	}
	return changed
}

// renormalize re-applies the canonical normalizer to every additive field.
func renormalize(rec *plantfill.Record) {
	for _, f := range plantfill.AdditiveFields() {
		v := rec.Get(f)
		if v == "" || v == plantfill.NotAvailable {
			continue
		}
		rec.Set(f, normalize.Field(f, v))
	}
}

// needs reports whether src could still fill a missing field of rec.
func needs(rec *plantfill.Record, src plantfill.Source) bool {
	for _, f := range src.Fields() {
		if rec.Missing(f) {
			return true
		}
	}
	return false
}

// Link returns the page URL to consult for src, or "" when src must not be
// consulted. The source's own link field wins when it holds a valid URL. Only
// when that field is still missing is the first "other link" served from the
// source's host used, so a reviewed "NA" link keeps the source skipped.
func Link(rec *plantfill.Record, src plantfill.Source) string {
	lf := src.LinkField()
	if link := strings.TrimSpace(rec.Get(lf)); validURL(link) {
		return link
	}
	if rec.Has(lf) && !rec.Missing(lf) {
		return ""
	}
	for _, l := range plantfill.ParseOtherLinks(rec.Get(plantfill.FieldLinkOthers)) {
		if s, ok := plantfill.SourceForURL(l.URL); ok && s == src && validURL(l.URL) {
			return l.URL
		}
	}
	return ""
}

// validURL reports whether s is an absolute http or https URL.
func validURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// assignKeys reserves existing keys, then assigns missing ones in input order.
func (e *Enricher) assignKeys(records []*plantfill.Record) int {
	if e.Keys == nil {
		return 0
	}
	for _, rec := range records {
		if k := strings.TrimSpace(rec.Get(plantfill.FieldKey)); k != "" {
			e.Keys.Reserve(k)
		}
	}
	var n int
	for _, rec := range records {
		if rec.Name() != "" && e.assignKey(rec) != "" {
			n++
		}
	}
	return n
}

// assignKey gives rec a key when it carries an empty key field.
func (e *Enricher) assignKey(rec *plantfill.Record) string {
	if e.Keys == nil || !rec.Has(plantfill.FieldKey) || strings.TrimSpace(rec.Get(plantfill.FieldKey)) != "" {
		return ""
	}
	key := e.Keys.Generate(rec.Name())
	rec.Set(plantfill.FieldKey, key)
	return key
}

func (e *Enricher) sources() []plantfill.Source {
	if len(e.Sources) == 0 {
		return plantfill.Sources()
	}
	return e.Sources
}

func (e *Enricher) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
