// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/naka-gawa/devsalary/internal/domain"
	"github.com/naka-gawa/devsalary/internal/progress"
	"golang.org/x/sync/errgroup"
)

// Aggregator is the use case for building per-source salary reports.
// It orchestrates the language walks of every survey.
type Aggregator struct {
	surveys     []Survey
	logger      *log.Logger
	tracker     progress.Tracker
	concurrency int
	announce    func(s Survey)
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithConcurrency sets how many language walks of one source may run at once.
// The default of 1 walks the languages one after another.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithTracker sets the progress display.
func WithTracker(t progress.Tracker) Option {
	return func(a *Aggregator) {
		if t != nil {
			a.tracker = t
		}
	}
}

// WithAnnouncer registers a callback run before each source is walked.
func WithAnnouncer(fn func(s Survey)) Option {
	return func(a *Aggregator) {
		a.announce = fn
	}
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(surveys []Survey, logger *log.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		surveys:     surveys,
		logger:      logger,
		tracker:     progress.Discard,
		concurrency: 1,
		announce:    func(Survey) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate walks every language on every source, source by source, and
// returns one report per survey in survey order.
// The first failure stops the run; no partial reports are returned.
func (a *Aggregator) Aggregate(ctx context.Context, languages []string) ([]*domain.SourceReport, error) {
	a.logger.Println("Usecase: Starting salary aggregation...")

	reports := make([]*domain.SourceReport, 0, len(a.surveys))
	for _, s := range a.surveys {
		a.announce(s)
		report, err := a.collect(ctx, s, languages)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
		a.logger.Printf("Usecase: %s done.", s.Label())
	}

	a.logger.Println("Usecase: Aggregation complete.")
	return reports, nil
}

func (a *Aggregator) collect(ctx context.Context, s Survey, languages []string) (*domain.SourceReport, error) {
	bar := a.tracker.Start(s.Name(), len(languages))
	defer bar.Finish()

	// Each walk writes only its own slot.
	results := make([]domain.LanguageStatistics, len(languages))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.concurrency)
	for i, language := range languages {
		i, language := i, language
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			bar.Language(language)
			stats, err := s.Collect(egCtx, language, bar)
			if err != nil {
				return err
			}
			results[i] = stats
			bar.Advance()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	byLanguage := make(map[string]domain.LanguageStatistics, len(results))
	for _, stats := range results {
		byLanguage[stats.Language] = stats
	}
	return domain.NewSourceReport(s.Name(), s.Title(), languages, byLanguage), nil
}
