package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/naka-gawa/devsalary/internal/domain"
	"github.com/naka-gawa/devsalary/internal/gateway"
	"github.com/naka-gawa/devsalary/internal/progress"
)

// Walk pages through src for keyword until the source signals exhaustion and
// returns the statistics for language.
//
// The page that signals exhaustion is not processed: both providers mark the
// end with a page past the last page of results. There is no page limit.
// A failed fetch aborts the walk and no statistics are returned.
func Walk[P, L any](ctx context.Context, src gateway.Source[P, L], language, keyword string, bar progress.Bar, logger *log.Logger) (domain.LanguageStatistics, error) {
	acc := domain.NewAccumulator(language)

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return domain.LanguageStatistics{}, err
		}

		page, err := src.FetchPage(ctx, keyword, index)
		if err != nil {
			return domain.LanguageStatistics{}, fmt.Errorf("failed to walk %s for %q: %w", src.Name(), keyword, err)
		}
		bar.Page(index)

		if src.IsLastPage(page, index) {
			logger.Printf("  %s: %q exhausted at page %d", src.Name(), keyword, index)
			break
		}

		listings := src.Listings(page)
		for _, listing := range listings {
			acc.Found()
			if estimate, ok := src.EstimateSalary(listing); ok {
				acc.Add(estimate)
			}
		}
		logger.Printf("  %s: %q page %d: %d listings", src.Name(), keyword, index, len(listings))
	}

	return acc.Finalize()
}

// Survey collects statistics for one source, one language at a time.
type Survey interface {
	// Name is the machine name of the source.
	Name() string
	// Label is the human-facing name, e.g. "HeadHunter".
	Label() string
	// Title heads the source's report table.
	Title() string
	Collect(ctx context.Context, language string, bar progress.Bar) (domain.LanguageStatistics, error)
}

type survey[P, L any] struct {
	src           gateway.Source[P, L]
	label         string
	title         string
	keywordPrefix string
	logger        *log.Logger
}

// NewSurvey binds a source to the search keyword "<keywordPrefix> <language>".
func NewSurvey[P, L any](src gateway.Source[P, L], label, title, keywordPrefix string, logger *log.Logger) Survey {
	return &survey[P, L]{
		src:           src,
		label:         label,
		title:         title,
		keywordPrefix: keywordPrefix,
		logger:        logger,
	}
}

func (s *survey[P, L]) Name() string { return s.src.Name() }

func (s *survey[P, L]) Label() string { return s.label }

func (s *survey[P, L]) Title() string { return s.title }

func (s *survey[P, L]) Collect(ctx context.Context, language string, bar progress.Bar) (domain.LanguageStatistics, error) {
	return Walk(ctx, s.src, language, Keyword(s.keywordPrefix, language), bar, s.logger)
}

// Keyword builds the search phrase for a language.
func Keyword(prefix, language string) string {
	if prefix == "" {
		return language
	}
	return prefix + " " + language
}
