// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrFinalized is returned when an Accumulator is finalized a second time.
var ErrFinalized = errors.New("statistics already finalized")

// LanguageStatistics holds the vacancy figures for a single language on a single source.
// It is the core domain entity of this application.
type LanguageStatistics struct {
	Language           string `json:"language"`
	VacanciesFound     int    `json:"vacancies_found"`
	VacanciesProcessed int    `json:"vacancies_processed"`
	AverageSalary      int    `json:"average_salary"`
}

// Accumulator collects per-listing figures during a walk.
// It starts running and is finalized exactly once; the average is only
// ever derived from the collected estimates.
type Accumulator struct {
	language  string
	found     int
	salaries  []float64
	finalized bool
}

// NewAccumulator returns a running accumulator for language.
func NewAccumulator(language string) *Accumulator {
	return &Accumulator{language: language}
}

// Found counts one more listing.
func (a *Accumulator) Found() {
	if a.finalized {
		return
	}
	a.found++
}

// Add records a salary estimate for a listing already counted by Found.
func (a *Accumulator) Add(estimate float64) {
	if a.finalized {
		return
	}
	a.salaries = append(a.salaries, estimate)
}

// Finalize computes the statistics and freezes the accumulator.
func (a *Accumulator) Finalize() (LanguageStatistics, error) {
	if a.finalized {
		return LanguageStatistics{}, fmt.Errorf("finalize %q: %w", a.language, ErrFinalized)
	}
	a.finalized = true

	result := LanguageStatistics{
		Language:       a.language,
		VacanciesFound: a.found,
	}
	if a.found == 0 || len(a.salaries) == 0 {
		return result, nil
	}

	mean, err := stats.Mean(a.salaries)
	if err != nil {
		return LanguageStatistics{}, fmt.Errorf("average salary for %q: %w", a.language, err)
	}
	result.VacanciesProcessed = len(a.salaries)
	result.AverageSalary = int(math.Floor(mean))
	// A zero average is reserved for "nothing processed".
	if result.AverageSalary < 1 {
		result.AverageSalary = 1
	}
	return result, nil
}

// SourceReport is the ordered, read-only set of statistics collected from one source.
type SourceReport struct {
	source string
	title  string
	rows   []LanguageStatistics
	index  map[string]int
}

// NewSourceReport orders statistics by languages. A language without
// statistics gets an empty row so every requested language is reported.
func NewSourceReport(source, title string, languages []string, byLanguage map[string]LanguageStatistics) *SourceReport {
	r := &SourceReport{
		source: source,
		title:  title,
		rows:   make([]LanguageStatistics, 0, len(languages)),
		index:  make(map[string]int, len(languages)),
	}
	for _, lang := range languages {
		if _, dup := r.index[lang]; dup {
			continue
		}
		row, ok := byLanguage[lang]
		if !ok {
			row = LanguageStatistics{Language: lang}
		}
		r.index[lang] = len(r.rows)
		r.rows = append(r.rows, row)
	}
	return r
}

func (r *SourceReport) Source() string { return r.source }

func (r *SourceReport) Title() string { return r.title }

// Rows returns a copy of the report rows in language order.
func (r *SourceReport) Rows() []LanguageStatistics {
	out := make([]LanguageStatistics, len(r.rows))
	copy(out, r.rows)
	return out
}

// Get looks up the statistics for a single language.
func (r *SourceReport) Get(language string) (LanguageStatistics, bool) {
	i, ok := r.index[language]
	if !ok {
		return LanguageStatistics{}, false
	}
	return r.rows[i], true
}
