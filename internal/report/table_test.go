package report

import (
	"strings"
	"testing"

	"github.com/naka-gawa/devsalary/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	byLanguage := map[string]domain.LanguageStatistics{
		"Y": {Language: "Y", VacanciesFound: 7, VacanciesProcessed: 2, AverageSalary: 1350},
		"X": {Language: "X", VacanciesFound: 120, VacanciesProcessed: 61, AverageSalary: 215000},
	}

	testCases := []struct {
		name      string
		languages []string
		opts      []Option
		order     []string
		salary    string
	}{
		{
			name:      "rows follow the language list",
			languages: []string{"X", "Y"},
			order:     []string{"X", "Y"},
			salary:    "215000",
		},
		{
			name:      "reversed language list",
			languages: []string{"Y", "X"},
			order:     []string{"Y", "X"},
			salary:    "215000",
		},
		{
			name:      "grouped digits",
			languages: []string{"X", "Y"},
			opts:      []Option{WithGroupedDigits()},
			order:     []string{"X", "Y"},
			salary:    "215,000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := domain.NewSourceReport("superjob", "SuperJob Moscow", tc.languages, byLanguage)

			out := Build(r, tc.opts...)

			assert.Contains(t, out, "SuperJob Moscow")
			assert.Contains(t, out, tc.salary)

			header := strings.Index(out, "Язык")
			require.GreaterOrEqual(t, header, 0)
			last := strings.Index(out, "Средняя зарплата")
			assert.Less(t, header, strings.Index(out, "Вакансий найдено"))
			assert.Less(t, strings.Index(out, "Вакансий найдено"), strings.Index(out, "Вакансий обработано"))
			assert.Less(t, strings.Index(out, "Вакансий обработано"), last)

			prev := last
			for _, lang := range tc.order {
				pos := strings.Index(out, "| "+lang+" ")
				require.GreaterOrEqual(t, pos, 0, "row %s missing:\n%s", lang, out)
				assert.Greater(t, pos, prev, "row %s out of order:\n%s", lang, out)
				prev = pos
			}
		})
	}
}

func TestBuild_RowValues(t *testing.T) {
	r := domain.NewSourceReport("headhunter", "HeadHunter Moscow", []string{"Go"}, map[string]domain.LanguageStatistics{
		"Go": {Language: "Go", VacanciesFound: 2, VacanciesProcessed: 1, AverageSalary: 1350},
	})

	lines := strings.Split(Build(r), "\n")

	var row string
	for _, line := range lines {
		if strings.HasPrefix(line, "| Go ") {
			row = line
		}
	}
	require.NotEmpty(t, row)
	cells := strings.Split(strings.Trim(row, "| "), "|")
	require.Len(t, cells, 4)
	assert.Equal(t, "Go", strings.TrimSpace(cells[0]))
	assert.Equal(t, "2", strings.TrimSpace(cells[1]))
	assert.Equal(t, "1", strings.TrimSpace(cells[2]))
	assert.Equal(t, "1350", strings.TrimSpace(cells[3]))
}
