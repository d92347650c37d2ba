package gateway

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/naka-gawa/devsalary/internal/domain"
)

const (
	// HeadHunterURL is the public vacancy search endpoint.
	HeadHunterURL = "https://api.hh.ru/vacancies"
	// headHunterMoscow is HeadHunter's area id for Moscow.
	headHunterMoscow = 1
	// headHunterPeriodDays limits the search to recently published vacancies.
	headHunterPeriodDays = 30
	// RoubleCurrency is HeadHunter's currency code for roubles.
	RoubleCurrency = "RUR"
)

// HeadHunterPage is one page of the HeadHunter search response.
type HeadHunterPage struct {
	Items   []HeadHunterVacancy `json:"items"`
	Found   int                 `json:"found"`
	Pages   int                 `json:"pages"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
}

// HeadHunterVacancy is a single vacancy; Salary is null when the employer gave none.
type HeadHunterVacancy struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Salary *HeadHunterSalary `json:"salary"`
}

// HeadHunterSalary is the nested salary object with its currency tag.
type HeadHunterSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
}

// HeadHunter is the Source implementation for api.hh.ru.
type HeadHunter struct {
	client   *resty.Client
	baseURL  string
	pageSize int
	logger   *log.Logger
}

// NewHeadHunter creates a HeadHunter adapter.
func NewHeadHunter(client *resty.Client, baseURL string, pageSize int, logger *log.Logger) *HeadHunter {
	if baseURL == "" {
		baseURL = HeadHunterURL
	}
	return &HeadHunter{
		client:   client,
		baseURL:  baseURL,
		pageSize: pageSize,
		logger:   logger,
	}
}

func (h *HeadHunter) Name() string { return "headhunter" }

// FetchPage requests one page of Moscow vacancies with a salary, published in the last 30 days.
func (h *HeadHunter) FetchPage(ctx context.Context, keyword string, page int) (HeadHunterPage, error) {
	params := map[string]string{
		"text":             keyword,
		"area":             strconv.Itoa(headHunterMoscow),
		"period":           strconv.Itoa(headHunterPeriodDays),
		"only_with_salary": "true",
		"page":             strconv.Itoa(page),
	}
	if h.pageSize > 0 {
		params["per_page"] = strconv.Itoa(h.pageSize)
	}

	var result HeadHunterPage
	if err := getJSON(ctx, h.client, h.Name(), h.baseURL, page, params, nil, &result); err != nil {
		return HeadHunterPage{}, err
	}
	return result, nil
}

// IsLastPage is true once the requested index reaches the reported page count.
func (h *HeadHunter) IsLastPage(page HeadHunterPage, index int) bool {
	return index >= page.Pages
}

func (h *HeadHunter) Listings(page HeadHunterPage) []HeadHunterVacancy {
	return page.Items
}

// EstimateSalary only estimates rouble salaries.
func (h *HeadHunter) EstimateSalary(v HeadHunterVacancy) (float64, bool) {
	r, err := h.salaryRange(v)
	if err != nil {
		if errors.Is(err, ErrDataShape) {
			h.logger.Printf("  vacancy %s: %v", v.ID, err)
		}
		return 0, false
	}
	return domain.PredictSalary(r)
}

var errForeignCurrency = errors.New("salary not in roubles")

func (h *HeadHunter) salaryRange(v HeadHunterVacancy) (domain.SalaryRange, error) {
	if v.Salary == nil {
		return domain.SalaryRange{}, &DataShapeError{Source: h.Name(), Field: "salary"}
	}
	if v.Salary.Currency != RoubleCurrency {
		return domain.SalaryRange{}, errForeignCurrency
	}
	return domain.SalaryRange{From: v.Salary.From, To: v.Salary.To}, nil
}
