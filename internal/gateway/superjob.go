package gateway

import (
	"context"
	"log"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/naka-gawa/devsalary/internal/domain"
)

const (
	// SuperJobURL is the public vacancy search endpoint.
	SuperJobURL = "https://api.superjob.ru/2.0/vacancies/"
	// superJobMoscow is SuperJob's town id for Moscow.
	superJobMoscow = 4
)

// SuperJobPage is one page of the SuperJob search response.
type SuperJobPage struct {
	Objects []SuperJobVacancy `json:"objects"`
	Total   int               `json:"total"`
	More    bool              `json:"more"`
}

// SuperJobVacancy carries the flat payment fields SuperJob uses for salaries.
// SuperJob reports an unset bound as 0 or null.
type SuperJobVacancy struct {
	ID          int      `json:"id"`
	Profession  string   `json:"profession"`
	PaymentFrom *float64 `json:"payment_from"`
	PaymentTo   *float64 `json:"payment_to"`
	Currency    string   `json:"currency"`
}

// SuperJob is the Source implementation for api.superjob.ru.
type SuperJob struct {
	client   *resty.Client
	baseURL  string
	secret   string
	pageSize int
	logger   *log.Logger
}

// NewSuperJob creates a SuperJob adapter. secret is sent as X-Api-App-Id;
// an empty secret is not checked here and surfaces as an auth failure.
func NewSuperJob(client *resty.Client, baseURL, secret string, pageSize int, logger *log.Logger) *SuperJob {
	if baseURL == "" {
		baseURL = SuperJobURL
	}
	return &SuperJob{
		client:   client,
		baseURL:  baseURL,
		secret:   secret,
		pageSize: pageSize,
		logger:   logger,
	}
}

func (s *SuperJob) Name() string { return "superjob" }

// FetchPage requests one page of Moscow vacancies matching keyword.
func (s *SuperJob) FetchPage(ctx context.Context, keyword string, page int) (SuperJobPage, error) {
	params := map[string]string{
		"keyword": keyword,
		"town":    strconv.Itoa(superJobMoscow),
		"page":    strconv.Itoa(page),
	}
	if s.pageSize > 0 {
		params["count"] = strconv.Itoa(s.pageSize)
	}
	headers := map[string]string{"X-Api-App-Id": s.secret}

	var result SuperJobPage
	if err := getJSON(ctx, s.client, s.Name(), s.baseURL, page, params, headers, &result); err != nil {
		return SuperJobPage{}, err
	}
	return result, nil
}

// IsLastPage is true once SuperJob says no more results exist.
func (s *SuperJob) IsLastPage(page SuperJobPage, _ int) bool {
	return !page.More
}

func (s *SuperJob) Listings(page SuperJobPage) []SuperJobVacancy {
	return page.Objects
}

// EstimateSalary estimates from the payment fields. There is no currency filter.
func (s *SuperJob) EstimateSalary(v SuperJobVacancy) (float64, bool) {
	return domain.PredictSalary(domain.SalaryRange{
		From: paymentBound(v.PaymentFrom),
		To:   paymentBound(v.PaymentTo),
	})
}

func paymentBound(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
