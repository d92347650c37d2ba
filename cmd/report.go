// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/naka-gawa/devsalary/internal/config"
	"github.com/naka-gawa/devsalary/internal/gateway"
	"github.com/naka-gawa/devsalary/internal/progress"
	"github.com/naka-gawa/devsalary/internal/report"
	"github.com/naka-gawa/devsalary/internal/usecase"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// DefaultLanguages is the language list a run reports on unless told otherwise.
var DefaultLanguages = []string{
	"Python", "Java", "JavaScript", "C#", "C++", "PHP", "Typescript", "Swift", "Go", "Node.js",
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints average salaries per language for each job site",
	Long: `Walks every result page of HeadHunter and SuperJob for each language,
estimates a rouble salary per vacancy and prints one table per site.

SUPERJOB_SECRET_KEY must hold a SuperJob API key. HH_ACCESS_TOKEN is optional.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		runID := strings.SplitN(uuid.NewString(), "-", 2)[0]
		logger := log.New(io.Discard, "["+runID+"] ", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		// Get other flags.
		envFile, _ := cmd.InheritedFlags().GetString("env-file")
		languages, _ := cmd.Flags().GetStringSlice("languages")
		keyword, _ := cmd.Flags().GetString("keyword")
		sources, _ := cmd.Flags().GetStringSlice("sources")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		quiet, _ := cmd.Flags().GetBool("quiet")
		grouped, _ := cmd.Flags().GetBool("grouped")

		// The provider is the only place that touches the environment.
		cfg := config.Load(config.NewEnvProvider(envFile))

		surveys, err := buildSurveys(cfg, sources, keyword, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var tracker progress.Tracker = progress.NewBarTracker(os.Stderr)
		if quiet {
			tracker = progress.Discard
		}
		aggregator := usecase.NewAggregator(surveys, logger,
			usecase.WithConcurrency(concurrency),
			usecase.WithTracker(tracker),
			usecase.WithAnnouncer(func(s usecase.Survey) {
				pterm.Info.Printfln("Fetching %s...", s.Label())
			}),
		)

		reports, err := aggregator.Aggregate(ctx, languages)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to aggregate salaries: %v\n", err)
			var transportErr *gateway.TransportError
			if errors.As(err, &transportErr) && transportErr.IsAuth() {
				fmt.Fprintln(os.Stderr, "Hint: check SUPERJOB_SECRET_KEY and HH_ACCESS_TOKEN.")
			}
			os.Exit(1)
		}

		var opts []report.Option
		if grouped {
			opts = append(opts, report.WithGroupedDigits())
		}
		for i, r := range reports {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(report.Build(r, opts...))
		}
	},
}

// buildSurveys wires one survey per requested source, in the requested order.
func buildSurveys(cfg *config.Config, sources []string, keyword string, logger *log.Logger) ([]usecase.Survey, error) {
	surveys := make([]usecase.Survey, 0, len(sources))
	for _, name := range sources {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "headhunter", "hh":
			client := gateway.NewRESTClient(gateway.ClientOptions{
				Timeout:    cfg.HTTP.Timeout,
				Retries:    cfg.HTTP.Retries,
				RetryWait:  cfg.HTTP.RetryWait,
				UserAgent:  cfg.HeadHunter.UserAgent,
				HTTPClient: gateway.NewBearerHTTPClient(cfg.HeadHunter.AccessToken),
			})
			hh := gateway.NewHeadHunter(client, cfg.HeadHunter.URL, cfg.HeadHunter.PageSize, logger)
			surveys = append(surveys, usecase.NewSurvey[gateway.HeadHunterPage, gateway.HeadHunterVacancy](hh, "HeadHunter", "HeadHunter Moscow", keyword, logger))
		case "superjob", "sj":
			client := gateway.NewRESTClient(gateway.ClientOptions{
				Timeout:   cfg.HTTP.Timeout,
				Retries:   cfg.HTTP.Retries,
				RetryWait: cfg.HTTP.RetryWait,
			})
			sj := gateway.NewSuperJob(client, cfg.SuperJob.URL, cfg.SuperJob.SecretKey, cfg.SuperJob.PageSize, logger)
			surveys = append(surveys, usecase.NewSurvey[gateway.SuperJobPage, gateway.SuperJobVacancy](sj, "SuperJob", "SuperJob Moscow", keyword, logger))
		default:
			return nil, fmt.Errorf("unknown source %q (want headhunter or superjob)", name)
		}
	}
	if len(surveys) == 0 {
		return nil, errors.New("no sources selected")
	}
	return surveys, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringSliceP("languages", "l", DefaultLanguages, "Languages to report on, in table order")
	reportCmd.Flags().StringP("keyword", "k", "Программист", "Search phrase placed before each language")
	reportCmd.Flags().StringSliceP("sources", "s", []string{"headhunter", "superjob"}, "Job sites to query, in output order")
	reportCmd.Flags().Int("concurrency", 1, "Languages walked at once per site")
	reportCmd.Flags().BoolP("quiet", "q", false, "Hide progress bars")
	reportCmd.Flags().Bool("grouped", false, "Group salary digits with commas")
}
