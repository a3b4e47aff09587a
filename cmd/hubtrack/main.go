package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/dm/hubtrack/internal/chart"
	"github.com/dm/hubtrack/internal/client"
	"github.com/dm/hubtrack/internal/collector"
	"github.com/dm/hubtrack/internal/config"
	"github.com/dm/hubtrack/internal/engine"
	"github.com/dm/hubtrack/internal/report"
	"github.com/dm/hubtrack/internal/store"
	"github.com/dm/hubtrack/internal/tui"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: hubtrack <command> [flags]\n\n")
	fmt.Fprintf(os.Stderr, "commands:\n")
	fmt.Fprintf(os.Stderr, "  collect   fetch pull counts and append samples to the table\n")
	fmt.Fprintf(os.Stderr, "  report    print summary stats, write trend charts, open the viewer\n\n")
	fmt.Fprintf(os.Stderr, "examples:\n")
	fmt.Fprintf(os.Stderr, "  hubtrack collect\n")
	fmt.Fprintf(os.Stderr, "  hubtrack collect --namespace lmcache --repos vllm-openai,lmstack-router\n")
	fmt.Fprintf(os.Stderr, "  hubtrack report --table pull_counts.csv --chart-dir ./charts\n")
}

// splitRepos parses a comma-separated repository list, trimming whitespace
// and dropping empty entries.
func splitRepos(s string) []string {
	var repos []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			repos = append(repos, part)
		}
	}
	return repos
}

// configFlags registers the shared config flags on fs and returns a function
// that assembles the final Config after parsing, starting from the defaults.
func configFlags(fs *flag.FlagSet) func() config.Config {
	defaults := config.Default()
	namespace := fs.String("namespace", defaults.Namespace, "Docker Hub namespace")
	repos := fs.String("repos", strings.Join(defaults.Repositories, ","), "comma-separated repository names")
	table := fs.String("table", defaults.TablePath, "path of the CSV sample table")
	chartDir := fs.String("chart-dir", defaults.ChartDir, "directory for chart PNG output")
	tz := fs.String("tz", defaults.TimeZone, "IANA time zone for display timestamps")

	return func() config.Config {
		return config.Config{
			Namespace:    *namespace,
			Repositories: splitRepos(*repos),
			TablePath:    *table,
			ChartDir:     *chartDir,
			TimeZone:     *tz,
		}
	}
}

func parseConfig(name string, args []string) config.Config {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	build := configFlags(fs)
	_ = fs.Parse(args) // ExitOnError: Parse never returns an error

	cfg := build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func runCollect(args []string) {
	cfg := parseConfig("collect", args)

	c := collector.New(
		cfg,
		client.NewDefaultClient(client.ClientConfig{}),
		store.NewCSVStore(cfg.TablePath),
		os.Stdout,
		logrus.StandardLogger(),
	)
	c.Run(context.Background())
}

func runReport(args []string) {
	cfg := parseConfig("report", args)

	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	samples, err := store.NewCSVStore(cfg.TablePath).Load(loc)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to load data from %s", cfg.TablePath)
		os.Exit(1)
	}

	repos := engine.Repositories(samples)
	fmt.Printf("Loaded %d data points for %d repositories\n", len(samples), len(repos))

	for _, repo := range repos {
		path, err := chart.RenderFile(cfg.ChartDir, samples, repo)
		if err != nil {
			logrus.WithError(err).Errorf("Failed to render chart for %s", repo)
			continue
		}
		fmt.Printf("Saved: %s\n", path)
	}

	report.WriteSummary(os.Stdout, samples)

	app := tui.NewApp(samples)
	if app.Empty() {
		return
	}
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logrus.WithError(err).Error("Trend viewer failed")
		os.Exit(1)
	}
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "collect":
		runCollect(os.Args[2:])
	case "report":
		runReport(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}
