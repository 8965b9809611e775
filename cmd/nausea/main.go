package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"academic_nausea/internal/config"
	"academic_nausea/internal/db"
	"academic_nausea/internal/lexicon"
	"academic_nausea/internal/logging"
	"academic_nausea/internal/nausea"
	"academic_nausea/internal/pipeline"
	"academic_nausea/internal/workspace"
)

const usage = `usage: nausea [flags] calculate <path> [path...]
       nausea [flags] list [document name]

flags:
`

type options struct {
	configPath string
	database   string
	table      string
	workers    int
	encoding   string
	logLevel   string
	progress   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nausea", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.database, "database", "", "SQLite database file")
	fs.StringVar(&opts.table, "table", "", "Results table name")
	fs.IntVar(&opts.workers, "workers", 0, "Number of documents analysed in parallel (0 = one per CPU)")
	fs.StringVar(&opts.encoding, "encoding", "", "Text encoding of plain-text documents")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level")
	fs.BoolVar(&opts.progress, "progress", false, "Show a progress bar while calculating")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch {
	case cmd == "calculate" && len(rest) > 0:
	case cmd == "list" && len(rest) <= 1:
	default:
		fmt.Fprintf(stderr, "invalid command: %q\n", fs.Args())
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(stderr, "configuration failed: %v\n", err)
		return 1
	}
	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger initialization failed: %v\n", err)
		return 1
	}
	log := logger.WithField("run_id", uuid.NewString())

	repo, err := db.Open(cfg.Database, cfg.Table)
	if err != nil {
		log.WithError(err).Error("open database")
		return 1
	}
	defer repo.Close()

	if cmd == "calculate" {
		return calculate(cfg, opts.progress, repo, rest, log, stderr)
	}
	name := ""
	if len(rest) == 1 {
		name = rest[0]
	}
	return list(repo, name, log, stdout)
}

// loadConfig layers explicitly set flags over the loaded configuration.
func loadConfig(fs *flag.FlagSet, opts options) (config.Config, error) {
	root, err := workspace.EnsureDefault()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(opts.configPath, "nausea.yaml", workspace.ConfigPath(root))
	if err != nil {
		return config.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "database":
			cfg.Database = opts.database
		case "table":
			cfg.Table = opts.table
		case "workers":
			cfg.Workers = opts.workers
		case "encoding":
			cfg.Encoding = opts.encoding
		case "log-level":
			cfg.LogLevel = opts.logLevel
		}
	})
	if cfg.Database == "" {
		cfg.Database = workspace.DatabasePath(root)
	}
	return cfg, cfg.Validate()
}

func calculate(cfg config.Config, progress bool, repo *db.Repository, args []string, log *logrus.Entry, stderr io.Writer) int {
	lex, err := lexicon.NewRussian()
	if err != nil {
		log.WithError(err).Error("load lexicon")
		return 1
	}

	results, fraud := repo.Tables()
	log.Infof("results table name: %s, fraud table name: %s", results, fraud)
	if abs, err := filepath.Abs(cfg.Database); err == nil {
		log.Infof("saving to database located in %s", abs)
	}

	var (
		bar     *progressbar.ProgressBar
		skipped atomic.Int64
	)
	runner := &pipeline.Runner{
		Analyzer: nausea.NewAnalyzer(lex),
		Encoding: cfg.Encoding,
		Workers:  cfg.Workers,
		Log:      log.WithField("component", "pipeline"),
		Trace:    stderr,
		OnDocument: func(path string, err error) {
			if err != nil {
				skipped.Add(1)
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		},
	}

	paths := runner.ExpandPaths(args)
	if progress {
		bar = newProgressBar(len(paths), stderr)
	}
	docs := runner.Run(paths...)
	if bar != nil {
		_ = bar.Finish()
	}
	if err := repo.Store(docs); err != nil {
		log.WithError(err).Error("save results")
		return 1
	}

	color.New(color.FgGreen).Fprintf(stderr, "saved %d of %d documents\n", len(docs), len(paths))
	if n := skipped.Load(); n > 0 {
		color.New(color.FgYellow).Fprintf(stderr, "skipped %d documents\n", n)
	}
	return 0
}

func list(repo *db.Repository, name string, log *logrus.Entry, stdout io.Writer) int {
	docs, err := repo.Fetch(name)
	if err != nil {
		log.WithError(err).Error("read results")
		return 1
	}
	if name != "" && len(docs) == 0 {
		log.WithField("document", name).Error("document not found")
		return 1
	}
	for _, d := range docs {
		fmt.Fprintln(stdout, nausea.FormatLine(d))
	}
	return 0
}

func newProgressBar(total int, out io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(color.BlueString("analysing")),
		progressbar.OptionSetItsString("docs"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}
