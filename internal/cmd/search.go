package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/haybale/internal/config"
	"github.com/harrison/haybale/internal/history"
	"github.com/harrison/haybale/internal/logger"
	"github.com/harrison/haybale/internal/render"
	"github.com/harrison/haybale/internal/search"
)

// searchFlags holds the raw flag values NewSearchCommand parses, kept
// together so runSearch can be called directly from tests.
type searchFlags struct {
	namePattern    string
	contentPattern string
	caseSensitive  bool
	minSize        string
	maxSize        string
	modifiedAfter  string
	modifiedBefore string
	searchBinaries bool
	includeHidden  bool
	maxDepth       int
	maxDepthSet    bool
	format         string
	noColor        bool
	logLevel       string
	noHistory      bool
	configPath     string
}

// NewSearchCommand creates the 'haybale search' command.
func NewSearchCommand() *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search [root]",
		Short: "Recursively search files by name and content",
		Long: `Search walks the directory tree rooted at [root] (default ".") and
reports every file whose name matches --name and, when given, whose
content matches --content. Patterns are either shell-style wildcards
(with ';'-separated alternatives) or "r:<regexp>" for a regular
expression.

Examples:
  haybale search --name "*.go"
  haybale search --content "r:TODO\(.+\)" ./src
  haybale search --name "*.log" --min-size 1MB --modified-after 7d`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			f.maxDepthSet = cmd.Flags().Changed("max-depth")
			return runSearch(cmd, root, f)
		},
	}

	cmd.Flags().StringVar(&f.namePattern, "name", "", "wildcard or r:regex pattern to match file names")
	cmd.Flags().StringVar(&f.contentPattern, "content", "", "wildcard or r:regex pattern to match file contents")
	cmd.Flags().BoolVar(&f.caseSensitive, "case-sensitive", false, "match content case-sensitively")
	cmd.Flags().StringVar(&f.minSize, "min-size", "", "minimum file size, e.g. 10KB")
	cmd.Flags().StringVar(&f.maxSize, "max-size", "", "maximum file size, e.g. 5MB")
	cmd.Flags().StringVar(&f.modifiedAfter, "modified-after", "", "only files modified after this date (YYYY-MM-DD, or relative like 7d/2w/1m)")
	cmd.Flags().StringVar(&f.modifiedBefore, "modified-before", "", "only files modified before this date")
	cmd.Flags().BoolVar(&f.searchBinaries, "binaries", false, "also search inside binary files")
	cmd.Flags().BoolVar(&f.includeHidden, "hidden", false, "include hidden files and directories")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "maximum recursion depth (default: unbounded)")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: text or markdown (default from config)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colorized output regardless of configuration")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log verbosity: trace, debug, info, warn, error")
	cmd.Flags().BoolVar(&f.noHistory, "no-history", false, "don't record this search in the history store")
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to config file (default: .haybale/config.yaml)")

	return cmd
}

// runSearch drives one search invocation end to end: load config, build
// the query, stream results to the chosen output driver, log a summary
// and record history.
func runSearch(cmd *cobra.Command, root string, f searchFlags) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("load config: %w", err)}
	}

	var formatPtr, colorPtr *string
	if f.format != "" {
		formatPtr = &f.format
	}
	if f.noColor {
		never := "never"
		colorPtr = &never
	}
	var maxDepthPtr *int
	if f.maxDepthSet {
		maxDepthPtr = &f.maxDepth
	}
	cfg.MergeWithFlags(maxDepthPtr, formatPtr, nil, colorPtr)

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("invalid configuration: %w", err)}
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)

	input := search.QueryInput{
		Root:                 root,
		NamePattern:          f.namePattern,
		ContentPattern:       f.contentPattern,
		CaseSensitiveContent: f.caseSensitive,
		MinSize:              f.minSize,
		MaxSize:              f.maxSize,
		ModifiedAfter:        f.modifiedAfter,
		ModifiedBefore:       f.modifiedBefore,
		SearchBinaries:       f.searchBinaries,
		IncludeHidden:        f.includeHidden,
		MaxDepth:             cfg.DefaultMaxDepth,
	}

	query, err := search.BuildQuery(input, time.Now())
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	log.LogSearchStart(describeQuery(query))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	start := time.Now()
	events := search.Search(ctx, query)

	resultCount, warningCount, err := drainEvents(cfg, stdout, stderr, events)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	duration := time.Since(start)
	log.LogSearchSummary(resultCount, warningCount, duration)

	if !f.noHistory && cfg.History.Enabled {
		if err := recordHistory(cfg, query, resultCount, warningCount, duration); err != nil {
			log.LogWarn("failed to record search history: %v", err)
		}
	}

	if resultCount > 0 {
		return nil
	}
	if _, readErr := os.ReadDir(query.Root); readErr != nil {
		return &ExitError{Code: 2}
	}
	return &ExitError{Code: 1}
}

// drainEvents consumes the search event stream, rendering results with
// the configured format and warnings to stderr, and returns the final
// counts.
func drainEvents(cfg *config.Config, stdout, stderr io.Writer, events <-chan search.SearchEvent) (resultCount, warningCount int, err error) {
	switch cfg.DefaultFormat {
	case "markdown":
		var results []search.SearchResult
		for ev := range events {
			switch ev.Kind {
			case search.EventResult:
				results = append(results, ev.Result)
				resultCount++
			case search.EventWarning:
				warningCount++
				render.NewWarningFromEvent(ev.Path, ev.Reason).Display(stderr)
			}
		}
		mw := render.NewMarkdownWriter()
		doc, renderErr := mw.Render(results)
		if renderErr != nil {
			return resultCount, warningCount, renderErr
		}
		fmt.Fprint(stdout, doc)
	default:
		tw := render.NewTextWriter(stdout, colorEnabled(cfg.Color, stdout))
		for ev := range events {
			switch ev.Kind {
			case search.EventResult:
				resultCount++
				tw.WriteResult(ev.Result)
			case search.EventWarning:
				warningCount++
				render.NewWarningFromEvent(ev.Path, ev.Reason).Display(stderr)
			}
		}
	}
	return resultCount, warningCount, nil
}

// colorEnabled resolves the effective color mode: "always"/"never" force
// the decision, "auto" (or anything else) falls back to terminal
// detection the way the logger's ConsoleLogger does.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if color.NoColor {
			return false
		}
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

func describeQuery(q *search.SearchQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "root=%s", q.Root)
	if q.NamePattern != nil {
		fmt.Fprintf(&b, " name=%q", q.NamePattern.Source())
	}
	if q.ContentPattern != nil {
		fmt.Fprintf(&b, " content=%q", q.ContentPattern.Source())
	}
	return b.String()
}

func recordHistory(cfg *config.Config, query *search.SearchQuery, resultCount, warningCount int, duration time.Duration) error {
	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	var namePattern, contentPattern string
	if query.NamePattern != nil {
		namePattern = query.NamePattern.Source()
	}
	if query.ContentPattern != nil {
		contentPattern = query.ContentPattern.Source()
	}

	return store.Record(history.HistoryEntry{
		Root:           query.Root,
		NamePattern:    namePattern,
		ContentPattern: contentPattern,
		ResultCount:    resultCount,
		WarningCount:   warningCount,
		Duration:       duration,
	})
}

// loadConfig loads from an explicit path when given, otherwise from
// .haybale/config.yaml under the current directory.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	return config.LoadConfigFromDir(".")
}
