// Package main provides the CLI entrypoint for dazi.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hctsai/dazi/internal/boardui"
	"github.com/hctsai/dazi/internal/codegen"
	"github.com/hctsai/dazi/internal/config"
	"github.com/hctsai/dazi/internal/encoding"
	"github.com/hctsai/dazi/internal/leaderboard"
	"github.com/hctsai/dazi/internal/model"
	"github.com/hctsai/dazi/internal/passage"
	"github.com/hctsai/dazi/internal/session"
	"github.com/hctsai/dazi/internal/store"
	"github.com/hctsai/dazi/internal/tui"
)

const (
	defaultLang        = "zh"
	defaultContent     = "sentence"
	defaultCodeType    = codegen.TypeZhuyin
	defaultDrillLength = 30
)

var (
	practiceLang      string
	practiceContent   string
	practiceCodeType  string
	practiceDrillLen  int
	practiceAutoHints bool

	boardLang  string
	boardPlain bool

	newsForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dazi",
		Short:         "TUI typing practice for Chinese and English",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "practice language (zh, en)")
	rootCmd.Flags().StringVar(&practiceContent, "content", defaultContent, "content mode (sentence, article, code)")
	rootCmd.Flags().StringVar(&practiceCodeType, "code-type", defaultCodeType, "drill alphabet (zhuyin, cangjie, english)")
	rootCmd.Flags().IntVar(&practiceDrillLen, "drill-length", defaultDrillLength, "symbols per code drill")
	rootCmd.Flags().BoolVar(&practiceAutoHints, "auto-hints", true, "show input-method hints while typing Chinese")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newNewsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyStringConfig(cmd, "content", &practiceContent, fileCfg.Practice.Content)
	applyStringConfig(cmd, "code-type", &practiceCodeType, fileCfg.Practice.CodeType)
	applyIntConfig(cmd, "drill-length", &practiceDrillLen, fileCfg.Practice.DrillLength)
	applyBoolConfig(cmd, "auto-hints", &practiceAutoHints, fileCfg.Practice.AutoHints)

	cfg := model.Config{
		Lang:        model.Lang(practiceLang),
		Content:     model.Content(practiceContent),
		CodeType:    practiceCodeType,
		DrillLength: practiceDrillLen,
		AutoHints:   practiceAutoHints,
	}
	if err := validateConfig(&cfg); err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	lib := passage.NewLibrary()
	today := time.Now().Format("2006-01-02")
	if _, err := passage.LoadDailyFile(config.DefaultDailyNewsPath(), today, lib); err != nil {
		logErrf("failed to load daily news file: %v\n", err)
	}

	board := leaderboard.New(st)
	ctrl := session.New(board, model.Mode{Lang: cfg.Lang, Content: cfg.Content})
	hints := newHintChain(st)
	m := tui.NewModel(cfg, ctrl, lib, passage.NewPicker(), codegen.New(), hints, board, st, passage.NewFetcher(nil))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// newHintChain orders hint providers cheapest first: the built-in table,
// then the SQLite cache, then the moedict lookup writing through to it.
func newHintChain(st *store.Store) *encoding.Chain {
	return encoding.NewChain(
		encoding.Table{},
		encoding.CacheProvider{Cache: st},
		encoding.Remote{Cache: st},
	)
}

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runBoardCmd,
	}
	cmd.Flags().StringVar(&boardLang, "lang", defaultLang, "board language (zh, en)")
	cmd.Flags().BoolVar(&boardPlain, "plain", false, "print the board instead of the TUI")
	return cmd
}

func runBoardCmd(cmd *cobra.Command, _ []string) error {
	lang := model.Lang(boardLang)
	if lang != model.LangZH && lang != model.LangEN {
		return fmt.Errorf("--lang must be zh or en")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	board := leaderboard.New(st)
	if boardPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printBoard(cmd, board, lang)
	}

	m := boardui.NewModel(context.Background(), board)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run board TUI: %w", err)
	}
	return nil
}

func printBoard(cmd *cobra.Command, board *leaderboard.Board, lang model.Lang) error {
	entries := board.Top(context.Background(), lang)
	if len(entries) == 0 {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), "No records yet."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	for i, entry := range entries {
		line := fmt.Sprintf("%d. %d pts  %d WPM  %d%%  %s",
			i+1, entry.Score, entry.WPM, entry.Accuracy,
			entry.Timestamp.Local().Format("2006-01-02 15:04"))
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), runewidth.Truncate(line, width, "…")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newNewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Fetch and cache today's headlines",
		Args:  cobra.NoArgs,
		RunE:  runNewsCmd,
	}
	cmd.Flags().BoolVar(&newsForce, "force", false, "refetch even when today's headlines are cached")
	return cmd
}

func runNewsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fetcher := passage.NewFetcher(nil)
	today := time.Now().Format("2006-01-02")
	for _, lang := range []model.Lang{model.LangZH, model.LangEN} {
		if !newsForce {
			cached, err := st.LoadNews(ctx, lang, today, passage.DataVersion)
			if err != nil {
				logErrf("failed to read news cache: %v\n", err)
			} else if len(cached) > 0 {
				logErrf("%s: %d headlines cached\n", lang, len(cached))
				continue
			}
		}
		titles, err := fetcher.FetchTitles(ctx, lang)
		if err != nil {
			return fmt.Errorf("failed to fetch %s headlines: %w", lang, err)
		}
		if err := st.SaveNews(ctx, lang, today, passage.DataVersion, titles); err != nil {
			return fmt.Errorf("failed to cache %s headlines: %w", lang, err)
		}
		logErrf("%s: fetched %d headlines\n", lang, len(titles))
		for _, title := range titles {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), title); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# dazi configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q           # Practice language (zh, en)
# content = %q  # Content mode (sentence, article, code)
# code-type = %q  # Drill alphabet (zhuyin, cangjie, english)
# drill-length = %d    # Symbols per code drill
# auto-hints = true    # Show input-method hints while typing Chinese
`,
		defaultLang,
		defaultContent,
		defaultCodeType,
		defaultDrillLength,
	)
}

// validateConfig checks the merged settings and coerces the drill
// alphabet to match the language.
func validateConfig(cfg *model.Config) error {
	if cfg.Lang != model.LangZH && cfg.Lang != model.LangEN {
		return fmt.Errorf("--lang must be zh or en")
	}
	switch cfg.Content {
	case model.ContentSentence, model.ContentArticle, model.ContentCode:
	default:
		return fmt.Errorf("--content must be sentence, article, or code")
	}
	if _, ok := codegen.Lookup(cfg.CodeType); !ok {
		return fmt.Errorf("--code-type must be one of: %s", strings.Join(codegen.Names(), ", "))
	}
	if cfg.DrillLength <= 0 {
		return fmt.Errorf("--drill-length must be > 0")
	}
	if cfg.Lang == model.LangEN {
		cfg.CodeType = codegen.TypeEnglish
	} else if cfg.CodeType == codegen.TypeEnglish {
		cfg.CodeType = codegen.TypeCangjie
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
