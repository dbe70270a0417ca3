package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"searchlist/internal/config"
	"searchlist/internal/dataset"
	"searchlist/internal/domain"
	"searchlist/internal/eventbus"
	"searchlist/internal/ui"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal
var ErrNotTerminal = errors.New("searchlist needs an interactive terminal")

type rootOptions struct {
	configPath    string
	dataFile      string
	logFile       string
	debug         bool
	noMouse       bool
	inline        bool
	printSelected bool
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "searchlist",
		Short: "Searchable, selectable list for the terminal",
		Long: "searchlist shows a dataset as a scrolling list. Type to filter by name,\n" +
			"press space or click a row to toggle its selection.",
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/searchlist/config.toml)")
	cmd.Flags().StringVarP(&opts.dataFile, "data", "d", "", "dataset file (.toml, .yaml or .json); overrides data_file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file; overrides [log] file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "render inline instead of the alternate screen")
	cmd.Flags().BoolVarP(&opts.printSelected, "print", "p", false, "print the selected items on exit")

	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

const rootCmdExample = `  # Browse the built-in sample dataset
  searchlist

  # Browse your own items and print the selection on exit
  searchlist --data fruits.toml --print

  # Write a default config file
  searchlist config init`

func configService(opts *rootOptions) config.ConfigService {
	if opts.configPath != "" {
		return config.NewConfigServiceAt(opts.configPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := configService(opts).Load()
	if err != nil {
		return nil, err
	}

	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if cmd.Flags().Changed("no-mouse") {
		cfg.UI.Mouse = !opts.noMouse
	}
	if cmd.Flags().Changed("inline") {
		cfg.UI.AltScreen = !opts.inline
	}
	return cfg, nil
}

func loadDataset(path string) (domain.Dataset, error) {
	if path == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(path)
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.Log, opts.debug, cmd.ErrOrStderr())
	defer closeLog()

	items, err := loadDataset(cfg.DataFile)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.DataFile).Msg("failed to load dataset")
		return err
	}

	if !isTerminal(os.Stdin) {
		return ErrNotTerminal
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()
	defer logEvents(bus)()

	model := ui.NewModel(bus, cfg, items)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	log.Info().Str("data", cfg.DataFile).Int("items", len(items)).Msg("starting UI")
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error().Err(err).Msg("error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info().Int("selected", len(model.Selected())).Msg("UI exited")

	if opts.printSelected {
		printSelected(cmd.OutOrStdout(), model.Selected())
	}
	return nil
}

func printSelected(w io.Writer, items []domain.ListItem) {
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\n", item.ID, item.Name)
	}
}

// Execute runs the root command and exits non-zero on failure
func Execute(ver string) {
	if err := NewRootCmd(ver).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
