package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/showcase/internal/repositories"
	"github.com/desertthunder/showcase/internal/seed"
	"github.com/desertthunder/showcase/internal/services"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/showcase"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	prober     services.Prober
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Prober     services.Prober // Prober overrides the HTTP prober used by "sites check"
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		prober:     opts.Prober,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, sitesCommand, serveCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig returns the config named by the command's --config flag.
//
// The runner's config is used when the flag points at the file it was loaded from or at a missing file.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	path := cmd.String("config")
	if path == "" || path == r.configPath {
		return r.config, nil
	}

	config, err := shared.LoadConfigOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return config, nil
}

// openShowcase opens the configured database and returns a mounted [showcase.Showcase] backed by it.
//
// The returned close func releases the database.
func (r *Runner) openShowcase(ctx context.Context, config *shared.Config) (*showcase.Showcase, func() error, error) {
	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	sc, err := r.mountShowcase(ctx, db, config.Storage.Key)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return sc, db.Close, nil
}

// newShowcase builds an unmounted [showcase.Showcase] persisting to key in db and seeded from the bundled list.
func (r *Runner) newShowcase(db *sql.DB, key string) *showcase.Showcase {
	store := repositories.NewWebsiteStore(repositories.NewKeyValueRepository(db), key)
	return showcase.New(store, seed.Load, shared.WithLogger(r.logger, "component", "showcase"))
}

func (r *Runner) mountShowcase(ctx context.Context, db *sql.DB, key string) (*showcase.Showcase, error) {
	sc := r.newShowcase(db, key)
	if err := sc.Mount(ctx); err != nil {
		return nil, fmt.Errorf("failed to mount showcase: %w", err)
	}
	return sc, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
