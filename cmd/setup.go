package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/showcase/internal/repositories"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase creates the config file when missing, then initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	sc, err := r.mountShowcase(ctx, db, config.Storage.Key)
	if err != nil {
		return err
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	r.writePlain("✓ Database ready at %s (%d websites)\n", config.Database.Path, len(sc.Websites()))
	return nil
}

// MigrationStatus prints each embedded migration and whether it has been applied.
func (r *Runner) MigrationStatus(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	statuses, err := shared.MigrationStatuses(db)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(statuses, true)
	}

	r.writePlainHeader("Migrations: " + config.Database.Path)
	for _, s := range statuses {
		mark := "pending"
		if s.Applied {
			mark = "applied"
		}
		r.writePlain("%04d  %-40s %s\n", s.Version, s.Name, mark)
	}
	return nil
}

// RollbackDatabase reverts the most recently applied migration.
func (r *Runner) RollbackDatabase(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RollbackMigration(db); err != nil {
		return err
	}

	r.logger.Info("rolled back latest migration", "path", config.Database.Path)
	return r.writePlain("✓ Rolled back latest migration\n")
}

// StorageStatus lists every key in local storage with its size and timestamps.
func (r *Runner) StorageStatus(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	kv := repositories.NewKeyValueRepository(db)
	keys, err := kv.Keys()
	if err != nil {
		return err
	}

	values := make([]*repositories.StoredValue, 0, len(keys))
	for _, key := range keys {
		sv, err := kv.Describe(key)
		if err != nil {
			return err
		}
		values = append(values, sv)
	}

	if cmd.Bool("json") {
		return r.writeJSON(values, true)
	}

	r.writePlainHeader("Storage: " + config.Database.Path)
	if len(values) == 0 {
		return r.writePlain("(empty, next run seeds %q)\n", config.Storage.Key)
	}
	for _, sv := range values {
		r.writePlain("%-20s %8d bytes  updated %s\n", sv.Key, len(sv.Value), sv.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// ResetStorage deletes the stored website list; the next mount falls back to seed data.
func (r *Runner) ResetStorage(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("yes") {
		return fmt.Errorf("%w: pass --yes to delete the stored website list", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store := repositories.NewWebsiteStore(repositories.NewKeyValueRepository(db), config.Storage.Key)
	if err := store.Clear(); err != nil {
		return err
	}

	r.logger.Info("stored websites cleared", "key", store.Key())
	return r.writePlain("✓ Cleared %q; the next run reseeds it\n", store.Key())
}
