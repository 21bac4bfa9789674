package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/showcase/internal/formatter"
	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/services"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/tasks"
	"github.com/urfave/cli/v3"
)

// SitesList prints the ranked listing, optionally narrowed to one section.
func (r *Runner) SitesList(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	section := strings.ToLower(cmd.String("section"))
	switch section {
	case "top", "others", "all":
	default:
		return fmt.Errorf("%w: --section must be top, others or all, got %q", shared.ErrInvalidFlag, section)
	}

	sc, closeDB, err := r.openShowcase(ctx, config)
	if err != nil {
		return err
	}
	defer closeDB()

	websites := sc.Websites()
	listing := formatter.NewListing(websites)

	if cmd.Bool("json") {
		switch section {
		case "top":
			return r.writeJSON(listing.Top, cmd.Bool("pretty"))
		case "others":
			return r.writeJSON(listing.Others, cmd.Bool("pretty"))
		default:
			return r.writeJSON(listing, cmd.Bool("pretty"))
		}
	}

	sections := formatter.Sections(websites)
	switch section {
	case "top":
		sections = sections[:1]
	case "others":
		sections = sections[1:]
	}

	if len(sections) == 0 {
		return r.writePlain("No other participants.\n")
	}

	out, err := formatter.ExportToText(sections)
	if err != nil {
		return err
	}
	_, err = r.output.Write(out)
	return err
}

// SitesAdd appends a website built from flags and persists the full list.
func (r *Runner) SitesAdd(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	sc, closeDB, err := r.openShowcase(ctx, config)
	if err != nil {
		return err
	}
	defer closeDB()

	website, err := sc.Add(ctx, models.Draft{
		Name:        cmd.String("name"),
		URL:         cmd.String("url"),
		Description: cmd.String("description"),
		Author:      cmd.String("author"),
		PreviewURL:  cmd.String("preview"),
	})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(website, true)
	}
	return r.writePlain("✓ Added #%d %s <%s>\n", website.ID, website.Name, website.URL)
}

// SitesExport renders the listing in the requested format to a file or stdout.
func (r *Runner) SitesExport(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	sc, closeDB, err := r.openShowcase(ctx, config)
	if err != nil {
		return err
	}
	defer closeDB()

	output := cmd.String("output")
	if output == "-" {
		data, err := formatter.Render(format, config.Site.Title, sc.Websites())
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	}

	path, err := formatter.WriteExport(format, config.Site.Title, sc.Websites(), output)
	if err != nil {
		return err
	}

	r.logger.Info("listing exported", "format", format, "path", path)
	return r.writePlain("✓ Exported %d websites to %s\n", len(sc.Websites()), path)
}

// SitesCheck probes every participant URL and prints a reachability report.
func (r *Runner) SitesCheck(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	sc, closeDB, err := r.openShowcase(ctx, config)
	if err != nil {
		return err
	}
	defer closeDB()

	prober := r.prober
	if prober == nil {
		prober = services.NewHTTPProber(nil, cmd.Duration("timeout"))
	}
	checker := tasks.NewLinkChecker(prober, shared.WithLogger(r.logger, "component", "tasks"))
	opts := tasks.CheckOpts{
		NumWorkers:      cmd.Int("workers"),
		RateLimit:       cmd.Float("rate"),
		IncludePreviews: cmd.Bool("previews"),
	}

	if cmd.Bool("json") {
		result, err := checker.Check(ctx, sc.Websites(), opts, nil)
		if err != nil {
			return err
		}
		return r.writeJSON(result, true)
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.QueueLinks:
				r.writePlain("🔍 %s\n", update.Message)
			case tasks.CheckLinks:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := checker.Check(ctx, sc.Websites(), opts, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Link Check Complete")
	r.writePlain("Reachable: %d/%d\n", result.Reachable, result.Total)

	if result.Unreachable > 0 {
		r.writePlain("\nUnreachable links:\n")
		for _, res := range result.Results {
			if res.OK {
				continue
			}
			reason := res.Error
			if reason == "" {
				reason = fmt.Sprintf("HTTP %d", res.StatusCode)
			}
			r.writePlain("  ✗ #%d %s [%s] %s: %s\n", res.Website.ID, res.Website.Name, res.Kind, res.URL, reason)
		}
	}

	return nil
}
