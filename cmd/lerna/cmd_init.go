package main

import (
	"github.com/farfromrefug/lerna-lite/internal/config"
	"github.com/farfromrefug/lerna-lite/internal/git"
	"github.com/farfromrefug/lerna-lite/internal/logging"
	"github.com/farfromrefug/lerna-lite/internal/manifest"
	"github.com/farfromrefug/lerna-lite/internal/toolconfig"
	"github.com/farfromrefug/lerna-lite/internal/ui"
	"github.com/farfromrefug/lerna-lite/internal/workspace"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new Lerna repo or upgrade an existing repo to the current version of Lerna",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().BoolP("independent", "i", false, "Version packages independently")
	cmd.Flags().Bool("exact", false, "Specify lerna dependency version in package.json without a caret (^)")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Out:    cmd.ErrOrStderr(),
	})
	if cfg.SettingsFile != "" {
		logger.Debug().Str("file", cfg.SettingsFile).Msg("Using settings file")
	}

	ws, err := workspace.Load(cfg.Root)
	if err != nil {
		return err
	}

	spec := manifest.DependencySpec{
		Name:    toolconfig.PackageName,
		Version: toolVersion(),
		Exact:   cfg.Exact,
	}
	opts := toolconfig.Options{
		Independent: cfg.Independent,
		Exact:       cfg.Exact,
	}

	summary := ui.NewSummary(cmd.OutOrStdout())
	logFileStep(logger, summary, ws.ManifestExisted, manifest.Filename)
	logFileStep(logger, summary, ws.ConfigExisted, toolconfig.Filename)

	ws.Reconcile(spec, opts)
	logger.Debug().
		Str("dependency", spec.Name).
		Str("specifier", spec.Specifier()).
		Bool("independent", opts.Independent).
		Bool("exact", opts.Exact).
		Msg("Reconciled workspace documents")

	if err := ws.Save(); err != nil {
		return err
	}

	created, err := ws.EnsurePackagesDir()
	if err != nil {
		return err
	}
	if created {
		logger.Info().Msg("Creating packages directory")
		summary.Add(ui.ActionCreated, workspace.PackagesDir+"/")
	}

	initGitRepo(logger, summary, ws.Root)

	logger.Info().Str("root", ws.Root).Msg("Successfully initialized Lerna files")
	return summary.Render("lerna-lite init")
}

func logFileStep(logger zerolog.Logger, summary *ui.Summary, existed bool, name string) {
	if existed {
		logger.Info().Msg("Updating " + name)
		summary.Add(ui.ActionUpdated, name)
		return
	}
	logger.Info().Msg("Creating " + name)
	summary.Add(ui.ActionCreated, name)
}

// initGitRepo initializes a git repository unless dir is already inside one.
// Errors are reported as warnings and do not fail init.
func initGitRepo(logger zerolog.Logger, summary *ui.Summary, dir string) {
	if git.IsInsideWorkTree(dir) {
		logger.Debug().Str("dir", dir).Msg("Git repository already initialized")
		summary.Add(ui.ActionSkipped, ".git/")
		return
	}
	if !git.IsGitInstalled() {
		logger.Warn().Msg("git is not installed; skipping git initialization")
		return
	}

	logger.Info().Msg("Initializing Git repository")
	if err := git.Init(dir); err != nil {
		logger.Warn().Err(err).Msg("git init failed")
		return
	}
	summary.Add(ui.ActionCreated, ".git/")
}
