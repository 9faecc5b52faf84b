// Package cmd implements the actionkit command line tool, which inspects
// YAML action manifests and builds sample actions from them.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/actionkit"
	"github.com/dmitrymomot/actionkit/internal/config"
	"github.com/dmitrymomot/actionkit/pkg/logger"
	"github.com/dmitrymomot/actionkit/pkg/manifest"
)

const serviceName = "actionkit"

type runIDKey struct{}

var errNoManifest = errors.New("no manifest: pass --manifest or set ACTIONKIT_MANIFEST")

// app carries state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	envFiles     []string
	manifestPath string
	namespace    string
	logLevel     string

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call returns independent state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "actionkit",
		Short:         "Inspect actionkit manifests",
		Long:          `actionkit builds action creators from a YAML manifest and prints their tree, their types, or a sample action.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "env files to load before reading ACTIONKIT_* variables")
	root.PersistentFlags().StringVarP(&a.manifestPath, "manifest", "m", "", "manifest path (default $ACTIONKIT_MANIFEST)")
	root.PersistentFlags().StringVar(&a.namespace, "namespace", "", "namespace separator (default $ACTIONKIT_NAMESPACE)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default $ACTIONKIT_LOG_LEVEL)")

	root.AddCommand(newTreeCmd(a), newTypesCmd(a), newCreateCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.namespace != "" {
		cfg.Namespace = a.namespace
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.manifestPath == "" {
		a.manifestPath = cfg.Manifest
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := append(cfg.LoggerOptions(serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	a.cfg = cfg
	a.log = logger.New(opts...).With(logger.Command(cmd.Name()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, runIDKey{}, uuid.NewString()))
	return nil
}

// build loads the manifest and builds its creators. The CLI namespace
// applies only when the manifest does not set one.
func (a *app) build(ctx context.Context) (*actionkit.Creators, error) {
	if a.manifestPath == "" {
		return nil, errNoManifest
	}

	m, err := manifest.LoadFile(a.manifestPath, manifest.NewRegistry())
	if err != nil {
		a.log.ErrorContext(ctx, "failed to load manifest",
			logger.Manifest(a.manifestPath),
			logger.Errors(causes(err)...),
		)
		return nil, err
	}
	if m.Namespace == "" {
		m.Namespace = a.cfg.Namespace
	}

	creators, err := m.Build(actionkit.WithLogger(a.log))
	if err != nil {
		a.log.ErrorContext(ctx, "failed to build action creators", logger.Manifest(a.manifestPath), logger.Error(err))
		return nil, err
	}
	return creators, nil
}

// causes unwraps the errors joined into err, or returns err alone.
func causes(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
