package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"goosechase/internal/config"
	"goosechase/internal/observability"
)

// viperKey is the flag annotation naming the config key a flag overrides.
const viperKey = "viper_key"

// app carries the resolved configuration from the root pre-run to the
// subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger

	// console overrides where console logs go. Tests set it.
	console zapcore.WriteSyncer
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command { return newRootCmd(&app{}) }

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "goosechase",
		Short:         "Herd a flock of geese into the elevator.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./goosechase.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	bindFlag(root.PersistentFlags(), "log-level", "logger.level")
	root.SetVersionTemplate(`{{printf "goosechase %s\n" .Version}}`)

	root.AddCommand(newPlayCmd(a), newSimCmd(a), newVersionCmd())
	return root
}

// bindFlag marks name as overriding key once the config is loaded.
func bindFlag(fs *pflag.FlagSet, name, key string) {
	if err := fs.SetAnnotation(name, viperKey, []string{key}); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func (a *app) initialize(cmd *cobra.Command) error {
	a.v = config.NewViper(a.cfgFile)
	if err := config.Load(a.v); err != nil {
		return err
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys, ok := f.Annotations[viperKey]
		if !ok || !f.Changed || bindErr != nil {
			return
		}
		bindErr = a.v.BindPFlag(keys[0], f)
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	cfg, err := config.NewConfigFromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	switch {
	case a.console != nil:
		observability.Initialize(cfg.Logger, a.console)
	case cmd.Name() == "play" && cfg.Display.Frontend == config.FrontendTTY:
		// The terminal belongs to the game; only the log file gets entries.
		observability.Initialize(cfg.Logger, zapcore.AddSync(io.Discard))
	default:
		observability.InitializeLogger(cfg.Logger)
	}
	a.log = observability.GetLogger()
	a.log.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("version", Version))
	return nil
}

// Execute runs the command tree with ctx and reports the error, if any.
func Execute(ctx context.Context) error {
	defer observability.Sync()
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
		return err
	}
	return nil
}
