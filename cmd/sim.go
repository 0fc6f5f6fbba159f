package cmd

import (
	"github.com/spf13/cobra"

	"goosechase/internal/game"
	"goosechase/internal/sim"
)

func newSimCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run one session headless with the autopilot and print a JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, mode, err := settingsFrom(a.cfg)
			if err != nil {
				return err
			}
			if duo, _ := cmd.Flags().GetBool("duo"); duo {
				mode = game.ModeDuo
			}
			r, err := sim.Run(cmd.Context(), sim.Options{
				Settings: settings,
				Mode:     mode,
				MaxTicks: a.cfg.Sim.MaxTicks,
				Log:      a.log.Named("sim"),
			})
			if err != nil {
				return err
			}
			return r.Write(cmd.OutOrStdout())
		},
	}
	fs := cmd.Flags()
	fs.Int("ticks", 0, "stop after this many ticks")
	fs.Bool("duo", false, "two autopilot players")
	fs.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	fs.Int("flock", 0, "number of geese")
	bindFlag(fs, "ticks", "sim.max_ticks")
	bindFlag(fs, "seed", "game.seed")
	bindFlag(fs, "flock", "game.flock_size")
	return cmd
}
