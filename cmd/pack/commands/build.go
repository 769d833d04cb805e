package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Emit the script bundles of every configured output target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Build(cmd.Context(), buildOptions(cmd))
			return err
		},
	}
	cmd.Flags().IntP("parallelism", "p", 0, "Maximum concurrent bundles per strategy (0 uses the configured value)")
	return cmd
}
