package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var s *settings

	cmd := &cobra.Command{
		Use:           "lumen",
		Short:         "Lumen is a terminal brightness panel driven by a host process",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.Load()
			if err != nil {
				return err
			}
			return runPanel(cmd.Context(), cfg)
		},
	}

	s = registerSettings(cmd.Flags())

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newProtocolCmd())

	return cmd
}
