package main

import (
	"errors"
	"fmt"

	"github.com/lo5an/ActiveCampaignDemo/internal/config"
	"github.com/spf13/cobra"
)

// errInitPath is returned for a bare "acprovision init". A credentials file
// named init has to be passed with a directory, such as ./init.
var errInitPath = errors.New(`init needs a path to write; to provision from a credentials file named "init", pass it as ./init`)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <path>",
		Short: "Write a sample credentials file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errInitPath
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteSample(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s; fill in ac_url and ac_key.\n", args[0])
			return nil
		},
	}
}
