package main

import (
	"go-bikeshare/internal/render"

	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities and their data sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		infos, err := svc.Cities(cmd.Context())
		if err != nil {
			return err
		}
		return render.Cities(cmd.OutOrStdout(), infos)
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
