package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/shutter-quote/internal/cli"
)

func colorsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the available finishes",
		Long: `List every finish color with its swatch and price surcharge.

Use the ID with shutter quote --color or in the color column of a batch file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(v)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s Finishes (%d)", cli.ShutterIcon, cat.Len())))
			fmt.Fprintln(out, cli.RenderColorTable(cat.ListAll()))
			return nil
		},
	}
}
