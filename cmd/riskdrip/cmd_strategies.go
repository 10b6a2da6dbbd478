package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/xtding233/riskdrip/internal/strategy"
)

func newStrategiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "Print the strategy book in use",
		Long: `Print the strategy book as YAML. Without --file this is the built-in
preset book, a good starting point for a custom one:

  riskdrip strategies > strategies.yaml

With --resolved each strategy is shown fully merged with the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, _, err := a.loadBook(cmd, strategy.NewLoader())
			if err != nil {
				return err
			}

			resolved, _ := cmd.Flags().GetBool("resolved")
			if resolved {
				rs, err := book.Resolve(a.overrides(cmd))
				if err != nil {
					return err
				}
				flat := strategy.Book{Strategies: make([]strategy.Entry, 0, len(rs))}
				for _, r := range rs {
					flat.Strategies = append(flat.Strategies, strategy.Entry{Label: r.Label, RawConfig: strategy.FromConfig(r.Config)})
				}
				book = flat
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(book)
			}
			data, err := strategy.MarshalBook(book)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	addOverrideFlags(cmd)
	cmd.Flags().Bool("resolved", false, "Show every strategy fully merged")

	return cmd
}
