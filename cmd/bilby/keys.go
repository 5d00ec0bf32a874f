package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eric-lyu-2019/bilby/signal"
)

func newKeysCmd() *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the parameter keys of a source model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if model == "" {
				for _, name := range signal.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			sm, err := signal.Lookup(model)
			if err != nil {
				return err
			}
			for _, key := range sm.ParameterKeys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "source model name (lists models when empty)")
	return cmd
}
