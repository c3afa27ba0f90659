package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func kcvCmd() *cobra.Command {
	var kf keyFlags
	cmd := &cobra.Command{
		Use:   "kcv",
		Short: "Print the key check value (first 3 bytes of E(K, 0))",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := kf.load()
			if err != nil {
				return err
			}
			defer key.Close()

			kcv, err := appCtx.Primitive.CheckValue(key.Key())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "KCV: %s\n", kcv)
			return nil
		},
	}
	kf.register(cmd)
	return cmd
}
