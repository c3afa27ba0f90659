package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aesguard/internal/crypto"
)

func selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the known-answer tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Primitive.SelfTest(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "self-test passed (%d vectors)\n", len(crypto.KnownAnswers))
			return nil
		},
	}
}
