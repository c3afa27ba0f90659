package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aesguard/internal/domain"
)

// encrypt <block-hex>: forward transform of one block.
func encryptCmd() *cobra.Command {
	return blockCmd("encrypt", "Encrypt one 16-byte block", func(key domain.CipherKey, in domain.Block) (domain.Block, error) {
		return appCtx.Primitive.EncryptBlock(key, in)
	})
}

// decrypt <block-hex>: inverse transform of one block.
func decryptCmd() *cobra.Command {
	return blockCmd("decrypt", "Decrypt one 16-byte block", func(key domain.CipherKey, in domain.Block) (domain.Block, error) {
		return appCtx.Primitive.DecryptBlock(key, in)
	})
}

func blockCmd(use, short string, fn func(domain.CipherKey, domain.Block) (domain.Block, error)) *cobra.Command {
	var kf keyFlags
	cmd := &cobra.Command{
		Use:   use + " <block-hex>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := domain.ParseBlock(args[0])
			if err != nil {
				return err
			}
			key, err := kf.load()
			if err != nil {
				return err
			}
			defer key.Close()

			out, err := fn(key.Key(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Hex())
			out.Erase()
			return nil
		},
	}
	kf.register(cmd)
	return cmd
}
