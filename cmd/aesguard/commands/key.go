package commands

import (
	"encoding/hex"
	"errors"

	"github.com/spf13/cobra"

	"aesguard/internal/domain"
	"aesguard/internal/secret"
	"aesguard/internal/util/memzero"
)

// keyFlags binds the two ways of passing a key to one command.
type keyFlags struct {
	hex  string
	text string
}

func (k *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&k.hex, "key", "", "AES key as hex (16, 24 or 32 bytes)")
	cmd.Flags().StringVar(&k.text, "key-text", "", "AES key as literal text, e.g. \"YELLOW SUBMARINE\"")
	cmd.MarkFlagsMutuallyExclusive("key", "key-text")
	cmd.MarkFlagsOneRequired("key", "key-text")
}

// load decodes the key into a secret buffer. The caller closes it.
func (k *keyFlags) load() (*secret.Buffer, error) {
	var raw []byte
	if k.hex != "" {
		b, err := hex.DecodeString(k.hex)
		if err != nil {
			return nil, errors.New("--key: not valid hex")
		}
		raw = b
	} else {
		raw = []byte(k.text)
	}

	if !domain.CipherKey(raw).Valid() {
		n := len(raw)
		memzero.Zero(raw)
		return nil, &domain.KeyLengthError{Got: n}
	}
	return secret.NewFromBytes(raw)
}
