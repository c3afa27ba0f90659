package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"aesguard/internal/domain"
	"aesguard/internal/util/memzero"
)

// ErrSelfTest is returned when a known-answer vector does not reproduce.
var ErrSelfTest = errors.New("known-answer test failed")

// KnownAnswer is a published single-block test vector, hex encoded.
type KnownAnswer struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// KnownAnswers are the FIPS-197 example vectors plus the all-zero AES-128
// vector.
var KnownAnswers = []KnownAnswer{
	{
		Name:       "aes-128 zero",
		Key:        "00000000000000000000000000000000",
		Plaintext:  "00000000000000000000000000000000",
		Ciphertext: "66e94bd4ef8a2c3b884cfa59ca342b2e",
	},
	{
		Name:       "fips-197 appendix b",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "3243f6a8885a308d313198a2e0370734",
		Ciphertext: "3925841d02dc09fbdc118597196a0b32",
	},
	{
		Name:       "fips-197 c.1 aes-128",
		Key:        "000102030405060708090a0b0c0d0e0f",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		Name:       "fips-197 c.2 aes-192",
		Key:        "000102030405060708090a0b0c0d0e0f1011121314151617",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		Name:       "fips-197 c.3 aes-256",
		Key:        "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "8ea2b7ca516745bfeafc49904b496089",
	},
}

// Check runs the vector through derivation, encryption and decryption.
func (v KnownAnswer) Check() error {
	key, err := hex.DecodeString(v.Key)
	if err != nil {
		return fmt.Errorf("%s: key: %w", v.Name, err)
	}
	defer memzero.Zero(key)

	pt, err := domain.ParseBlock(v.Plaintext)
	if err != nil {
		return fmt.Errorf("%s: plaintext: %w", v.Name, err)
	}
	want, err := domain.ParseBlock(v.Ciphertext)
	if err != nil {
		return fmt.Errorf("%s: ciphertext: %w", v.Name, err)
	}

	return WithSchedule(key, func(s *KeySchedule) error {
		if got := EncryptBlock(s, pt); got != want {
			return fmt.Errorf("%w: %s: encrypt got %s, want %s", ErrSelfTest, v.Name, got.Hex(), want.Hex())
		}
		if got := DecryptBlock(s, want); got != pt {
			return fmt.Errorf("%w: %s: decrypt did not return the plaintext", ErrSelfTest, v.Name)
		}
		return nil
	})
}

// SelfTest checks every entry of KnownAnswers and returns the first failure.
func SelfTest() error {
	for _, v := range KnownAnswers {
		if err := v.Check(); err != nil {
			return err
		}
	}
	return nil
}
