package crypto

import "aesguard/internal/domain"

// CheckValueSize is the length of a key check value.
const CheckValueSize = 3

// CheckValue returns the key check value of s: the first three bytes of the
// encryption of the all-zero block. It identifies a key without exposing it.
func CheckValue(s *KeySchedule) [CheckValueSize]byte {
	var kcv [CheckValueSize]byte
	out := EncryptBlock(s, domain.Block{})
	copy(kcv[:], out[:])
	out.Erase()
	return kcv
}
