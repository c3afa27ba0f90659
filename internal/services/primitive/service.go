package primitive

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"aesguard/internal/crypto"
	"aesguard/internal/domain"
)

// Service implements domain.PrimitiveService.
type Service struct {
	log *slog.Logger
}

var _ domain.PrimitiveService = (*Service)(nil)

// New returns a service logging to log; a nil logger discards.
func New(log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{log: log}
}

// EncryptBlock encrypts one block under key.
func (s *Service) EncryptBlock(key domain.CipherKey, in domain.Block) (domain.Block, error) {
	return s.transform("encrypt", key, in, crypto.EncryptBlock)
}

// DecryptBlock decrypts one block under key.
func (s *Service) DecryptBlock(key domain.CipherKey, in domain.Block) (domain.Block, error) {
	return s.transform("decrypt", key, in, crypto.DecryptBlock)
}

// CheckValue returns the hex key check value for key.
func (s *Service) CheckValue(key domain.CipherKey) (string, error) {
	var kcv string
	err := crypto.WithSchedule(key, func(ks *crypto.KeySchedule) error {
		v := crypto.CheckValue(ks)
		kcv = hex.EncodeToString(v[:])
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("check value: %w", err)
	}
	s.log.Debug("computed key check value", "bits", key.Size().Bits(), "kcv", kcv)
	return kcv, nil
}

// SelfTest runs the known-answer vectors.
func (s *Service) SelfTest() error {
	for _, v := range crypto.KnownAnswers {
		if err := v.Check(); err != nil {
			s.log.Error("self-test failed", "vector", v.Name, "err", err)
			return err
		}
		s.log.Debug("self-test passed", "vector", v.Name)
	}
	return nil
}

func (s *Service) transform(
	op string,
	key domain.CipherKey,
	in domain.Block,
	fn func(*crypto.KeySchedule, domain.Block) domain.Block,
) (domain.Block, error) {
	var out domain.Block
	err := crypto.WithSchedule(key, func(ks *crypto.KeySchedule) error {
		out = fn(ks, in)
		if s.log.Enabled(context.Background(), slog.LevelDebug) {
			v := crypto.CheckValue(ks)
			s.log.Debug(op+" block", "bits", ks.Size().Bits(), "kcv", hex.EncodeToString(v[:]))
		}
		return nil
	})
	in.Erase()
	if err != nil {
		return domain.Block{}, fmt.Errorf("%s block: %w", op, err)
	}
	return out, nil
}
