package crypto

import "aesguard/internal/domain"

// WithSchedule derives a schedule from key, passes it to fn and erases it
// on every exit path, panics included. fn must not keep the schedule.
// The key itself stays owned by the caller.
func WithSchedule(key domain.CipherKey, fn func(*KeySchedule) error) error {
	s, err := DeriveSchedule(key)
	if err != nil {
		return err
	}
	defer s.Erase()
	return fn(s)
}
