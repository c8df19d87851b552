package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/allisson/cardengine/internal/card/domain"
	apperrors "github.com/allisson/cardengine/internal/errors"
)

// DigitPool is a finite buffer of random decimal digits. Digits are taken from the end;
// once empty the pool stays exhausted.
type DigitPool struct {
	digits []byte
}

// NewDigitPool reads size random bytes from r, hex-encodes them and keeps only the
// decimal characters. A failed read is reported as ErrEntropyExhausted.
func NewDigitPool(r io.Reader, size int) (*DigitPool, error) {
	if size < 1 {
		return nil, fmt.Errorf("entropy pool size must be at least 1, got %d", size)
	}

	raw := make([]byte, size)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, apperrors.Wrapf(domain.ErrEntropyExhausted, "failed to read %d random bytes (%v)", size, err)
	}

	encoded := hex.EncodeToString(raw)
	digits := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		if encoded[i] >= '0' && encoded[i] <= '9' {
			digits = append(digits, encoded[i])
		}
	}

	return &DigitPool{digits: digits}, nil
}

// NextDigit pops the last digit from the pool.
func (p *DigitPool) NextDigit() (byte, error) {
	if len(p.digits) == 0 {
		return 0, domain.ErrEntropyExhausted
	}
	digit := p.digits[len(p.digits)-1]
	p.digits = p.digits[:len(p.digits)-1]
	return digit, nil
}

// Remaining returns how many digits are left.
func (p *DigitPool) Remaining() int {
	return len(p.digits)
}

// NewDigitPoolFactory returns a factory that fills a fresh pool of size bytes from r on
// every call. A nil reader uses crypto/rand.
func NewDigitPoolFactory(r io.Reader, size int) EntropyFactory {
	if r == nil {
		r = rand.Reader
	}
	return func() (EntropySource, error) {
		return NewDigitPool(r, size)
	}
}
