package password

import (
	"errors"
	"fmt"
	"strings"

	"todolist-be/internal/apperrors"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"

	argon2idPrefix = "$argon2id$"

	// bcrypt ignores input past this length; both algorithms enforce it
	maxPasswordBytes = 72
)

// Hasher produces self-describing password hashes.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type hasher struct {
	algorithm   string
	bcryptCost  int
	argonParams *argon2id.Params
}

// NewHasher creates a hasher that writes new hashes with algorithm. Verify
// accepts hashes from either supported algorithm.
func NewHasher(algorithm string, bcryptCost int) (Hasher, error) {
	switch algorithm {
	case AlgorithmBcrypt, AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("unsupported password hasher %q", algorithm)
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &hasher{
		algorithm:   algorithm,
		bcryptCost:  bcryptCost,
		argonParams: argon2id.DefaultParams,
	}, nil
}

// Hash returns apperrors.ErrPasswordTooLong for input over 72 bytes, whatever
// the algorithm.
func (h *hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", apperrors.ErrPasswordTooLong
	}

	if h.algorithm == AlgorithmArgon2id {
		hash, err := argon2id.CreateHash(plaintext, h.argonParams)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return hash, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify never fails on a malformed hash; it reports false instead.
func (h *hasher) Verify(plaintext, hash string) bool {
	if strings.HasPrefix(hash, argon2idPrefix) {
		match, err := argon2id.ComparePasswordAndHash(plaintext, hash)
		return err == nil && match
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
