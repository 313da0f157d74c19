// Package hasher provides the one-way credential digest used for stored passwords.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext credential into a stored digest and checks it back.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(digest, plain string) bool
}

// New constructs a hasher by algorithm name.
func New(algo string, bcryptCost int) (Hasher, error) {
	switch algo {
	case "sha256":
		return SHA256{}, nil
	case "bcrypt":
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			bcryptCost = bcrypt.DefaultCost
		}
		return Bcrypt{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown hash algo: %s", algo)
	}
}

// SHA256 stores hex-encoded sha256 digests. Existing rows were written with
// this scheme, so it stays the default.
type SHA256 struct{}

// Hash returns the hex sha256 digest of plain.
func (SHA256) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares it to the stored one.
func (s SHA256) Verify(digest, plain string) bool {
	computed, _ := s.Hash(plain)
	return computed == digest
}

// Bcrypt stores salted bcrypt digests.
type Bcrypt struct {
	Cost int
}

// Hash returns a bcrypt digest of plain.
func (b Bcrypt) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(out), nil
}

// Verify checks plain against the stored bcrypt digest.
func (Bcrypt) Verify(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
