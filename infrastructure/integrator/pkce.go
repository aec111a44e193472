package integrator

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/pkg/errors"
)

// verifierBytes gera 43 caracteres base64url, o mínimo aceito pelo RFC 7636
const verifierBytes = 32

// GenerateCodeVerifier devolve um verifier PKCE aleatório em base64url sem padding
func GenerateCodeVerifier() (string, error) {
	buf := make([]byte, verifierBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate code verifier")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// CodeChallenge deriva o challenge S256 do verifier
func CodeChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
