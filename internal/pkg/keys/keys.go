// Package keys generates RSA key pairs encoded for transport.
package keys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// DefaultKeySize is the RSA key size in bits
const DefaultKeySize = 2048

// Generate creates an RSA key and returns the base64 PKCS#8 private key and
// the OpenSSH authorized-key line of its public half.
func Generate(bits int) (privateKey, publicKey string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return "", "", fmt.Errorf("generate key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", "", fmt.Errorf("marshal private key: %w", err)
	}

	pub, err := ssh.NewPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("encode public key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(der),
		strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub))),
		nil
}
