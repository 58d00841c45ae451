package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestGenerate(t *testing.T) {
	priv, pub, err := Generate(1024)
	require.NoError(t, err)

	der, err := base64.StdEncoding.DecodeString(priv)
	require.NoError(t, err)
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	require.NoError(t, err)
	rsaKey, ok := parsed.(*rsa.PrivateKey)
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(pub, "ssh-rsa "))
	authorized, _, _, _, err := ssh.ParseAuthorizedKey([]byte(pub))
	require.NoError(t, err)

	expected, err := ssh.NewPublicKey(&rsaKey.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, expected.Marshal(), authorized.Marshal())
}
