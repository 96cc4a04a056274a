// Package jwttest generates throwaway RSA key pairs for tests.
package jwttest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
)

type KeyPair struct {
	Private        *rsa.PrivateKey
	EncodedPublic  string
	EncodedPrivate string
}

func NewKeyPair(t testing.TB) KeyPair {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey: %v", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("x509.MarshalPKIXPublicKey: %v", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	return KeyPair{
		Private:        key,
		EncodedPublic:  base64.StdEncoding.EncodeToString(pubPEM),
		EncodedPrivate: base64.StdEncoding.EncodeToString(privPEM),
	}
}
