// Package sshkey provisions the SSH keypair used to push over SSH.
package sshkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"

	gitlauncherrors "gitlaunch.dev/gitlaunch/internal/errors"
)

// KeyName is the base name of the keypair under ~/.ssh
const KeyName = "id_ed25519"

// Paths locates a keypair on disk
type Paths struct {
	Dir        string
	PrivateKey string
	PublicKey  string
}

// DefaultPaths returns the keypair paths under home/.ssh
func DefaultPaths(home string) Paths {
	dir := filepath.Join(home, ".ssh")
	private := filepath.Join(dir, KeyName)
	return Paths{
		Dir:        dir,
		PrivateKey: private,
		PublicKey:  private + ".pub",
	}
}

// HasPublicKey reports whether the public key file exists
func (p Paths) HasPublicKey() bool {
	_, err := os.Stat(p.PublicKey)
	return err == nil
}

// ReadPublicKey returns the public key line without surrounding whitespace
func (p Paths) ReadPublicKey() (string, error) {
	data, err := os.ReadFile(p.PublicKey)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", gitlauncherrors.ErrNoPublicKey, p.PublicKey)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read public key: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Generator creates a keypair at the given paths
type Generator interface {
	Generate(paths Paths, comment string) error
}

// Ed25519Generator generates unencrypted ed25519 keys in OpenSSH format
type Ed25519Generator struct {
	// Rand is the entropy source; crypto/rand when nil
	Rand io.Reader
}

// Generate writes a new keypair. When the private key already exists only the
// public half is derived from it, so an existing private key is never replaced.
func (g Ed25519Generator) Generate(paths Paths, comment string) error {
	if err := os.MkdirAll(paths.Dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", paths.Dir, err)
	}

	if _, err := os.Stat(paths.PrivateKey); err == nil {
		return derivePublicKey(paths, comment)
	}

	random := g.Rand
	if random == nil {
		random = rand.Reader
	}

	pub, priv, err := ed25519.GenerateKey(random)
	if err != nil {
		return fmt.Errorf("failed to generate ed25519 key: %w", err)
	}

	block, err := ssh.MarshalPrivateKey(priv, comment)
	if err != nil {
		return fmt.Errorf("failed to marshal private key: %w", err)
	}

	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	if err := os.WriteFile(paths.PrivateKey, pem.EncodeToMemory(block), 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(paths.PublicKey, []byte(authorizedKeyLine(sshPub, comment)), 0o644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}
	return nil
}

func derivePublicKey(paths Paths, comment string) error {
	data, err := os.ReadFile(paths.PrivateKey)
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return fmt.Errorf("failed to parse existing private key %s: %w", paths.PrivateKey, err)
	}
	if err := os.WriteFile(paths.PublicKey, []byte(authorizedKeyLine(signer.PublicKey(), comment)), 0o644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}
	return nil
}

func authorizedKeyLine(key ssh.PublicKey, comment string) string {
	line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(key)))
	if comment != "" {
		line += " " + comment
	}
	return line + "\n"
}
