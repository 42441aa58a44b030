package sshkey

import (
	"fmt"
)

// Provisioner makes sure a keypair exists and is loaded in the agent
type Provisioner struct {
	Paths     Paths
	Generator Generator
	Agent     Agent
}

// NewProvisioner returns a provisioner for ~/.ssh/id_ed25519 under home
func NewProvisioner(home string) *Provisioner {
	return &Provisioner{
		Paths:     DefaultPaths(home),
		Generator: Ed25519Generator{},
		Agent:     NewSocketAgent(),
	}
}

// EnsureKeyPair generates a keypair when the public key is missing.
// It reports whether a key was generated.
func (p *Provisioner) EnsureKeyPair(comment string) (bool, error) {
	if p.Paths.HasPublicKey() {
		return false, nil
	}
	if err := p.Generator.Generate(p.Paths, comment); err != nil {
		return false, fmt.Errorf("failed to generate SSH key: %w", err)
	}
	return true, nil
}

// Usable reports whether SSH transport can be used, which is exactly when the
// public key file exists.
func (p *Provisioner) Usable() bool {
	return p.Paths.HasPublicKey()
}

// AddToAgent registers the private key with the credential agent
func (p *Provisioner) AddToAgent(comment string) error {
	if p.Agent == nil {
		return nil
	}
	return p.Agent.Add(p.Paths.PrivateKey, comment)
}
