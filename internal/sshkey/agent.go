package sshkey

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"

	gitlauncherrors "gitlaunch.dev/gitlaunch/internal/errors"
)

// Agent registers private keys with a credential agent
type Agent interface {
	Add(privateKeyPath, comment string) error
}

// SocketAgent talks to an ssh-agent over its unix socket
type SocketAgent struct {
	Socket string
}

// NewSocketAgent returns an agent for the SSH_AUTH_SOCK of the environment
func NewSocketAgent() SocketAgent {
	return SocketAgent{Socket: os.Getenv("SSH_AUTH_SOCK")}
}

// Add loads an unencrypted private key and adds it to the agent.
func (a SocketAgent) Add(privateKeyPath, comment string) error {
	if a.Socket == "" {
		return gitlauncherrors.ErrNoAgent
	}

	data, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}
	key, err := ssh.ParseRawPrivateKey(data)
	if err != nil {
		return fmt.Errorf("failed to parse private key: %w", err)
	}

	conn, err := net.Dial("unix", a.Socket)
	if err != nil {
		return fmt.Errorf("failed to connect to ssh-agent: %w", err)
	}
	defer conn.Close()

	if err := agent.NewClient(conn).Add(agent.AddedKey{PrivateKey: key, Comment: comment}); err != nil {
		return fmt.Errorf("failed to add key to ssh-agent: %w", err)
	}
	return nil
}
