package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/gclaussn/go-lcu/http/client"
	"github.com/gclaussn/go-lcu/http/server"
	"github.com/gclaussn/go-lcu/lcu"
)

func mustCreateServer(t *testing.T) *server.Server {
	s := server.New("token")
	s.ListenAndServe()
	return s
}

func mustCreateClient(t *testing.T, s *server.Server) *client.Client {
	c, err := client.New(lcu.ConnectionInfo{Port: s.Port(), Token: "token"}, false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

// execute runs a command with an empty environment and returns what has been printed to stdout.
func execute(cli *Cli, args []string) (string, error) {
	if cli.env == nil {
		cli.env = env{}
	}

	rootCmd := newRootCmd(cli)
	rootCmd.PersistentPostRun = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)

	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, c *client.Client, args []string) string {
	out, err := execute(&Cli{client: c}, args)
	if err != nil {
		t.Fatalf("failed to execute %v: %v", args, err)
	}
	return out
}
