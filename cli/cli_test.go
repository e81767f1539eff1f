package cli

import (
	"encoding/pem"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelp(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{
		{},
		{"get", "--help"},
		{"post", "--help"},
		{"put", "--help"},
		{"delete", "--help"},
		{"poll", "--help"},
		{"help"},
		{"help", "get"},
	} {
		_, err := execute(&Cli{}, args)
		assert.NoErrorf(err, "failed to execute %v", args)
	}
}

func TestHelpFlagDefaults(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(&Cli{}, []string{"--help"})
	assert.NoError(err)

	assert.Contains(out, "--env env")
	assert.Contains(out, "--env-file envFile")
	assert.Contains(out, "<key>=<value>")
	assert.NotContains(out, "(default <")
}

func TestVersion(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(&Cli{version: "1.2.3"}, []string{"version"})
	assert.NoError(err)
	assert.Equal("1.2.3\n", out)
}

func TestClientCreation(t *testing.T) {
	assert := assert.New(t)

	s := mustCreateServer(t)
	defer s.Shutdown()

	s.Handle("GET /lol-summoner/v1/current-summoner", http.StatusOK, `{"gameName":"test"}`)

	port := strconv.Itoa(int(s.Port()))

	t.Run("flags", func(t *testing.T) {
		out, err := execute(&Cli{}, []string{"get", "/lol-summoner/v1/current-summoner", "--port", port, "--token", "token"})
		assert.NoError(err)
		assert.JSONEq(`{"gameName":"test"}`, out)
	})

	t.Run("environment", func(t *testing.T) {
		cli := Cli{env: env{"GO_LCU_PORT": port, "GO_LCU_TOKEN": "token"}}

		out, err := execute(&cli, []string{"get", "/lol-summoner/v1/current-summoner"})
		assert.NoError(err)
		assert.JSONEq(`{"gameName":"test"}`, out)
	})

	t.Run("invalid environment variable", func(t *testing.T) {
		cli := Cli{env: env{"GO_LCU_PORT": "65536"}}

		_, err := execute(&cli, []string{"get", "/lol-summoner/v1/current-summoner"})
		assert.ErrorContains(err, "invalid value of environment variable GO_LCU_PORT")
	})

	t.Run("connection file", func(t *testing.T) {
		confFile := filepath.Join(t.TempDir(), "lcu.json")
		mustWriteFile(t, confFile, fmt.Sprintf(`{"port":%s,"token":"token","remoting_port":1,"remoting_token":"x"}`, port))

		out, err := execute(&Cli{}, []string{"get", "/lol-summoner/v1/current-summoner", "--conf", confFile})
		assert.NoError(err)
		assert.JSONEq(`{"gameName":"test"}`, out)
	})

	t.Run("CA file", func(t *testing.T) {
		caFile := filepath.Join(t.TempDir(), "ca.pem")
		mustWriteFile(t, caFile, string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: s.Certificate().Raw})))

		out, err := execute(&Cli{}, []string{"get", "/lol-summoner/v1/current-summoner", "--port", port, "--token", "token", "--ca-file", caFile})
		assert.NoError(err)
		assert.JSONEq(`{"gameName":"test"}`, out)
	})

	t.Run("invalid CA file", func(t *testing.T) {
		caFile := filepath.Join(t.TempDir(), "ca.pem")
		mustWriteFile(t, caFile, "no certificate")

		_, err := execute(&Cli{}, []string{"get", "/lol-summoner/v1/current-summoner", "--port", port, "--ca-file", caFile})
		assert.ErrorContains(err, "contains no PEM encoded certificate")
	})

	t.Run("no port", func(t *testing.T) {
		_, err := execute(&Cli{}, []string{"get", "/lol-summoner/v1/current-summoner", "--token", "token"})
		assert.ErrorContains(err, "no port set")

		_, err = execute(&Cli{}, []string{"get", "/lol-summoner/v1/current-summoner", "--port", port, "--remoting"})
		assert.ErrorContains(err, "no remoting port set")
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := execute(&Cli{}, []string{"get", "/lol-summoner/v1/current-summoner", "--port", port, "--token", "ä"})
		assert.ErrorContains(err, "failed to create client")
	})

	t.Run("debug", func(t *testing.T) {
		out, err := execute(&Cli{}, []string{"post", "/unknown", "--port", port, "--token", "token", "--data", `{"a":1}`, "--debug"})
		assert.NoError(err)
		assert.Contains(out, "RESOURCE_NOT_FOUND")
	})
}

func mustWriteFile(t *testing.T, name string, content string) {
	if err := os.WriteFile(name, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}
}
