package cli

import (
	"bufio"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"github.com/gclaussn/go-lcu/lcu"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// resolveConnectionInfo reads the connection file, if set, and overrides its values with the values of changed flags.
// Flags, set via environment variable, are considered as changed.
func resolveConnectionInfo(flags *pflag.FlagSet, conn connFlags) (lcu.ConnectionInfo, error) {
	var info lcu.ConnectionInfo
	if conn.confFile != "" {
		var err error
		if info, err = readConnectionInfo(conn.confFile); err != nil {
			return lcu.ConnectionInfo{}, err
		}
	}

	if flags.Changed("port") {
		info.Port = conn.port
	}
	if flags.Changed("token") {
		info.Token = conn.token
	}
	if flags.Changed("remoting-port") {
		info.RemotingPort = conn.remotingPort
	}
	if flags.Changed("remoting-token") {
		info.RemotingToken = conn.remotingToken
	}

	return info, nil
}

// readConnectionInfo reads a connection file - since YAML is a superset of JSON, both formats are supported.
func readConnectionInfo(fileName string) (lcu.ConnectionInfo, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return lcu.ConnectionInfo{}, fmt.Errorf("failed to read connection file %s: %v", fileName, err)
	}

	var info lcu.ConnectionInfo
	if err := yaml.Unmarshal(b, &info); err != nil {
		return lcu.ConnectionInfo{}, fmt.Errorf("failed to parse connection file %s: %v", fileName, err)
	}

	if err := info.Validate(); err != nil {
		return lcu.ConnectionInfo{}, fmt.Errorf("connection file %s: %v", fileName, err)
	}

	return info, nil
}

func readRootCAs(fileName string) (*x509.CertPool, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA file %s: %v", fileName, err)
	}

	rootCAs := x509.NewCertPool()
	if !rootCAs.AppendCertsFromPEM(b) {
		return nil, fmt.Errorf("CA file %s contains no PEM encoded certificate", fileName)
	}

	return rootCAs, nil
}

const envFormat = "<key>=<value>"

type env map[string]string

func newEnv() env {
	env := env{}
	for _, value := range os.Environ() {
		env.Set(value)
	}
	return env
}

func (v env) Set(value string) error {
	s := strings.SplitN(value, "=", 2)
	if len(s) != 2 {
		return fmt.Errorf("required format %s", envFormat)
	}
	v[s[0]] = s[1]
	return nil
}

func (v env) String() string {
	return ""
}

func (v env) Type() string {
	return "env"
}

// envFile reads lines in the format of an env into it. Empty lines and lines, starting with #, are skipped.
type envFile struct {
	env env
}

func (v envFile) Set(value string) error {
	file, err := os.Open(value)
	if err != nil {
		return err
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)

	i := 0
	for scanner.Scan() {
		i++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := v.env.Set(line); err != nil {
			return fmt.Errorf("wrong format in line %d: required format %s", i, envFormat)
		}
	}

	return scanner.Err()
}

func (v envFile) String() string {
	return ""
}

func (v envFile) Type() string {
	return "envFile"
}
