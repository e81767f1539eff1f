package cli

import (
	"bytes"
	"context"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gclaussn/go-lcu/http/client"
	"github.com/gclaussn/go-lcu/http/common"
	"github.com/gclaussn/go-lcu/lcu"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	envLookupAllowed = "envLookupAllowed" // flag level annotation that allows an environment variable lookup
	envPrefix        = "GO_LCU_"
	noClientRequired = "noClientRequired" // annotation, indicating that no client is required to run the command
	program          = "go-lcu"
)

func New(version string) *Cli {
	cli := Cli{version: version}

	cli.rootCmd = newRootCmd(&cli)

	return &cli
}

type Cli struct {
	version string

	rootCmd *cobra.Command

	client *client.Client
	env    env
	logger *zap.SugaredLogger
	wait   func(ctx context.Context, until time.Time) error

	conn         connFlags
	debugEnabled bool
	fail         bool
	jsonPath     string
	output       outputValue
}

func (c *Cli) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (c *Cli) help(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// connFlags holds the values of all flags, related to the connection info.
type connFlags struct {
	confFile      string
	caFile        string
	port          uint16
	token         string
	remotingPort  uint16
	remotingToken string
	remoting      bool
	timeout       time.Duration
}

func newRootCmd(cli *Cli) *cobra.Command {
	if cli.env == nil {
		cli.env = newEnv()
	}
	if cli.wait == nil {
		cli.wait = waitUntil
	}

	c := cobra.Command{
		Use:   program,
		Short: "A client for the REST APIs of a running League Client",
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			c.SilenceUsage = true

			var err error
			c.Flags().VisitAll(func(f *pflag.Flag) {
				if f.Changed || err != nil {
					return
				}
				if _, ok := f.Annotations[envLookupAllowed]; !ok {
					return
				}

				// e.g. remoting-port -> GO_LCU_REMOTING_PORT
				key := envPrefix + strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_")

				if value, ok := cli.env[key]; ok {
					if setErr := c.Flags().Set(f.Name, value); setErr != nil {
						err = fmt.Errorf("invalid value of environment variable %s: %v", key, setErr)
					}
				}
			})
			if err != nil {
				return err
			}

			if cli.logger == nil {
				cli.logger, err = newLogger(cli.debugEnabled)
				if err != nil {
					return fmt.Errorf("failed to create logger: %v", err)
				}
			}

			if !requiresClient(c) {
				return nil
			}

			if cli.client != nil {
				return nil // skip client creation when testing
			}

			info, err := resolveConnectionInfo(c.Flags(), cli.conn)
			if err != nil {
				return err
			}

			identity := info.Identity(cli.conn.remoting)
			if identity.Port == 0 {
				return noPortError(identity)
			}

			var rootCAs *x509.CertPool
			if cli.conn.caFile != "" {
				rootCAs, err = readRootCAs(cli.conn.caFile)
				if err != nil {
					return err
				}
			}

			lcuClient, err := client.New(info, cli.conn.remoting, func(o *client.Options) {
				o.Timeout = cli.conn.timeout
				o.RootCAs = rootCAs

				if cli.debugEnabled {
					o.OnRequest = cli.debugRequest
					o.OnResponse = cli.debugResponse
				}
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %v", err)
			}

			cli.logger.Debugw("client created", "identity", identity.String())

			cli.client = lcuClient
			return nil
		},
		RunE: cli.help,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cli.client != nil {
				cli.client.Shutdown()
			}
			if cli.logger != nil {
				cli.logger.Sync()
			}
		},
		Annotations: map[string]string{noClientRequired: ""},
	}

	f := c.PersistentFlags()

	f.StringVar(&cli.conn.confFile, "conf", "", "Path to a YAML or JSON file, containing port, token, remoting_port and remoting_token")
	f.StringVar(&cli.conn.caFile, "ca-file", "", "Path to a PEM file with root certificates, used to verify the League Client's certificate")
	f.Uint16Var(&cli.conn.port, "port", 0, "Port of the default REST API")
	f.StringVar(&cli.conn.token, "token", "", "Token of the default REST API")
	f.Uint16Var(&cli.conn.remotingPort, "remoting-port", 0, "Port of the remoting REST API")
	f.StringVar(&cli.conn.remotingToken, "remoting-token", "", "Token of the remoting REST API")
	f.BoolVar(&cli.conn.remoting, "remoting", false, "Send requests to the remoting REST API")
	f.DurationVar(&cli.conn.timeout, "timeout", 40*time.Second, "Time limit for requests made by the HTTP client")

	f.BoolVar(&cli.debugEnabled, "debug", false, "Log HTTP requests and responses")
	f.BoolVar(&cli.fail, "fail", false, "Exit with an error, when the response body is a LCU error")
	f.StringVar(&cli.jsonPath, "jsonpath", "", "JSONPath expression, applied to the response body - a single match is printed as it is, multiple matches as list")
	f.Var(&cli.output, "output", "Output format: json or yaml")

	f.Var(&cli.env, "env", "Set an environment variable in the format "+envFormat+" - can be repeated")
	f.Var(&envFile{cli.env}, "env-file", "Read in a file of environment variables, one "+envFormat+" per line")

	for _, name := range []string{"conf", "ca-file", "port", "token", "remoting-port", "remoting-token", "remoting", "timeout", "debug", "output"} {
		f.SetAnnotation(name, envLookupAllowed, nil)
	}

	c.MarkPersistentFlagFilename("conf", "yaml", "yml", "json")
	c.MarkPersistentFlagFilename("ca-file", "pem", "crt")
	c.MarkPersistentFlagFilename("env-file")

	c.AddCommand(newGetCmd(cli))
	c.AddCommand(newPostCmd(cli))
	c.AddCommand(newPutCmd(cli))
	c.AddCommand(newDeleteCmd(cli))
	c.AddCommand(newPollCmd(cli))
	c.AddCommand(newConfCmd(cli))
	c.AddCommand(newVersionCmd(cli))

	return &c
}

func newConfCmd(cli *Cli) *cobra.Command {
	c := cobra.Command{
		Use:   "conf",
		Short: "Show the resolved connection info, with masked tokens",
		RunE: func(c *cobra.Command, _ []string) error {
			info, err := resolveConnectionInfo(c.Flags(), cli.conn)
			if err != nil {
				return err
			}

			info.Token = lcu.MaskToken(info.Token)
			info.RemotingToken = lcu.MaskToken(info.RemotingToken)

			s, err := format(info, cli.output)
			if err != nil {
				return err
			}

			fmt.Fprint(c.OutOrStdout(), s)
			return nil
		},
		Annotations: map[string]string{noClientRequired: ""},
	}

	return &c
}

func newVersionCmd(cli *Cli) *cobra.Command {
	c := cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), cli.version)
		},
		Annotations: map[string]string{noClientRequired: ""},
	}

	return &c
}

func requiresClient(c *cobra.Command) bool {
	if _, ok := c.Annotations[noClientRequired]; ok {
		return false
	}
	if c.Name() == "help" || c.Name() == cobra.ShellCompRequestCmd || c.Name() == cobra.ShellCompNoDescRequestCmd {
		return false
	}
	if c.HasParent() && c.Parent().Name() == "completion" {
		return false
	}
	return true
}

func newLogger(debugEnabled bool) (*zap.SugaredLogger, error) {
	if !debugEnabled {
		return zap.NewNop().Sugar(), nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func noPortError(identity lcu.Identity) error {
	if identity.Remoting {
		return fmt.Errorf(
			"no remoting port set.\n\nuse flag --remoting-port, environment variable %sREMOTING_PORT or a connection file via --conf\n ",
			envPrefix,
		)
	}
	return fmt.Errorf(
		"no port set.\n\nuse flag --port, environment variable %sPORT or a connection file via --conf\n ",
		envPrefix,
	)
}

func (cli *Cli) debugRequest(req *http.Request) error {
	cli.logger.Debugf("%s %s", req.Method, req.URL)

	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}

	req.Body = io.NopCloser(bytes.NewReader(b)) // make body readable again

	cli.logger.Debugf("request body:\n%s", indentJSON(b))
	return nil
}

func (cli *Cli) debugResponse(res *http.Response) error {
	cli.logger.Debugf("status code: %d", res.StatusCode)

	headers := make([]string, 0, len(res.Header))
	for name, values := range res.Header {
		headers = append(headers, fmt.Sprintf("%s: %s", name, strings.Join(values, ", ")))
	}
	cli.logger.Debugf("response headers:\n%s", strings.Join(headers, "\n"))

	resBody := res.Body
	defer resBody.Close()

	b, err := io.ReadAll(resBody)
	if err != nil {
		cli.logger.Debugf("failed to read response body: %v", err)
		return err
	}

	res.Body = io.NopCloser(bytes.NewReader(b)) // make body readable again

	if len(b) != 0 {
		cli.logger.Debugf("response body:\n%s", indentJSON(b))
	}
	return nil
}

func indentJSON(b []byte) string {
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, b, "", "  "); err != nil {
		return string(b)
	}
	return buf.String()
}

// printResult prints a result in the configured output format.
// If a JSONPath is configured, the matching values are printed instead.
func (cli *Cli) printResult(c *cobra.Command, v any) error {
	out := v
	if cli.jsonPath != "" {
		var err error
		if out, err = queryJSONPath(cli.jsonPath, v); err != nil {
			return err
		}
	}

	s, err := format(out, cli.output)
	if err != nil {
		return err
	}

	fmt.Fprint(c.OutOrStdout(), s)

	if cli.fail {
		if errorRes, ok := common.ParseErrorRes(v); ok {
			return errorRes
		}
	}
	return nil
}
