/*
go-lcu is a CLI for sending requests to the REST APIs of a running League Client.

Usage:

	go-lcu [flags]
	go-lcu [command]

Available Commands:

	completion  Generate the autocompletion script for the specified shell
	conf        Show the resolved connection info, with masked tokens
	delete      Send a DELETE request
	get         Send a GET request
	help        Help about any command
	poll        Send a GET request now and at every tick of a CRON expression
	post        Send a POST request - without body, if no data is provided
	put         Send a PUT request
	version     Show version

Flags:

	    --ca-file string          Path to a PEM file with root certificates, used to verify the League Client's certificate
	    --conf string             Path to a YAML or JSON file, containing port, token, remoting_port and remoting_token
	    --debug                   Log HTTP requests and responses
	    --env env                 Set an environment variable in the format <key>=<value> - can be repeated
	    --env-file envFile        Read in a file of environment variables, one <key>=<value> per line
	    --fail                    Exit with an error, when the response body is a LCU error
	-h, --help                    help for go-lcu
	    --jsonpath string         JSONPath expression, applied to the response body - a single match is printed as it is, multiple matches as list
	    --output output           Output format: json or yaml (default json)
	    --port uint16             Port of the default REST API
	    --remoting                Send requests to the remoting REST API
	    --remoting-port uint16    Port of the remoting REST API
	    --remoting-token string   Token of the remoting REST API
	    --timeout duration        Time limit for requests made by the HTTP client (default 40s)
	    --token string            Token of the default REST API

Flags, except --env and --env-file, can also be set via environment variables with the prefix GO_LCU_, e.g. GO_LCU_REMOTING_PORT.

Use "go-lcu [command] --help" for more information about a command.
*/
package main

import (
	"os"

	"github.com/gclaussn/go-lcu/cli"
)

var (
	version = "unknown-version"
)

func main() {
	cli := cli.New(version)
	os.Exit(cli.Execute())
}
