package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGetCmd(cli *Cli) *cobra.Command {
	c := cobra.Command{
		Use:     "get ENDPOINT",
		Short:   "Send a GET request",
		Example: program + " get /lol-summoner/v1/current-summoner",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := cli.client.Get(c.Context(), args[0])
			if err != nil {
				return err
			}
			return cli.printResult(c, v)
		},
	}

	return &c
}

func newPostCmd(cli *Cli) *cobra.Command {
	var data dataFlags

	c := cobra.Command{
		Use:     "post ENDPOINT",
		Short:   "Send a POST request - without body, if no data is provided",
		Example: program + " post /lol-lobby/v2/lobby --data '{\"queueId\":420}'",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			body, ok, err := data.read()
			if err != nil {
				return err
			}

			var v any
			if ok {
				v, err = cli.client.Post(c.Context(), args[0], body)
			} else {
				v, err = cli.client.PostNoBody(c.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return cli.printResult(c, v)
		},
	}

	data.flag(&c)

	return &c
}

func newPutCmd(cli *Cli) *cobra.Command {
	var data dataFlags

	c := cobra.Command{
		Use:     "put ENDPOINT",
		Short:   "Send a PUT request",
		Example: program + " put /lol-chat/v1/me --data '{\"statusMessage\":\"afk\"}'",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			body, _, err := data.read()
			if err != nil {
				return err
			}

			v, err := cli.client.Put(c.Context(), args[0], body)
			if err != nil {
				return err
			}
			return cli.printResult(c, v)
		},
	}

	data.flag(&c)

	c.MarkFlagsOneRequired("data", "data-file")

	return &c
}

func newDeleteCmd(cli *Cli) *cobra.Command {
	c := cobra.Command{
		Use:     "delete ENDPOINT",
		Short:   "Send a DELETE request",
		Example: program + " delete /lol-lobby/v2/lobby",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := cli.client.Delete(c.Context(), args[0])
			if err != nil {
				return err
			}
			return cli.printResult(c, v)
		},
	}

	return &c
}

// dataFlags provides a JSON request body, either inline or from a file.
type dataFlags struct {
	data     string
	dataFile string
}

func (f *dataFlags) flag(c *cobra.Command) {
	c.Flags().StringVar(&f.data, "data", "", "JSON request body")
	c.Flags().StringVar(&f.dataFile, "data-file", "", "Path to a file, containing the JSON request body")

	c.MarkFlagsMutuallyExclusive("data", "data-file")
	c.MarkFlagFilename("data-file", "json")
}

// read returns the request body as [json.RawMessage], so that it is sent as it is.
// ok is false, if no data is provided.
func (f *dataFlags) read() (body json.RawMessage, ok bool, err error) {
	var b []byte
	switch {
	case f.data != "":
		b = []byte(f.data)
	case f.dataFile != "":
		b, err = os.ReadFile(f.dataFile)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read data file %s: %v", f.dataFile, err)
		}
	default:
		return nil, false, nil
	}

	if !json.Valid(b) {
		return nil, false, errors.New("data is not valid JSON")
	}

	return json.RawMessage(b), true, nil
}
