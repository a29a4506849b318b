package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects how a command reports its results and failures.
// With JSON set, results are printed as JSON documents and a failure is
// written to stdout as {"error": "..."} while the command itself
// succeeds, so scripts always get a parseable line to read.
type OutputOptions struct {
	JSON bool
}

// AddOutputArg registers --json on cmd.
func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError returns err unchanged unless JSON output is selected, in
// which case err is encoded to color.Output and swallowed.
func (o *OutputOptions) HandleError(err error) error {
	return o.handleError(color.Output, err)
}

func (o *OutputOptions) handleError(w io.Writer, err error) error {
	if !o.JSON || err == nil {
		return err
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return errors.Join(err, merr)
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}
