package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/printers"
)

// ErrReported wraps errors already shown to the user as a localized notice.
// main exits non-zero without printing them again.
var ErrReported = errors.New("reported")

// handleError shows user input errors as localized notices on stderr. Other
// errors, and every error under --json, go through output.HandleError.
func handleError(cmd *cobra.Command, err error) error {
	if err == nil || output.JSON {
		return output.HandleError(err)
	}
	l := locale.Lookup(viper.GetString("locale"))
	if !l.HasNotice(err) {
		return err
	}
	pp := printers.PrettyPrint{Out: cmd.ErrOrStderr(), Locale: l}
	pp.Notice(err)
	cmd.SilenceErrors = true
	return fmt.Errorf("%w: %w", ErrReported, err)
}
