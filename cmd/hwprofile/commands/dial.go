package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/logging"
	"github.com/thoreinstein/hwprofile/internal/sample"
)

func init() {
	rootCmd.AddCommand(dialCmd)
}

var dialCmd = &cobra.Command{
	Use:   "dial [number]",
	Short: "Dial a number through the device's phone service",
	Long: `Run the sample app's call command against the current device.

Only phones (and the simulator, when its host supplies a dialer) carry a
phone service. Without a number the sample app's default is dialed.

Examples:
  hwprofile dial --profile iphone "+1 555 0100"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache(cmd, hardwareOverride())
		if err != nil {
			return err
		}
		number := ""
		if len(args) == 1 {
			number = args[0]
		}
		return runDialWithWriter(os.Stdout, cache, number, logging.FromContext(cmd.Context()))
	},
}

// runDialWithWriter executes the view model's call command for number, or
// the default number when it is empty.
func runDialWithWriter(w io.Writer, cache *device.Cache, number string, logger *slog.Logger) error {
	vm := sample.NewMainViewModel(cache, nil, logger)
	if number != "" {
		vm.NumberToCall.Set(number)
	}

	if !vm.CallCommand.CanExecute(struct{}{}) {
		d := cache.Current()
		if !d.PhoneService().IsPresent() {
			return errors.NewUserError(
				errors.Unsupported("phone.dial"),
				fmt.Sprintf("A %s cannot place calls; use a phone profile", d.Kind()),
			)
		}
		return errors.NewUserError(errors.New("number is blank"), "Pass a number to dial")
	}

	var dialErr error
	vm.DialErrors = func(err error) { dialErr = err }
	vm.CallCommand.Execute(struct{}{})
	if dialErr != nil {
		return errors.NewSystemError(errors.Op("phone.dial", dialErr), "")
	}

	fmt.Fprintf(w, "%s\nDialed %s\n", vm.DeviceName(), strings.TrimSpace(vm.NumberToCall.Get()))
	return nil
}
