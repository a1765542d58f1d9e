package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seezol/inputkit/app"
)

var (
	activateAll    bool
	activateIgnore bool
	terminateForce bool
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Inspect and control running applications",
}

var appInfoCmd = &cobra.Command{
	Use:   "info [pid]",
	Short: "Print metadata for an application (default: this process)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := appFromArgs(args)
		if err != nil {
			return err
		}
		defer cleanup()

		if pid, ok := a.PID(); ok {
			fmt.Printf("pid: %d\n", pid)
		}
		if name, ok := a.LocalizedName(); ok {
			fmt.Printf("name: %s\n", name)
		}
		if bundle, ok := a.BundleIdentifier(); ok {
			fmt.Printf("bundle: %s\n", bundle)
		}
		if path, ok := a.ExecutablePath(); ok {
			fmt.Printf("executable: %s\n", path)
		}
		fmt.Printf("architecture: %s\n", a.Architecture())
		fmt.Printf("hidden: %v\nactive: %v\nterminated: %v\n",
			a.Hidden(), a.Active(), a.Terminated())
		return nil
	},
}

var appActivateCmd = &cobra.Command{
	Use:   "activate <pid>",
	Short: "Bring an application to the foreground",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := appFromArgs(args)
		if err != nil {
			return err
		}
		defer cleanup()

		var opts app.ActivationOptions
		if activateAll {
			opts |= app.ActivateAllWindows
		}
		if activateIgnore {
			opts |= app.ActivateIgnoringOtherApps
		}
		if !a.Activate(opts) {
			return fmt.Errorf("activation refused")
		}
		return nil
	},
}

var appHideCmd = &cobra.Command{
	Use:   "hide <pid>",
	Short: "Hide an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := appFromArgs(args)
		if err != nil {
			return err
		}
		defer cleanup()
		if !a.SetHidden(true) {
			return fmt.Errorf("hide refused")
		}
		return nil
	},
}

var appUnhideCmd = &cobra.Command{
	Use:   "unhide <pid>",
	Short: "Unhide an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := appFromArgs(args)
		if err != nil {
			return err
		}
		defer cleanup()
		if !a.SetHidden(false) {
			return fmt.Errorf("unhide refused")
		}
		return nil
	},
}

var appTerminateCmd = &cobra.Command{
	Use:   "terminate <pid>",
	Short: "Ask an application to quit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := appFromArgs(args)
		if err != nil {
			return err
		}
		defer cleanup()
		if !a.Terminate(terminateForce) {
			return fmt.Errorf("terminate refused")
		}
		return nil
	},
}

func init() {
	appActivateCmd.Flags().BoolVar(&activateAll, "all-windows", false, "bring every window forward")
	appActivateCmd.Flags().BoolVar(&activateIgnore, "force", false, "steal focus from the active application")
	appTerminateCmd.Flags().BoolVar(&terminateForce, "force", false, "kill instead of asking to quit")

	appCmd.AddCommand(appInfoCmd)
	appCmd.AddCommand(appActivateCmd)
	appCmd.AddCommand(appHideCmd)
	appCmd.AddCommand(appUnhideCmd)
	appCmd.AddCommand(appTerminateCmd)
}

// appFromArgs resolves an optional pid argument; no argument means the
// current process. The cleanup closes looked-up handles and is a no-op
// for the current-process singleton.
func appFromArgs(args []string) (*app.App, func(), error) {
	if len(args) == 0 {
		a := app.Current()
		if a == nil {
			return nil, nil, fmt.Errorf("no application object for this process")
		}
		return a, func() {}, nil
	}
	pid, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return nil, nil, fmt.Errorf("pid %q: %w", args[0], err)
	}
	a, ok := app.FromPID(int32(pid))
	if !ok {
		return nil, nil, fmt.Errorf("no running application with pid %d", pid)
	}
	return a, a.Close, nil
}
