package main

import (
	"fmt"
	"os"

	"github.com/monify-labs/check_swap/internal/check"
	"github.com/monify-labs/check_swap/internal/config"
	"github.com/monify-labs/check_swap/pkg/nagios"
)

func main() {
	opts, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%s %s - %v\n", nagios.ShortName(config.PluginName), nagios.StatusUnknown, err)
		os.Exit(nagios.StatusUnknown.ExitCode())
	}

	// Help and version short-circuit before any collection. Both exit
	// UNKNOWN, following plugin getopt convention.
	if opts.ShowHelp {
		fmt.Println(config.VersionLine())
		fmt.Println()
		fmt.Print(opts.Usage())
		os.Exit(nagios.StatusUnknown.ExitCode())
	}
	if opts.ShowVersion {
		fmt.Println(config.VersionLine())
		os.Exit(nagios.StatusUnknown.ExitCode())
	}

	opts.SetupLogging()

	res := check.New(opts).Run()
	fmt.Println(res)
	os.Exit(res.Status.ExitCode())
}
