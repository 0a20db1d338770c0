package cli

import (
	"flag"
	"fmt"

	"video-dashboard/internal/model"
)

func runTheme(args []string) error {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	state := addStateFlag(fs)
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Println(lib.Theme())
		return nil
	}

	requested := fs.Arg(0)
	if requested != model.ThemeLight && requested != model.ThemeDark {
		return fmt.Errorf("unknown theme %q (want %s or %s)", requested, model.ThemeLight, model.ThemeDark)
	}
	lib.SetTheme(requested)
	if err := saveLibrary(lib, path); err != nil {
		return err
	}
	fmt.Printf("theme: %s\n", lib.Theme())
	return nil
}
