package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"video-dashboard/internal/backup"
	"video-dashboard/internal/statestore"
)

func runBackup(args []string) error {
	if len(args) == 0 {
		printBackupUsage()
		return nil
	}
	switch args[0] {
	case "export":
		return runBackupExport(args[1:])
	case "import":
		return runBackupImport(args[1:])
	case "help", "-h", "--help":
		printBackupUsage()
		return nil
	default:
		printBackupUsage()
		return fmt.Errorf("unknown backup subcommand %q", args[0])
	}
}

func printBackupUsage() {
	fmt.Println("backup: export or import the full state document")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  export [--out <path>]     write a backup file (default videodash_backup_<date>.json)")
	fmt.Println("  import --in <path> [--yes] replace ALL current state with the backup")
}

func runBackupExport(args []string) error {
	fs := flag.NewFlagSet("backup export", flag.ContinueOnError)
	state := addStateFlag(fs)
	out := fs.String("out", "", "output path (default videodash_backup_<date>.json)")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib, _, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	target := strings.TrimSpace(*out)
	if target == "" {
		target = backup.DefaultExportName(time.Now())
	}
	if err := backup.Export(target, lib.Data()); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(struct {
			Path      string `json:"path"`
			Drafts    int    `json:"drafts"`
			Published int    `json:"published"`
		}{target, len(lib.Drafts()), len(lib.Published())})
	}
	fmt.Printf("backup written: %s\n", target)
	fmt.Printf("drafts: %d\n", len(lib.Drafts()))
	fmt.Printf("published: %d\n", len(lib.Published()))
	return nil
}

func runBackupImport(args []string) error {
	fs := flag.NewFlagSet("backup import", flag.ContinueOnError)
	state := addStateFlag(fs)
	in := fs.String("in", "", "backup file to import")
	yes := fs.Bool("yes", false, "skip confirmation")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	source := strings.TrimSpace(*in)
	if source == "" {
		return fmt.Errorf("--in is required")
	}

	data, err := backup.Import(source)
	if err != nil {
		return err
	}
	if !*yes {
		ok, err := promptConfirm(fmt.Sprintf("replace ALL current data with %s?", source))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("aborted")
			return nil
		}
	}

	path := statestore.NormalizePath(*state)
	if err := statestore.Save(path, data); err != nil {
		return err
	}
	fmt.Printf("backup imported: %s\n", source)
	fmt.Printf("drafts: %d\n", len(data.Drafts))
	fmt.Printf("published: %d\n", len(data.PublishedVideos))
	return nil
}
