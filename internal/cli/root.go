package cli

import (
	"fmt"

	"video-dashboard/internal/logging"
)

func Run(args []string) error {
	args, debug := extractDebugFlag(args)
	logging.Setup(debug)

	if len(args) == 0 {
		printRootUsage()
		return nil
	}

	switch args[0] {
	case "ui":
		return runUI(args[1:])
	case "list":
		return runList(args[1:])
	case "show":
		return runShow(args[1:])
	case "new":
		return runNew(args[1:])
	case "edit":
		return runEdit(args[1:])
	case "check":
		return runCheck(args[1:])
	case "delete":
		return runDelete(args[1:])
	case "products":
		return runProducts(args[1:])
	case "stages":
		return runStages(args[1:])
	case "srt":
		return runSRT(args[1:])
	case "backup":
		return runBackup(args[1:])
	case "copy":
		return runCopy(args[1:])
	case "open":
		return runOpen(args[1:])
	case "theme":
		return runTheme(args[1:])
	case "help", "-h", "--help":
		printRootUsage()
		return nil
	default:
		printRootUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// extractDebugFlag peels a leading --debug off the argument list so every
// subcommand gets it for free.
func extractDebugFlag(args []string) ([]string, bool) {
	out := make([]string, 0, len(args))
	debug := false
	for _, a := range args {
		if a == "--debug" {
			debug = true
			continue
		}
		out = append(out, a)
	}
	return out, debug
}

func printRootUsage() {
	fmt.Println("video-dashboard: checklist-driven video production tracker")
	fmt.Println()
	fmt.Println("Quick Start:")
	fmt.Println("  video-dashboard new --title \"Best air fryer of 2026?\"")
	fmt.Println("  video-dashboard list")
	fmt.Println("  video-dashboard ui")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  ui        interactive dashboard (browse, edit, checklists)")
	fmt.Println("  list      drafts grouped by stage, plus published videos")
	fmt.Println("  show      one video in detail")
	fmt.Println("  new       create a draft")
	fmt.Println("  edit      update a video's fields (may auto-promote)")
	fmt.Println("  check     toggle a manual checklist task")
	fmt.Println("  delete    remove a video from either collection")
	fmt.Println("  products  name product slots and fill their store links")
	fmt.Println("  stages    manage the workflow stages and their tasks")
	fmt.Println("  srt       generate a subtitle file from a video's script")
	fmt.Println("  backup    export/import a full-state backup file")
	fmt.Println("  copy      copy a video field to the clipboard")
	fmt.Println("  open      open a product search in the browser")
	fmt.Println("  theme     show or set the UI theme")
	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("  - Use --json on read commands for machine-readable output")
	fmt.Println("  - Videos are referenced by id, unique id prefix, or #number")
	fmt.Println("  - State lives in config/dashboard.json (override with --state)")
	fmt.Println("  - Drafts promote to published automatically once every task is done")
}
