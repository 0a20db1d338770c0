package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"video-dashboard/internal/library"
	"video-dashboard/internal/model"
	"video-dashboard/internal/workflow"
)

func runStages(args []string) error {
	if len(args) == 0 {
		return runStagesList(nil)
	}
	switch args[0] {
	case "list":
		return runStagesList(args[1:])
	case "add-stage":
		return runStagesEdit("add-stage", args[1:])
	case "remove-stage":
		return runStagesEdit("remove-stage", args[1:])
	case "rename-stage":
		return runStagesEdit("rename-stage", args[1:])
	case "move-stage":
		return runStagesEdit("move-stage", args[1:])
	case "add-task":
		return runStagesEdit("add-task", args[1:])
	case "remove-task":
		return runStagesEdit("remove-task", args[1:])
	case "rename-task":
		return runStagesEdit("rename-task", args[1:])
	case "move-task":
		return runStagesEdit("move-task", args[1:])
	case "help", "-h", "--help":
		printStagesUsage()
		return nil
	default:
		printStagesUsage()
		return fmt.Errorf("unknown stages subcommand %q", args[0])
	}
}

func printStagesUsage() {
	fmt.Println("stages: manage the workflow stage template")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  list                                     show stages and tasks")
	fmt.Println("  add-stage --name <name>")
	fmt.Println("  remove-stage --stage <id>")
	fmt.Println("  rename-stage --stage <id> --name <name>")
	fmt.Println("  move-stage --stage <id> --up|--down")
	fmt.Println("  add-task --stage <id> --label <label>")
	fmt.Println("  remove-task --task <key>")
	fmt.Println("  rename-task --task <key> --label <label>")
	fmt.Println("  move-task --task <key> --up|--down|--to-stage <id>")
	fmt.Println()
	fmt.Println("Every change reconciles all video checklists against the new template.")
}

func runStagesList(args []string) error {
	fs := flag.NewFlagSet("stages list", flag.ContinueOnError)
	state := addStateFlag(fs)
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib, _, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	stages := lib.Stages()
	if *jsonOut {
		return printJSON(stages)
	}

	for _, stage := range stages {
		fmt.Printf("%s (%s)\n", stage.Name, stage.ID)
		for _, task := range stage.Tasks {
			marker := ""
			if workflow.IsReservedKey(task.Key) {
				marker = "  [derived]"
			}
			fmt.Printf("  %-22s %s%s\n", task.Key, task.Label, marker)
		}
	}
	return nil
}

func runStagesEdit(op string, args []string) error {
	fs := flag.NewFlagSet("stages "+op, flag.ContinueOnError)
	state := addStateFlag(fs)
	stage := fs.String("stage", "", "stage id")
	task := fs.String("task", "", "task key")
	name := fs.String("name", "", "stage name")
	label := fs.String("label", "", "task label")
	toStage := fs.String("to-stage", "", "destination stage id (move-task)")
	up := fs.Bool("up", false, "move one position earlier")
	down := fs.Bool("down", false, "move one position later")
	jsonOut := fs.Bool("json", false, "print the resulting stages as JSON")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}

	delta := 0
	switch {
	case *up && *down:
		return errors.New("--up and --down are mutually exclusive")
	case *up:
		delta = -1
	case *down:
		delta = 1
	}

	stages, err := applyStagesOp(op, lib, stagesOpArgs{
		StageID: strings.TrimSpace(*stage),
		TaskKey: strings.TrimSpace(*task),
		Name:    *name,
		Label:   *label,
		ToStage: strings.TrimSpace(*toStage),
		Delta:   delta,
	})
	if err != nil {
		return err
	}
	if err := lib.ApplyStages(stages); err != nil {
		return err
	}
	if err := saveLibrary(lib, path); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(lib.Stages())
	}
	fmt.Printf("stages updated (%s); checklists reconciled\n", op)
	return nil
}

type stagesOpArgs struct {
	StageID string
	TaskKey string
	Name    string
	Label   string
	ToStage string
	Delta   int
}

func applyStagesOp(op string, lib *library.Library, a stagesOpArgs) ([]model.Stage, error) {
	stages := lib.Stages()
	switch op {
	case "add-stage":
		return workflow.AddStage(stages, a.Name)
	case "remove-stage":
		if a.StageID == "" {
			return nil, errors.New("--stage is required")
		}
		return workflow.RemoveStage(stages, a.StageID)
	case "rename-stage":
		if a.StageID == "" {
			return nil, errors.New("--stage is required")
		}
		return workflow.RenameStage(stages, a.StageID, a.Name)
	case "move-stage":
		if a.StageID == "" {
			return nil, errors.New("--stage is required")
		}
		if a.Delta == 0 {
			return nil, errors.New("--up or --down is required")
		}
		return workflow.MoveStage(stages, a.StageID, a.Delta)
	case "add-task":
		if a.StageID == "" {
			return nil, errors.New("--stage is required")
		}
		return workflow.AddTask(stages, a.StageID, a.Label)
	case "remove-task":
		if a.TaskKey == "" {
			return nil, errors.New("--task is required")
		}
		return workflow.RemoveTask(stages, a.TaskKey)
	case "rename-task":
		if a.TaskKey == "" {
			return nil, errors.New("--task is required")
		}
		return workflow.RenameTask(stages, a.TaskKey, a.Label)
	case "move-task":
		if a.TaskKey == "" {
			return nil, errors.New("--task is required")
		}
		if a.ToStage != "" {
			return workflow.MoveTaskToStage(stages, a.TaskKey, a.ToStage)
		}
		if a.Delta == 0 {
			return nil, errors.New("--up, --down, or --to-stage is required")
		}
		return workflow.MoveTaskWithinStage(stages, a.TaskKey, a.Delta)
	default:
		return nil, fmt.Errorf("unknown stages subcommand %q", op)
	}
}
