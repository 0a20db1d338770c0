package cli

import (
	"flag"

	"video-dashboard/internal/library"
	"video-dashboard/internal/statestore"
)

// addStateFlag registers the shared --state flag on a subcommand flag set.
func addStateFlag(fs *flag.FlagSet) *string {
	return fs.String("state", "", "path to the state file (default config/dashboard.json)")
}

func loadLibrary(statePath string) (*library.Library, string, error) {
	path := statestore.NormalizePath(statePath)
	data, err := statestore.Load(path)
	if err != nil {
		return nil, "", err
	}
	return library.New(data), path, nil
}

func saveLibrary(lib *library.Library, path string) error {
	return statestore.Save(path, lib.Data())
}
