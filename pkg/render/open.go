package render

import (
	"os/exec"
	"runtime"

	"github.com/matzehuels/sitegrid/pkg/errors"
)

// Open starts the platform's default viewer for path and returns without
// waiting for it to exit. The viewer outlives the calling process.
func Open(path string) error {
	name, args, err := openCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

func openCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", path}, nil
	default:
		return "", nil, errors.New(errors.ErrCodeUnsupported, "no viewer command for %s", goos)
	}
}
