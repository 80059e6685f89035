package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"mbidify/internal/musicbrainz"
	"mbidify/internal/services"
)

const (
	registryProbeName    = "Radiohead"
	registryProbeTimeout = 10 * time.Second
)

// CheckRegistry issues a single one-result artist search. It does not retry.
func CheckRegistry(ctx context.Context, searcher musicbrainz.Searcher) Result {
	const name = "MusicBrainz"

	checkCtx, cancel := context.WithTimeout(ctx, registryProbeTimeout)
	defer cancel()

	result, err := searcher.SearchArtists(checkCtx, registryProbeName, 1)
	if err != nil {
		return Result{Name: name, Detail: summarizeRegistryError(err)}
	}
	if result == nil || len(result.Artists) == 0 {
		return Result{Name: name, Passed: true, Detail: "reachable (probe returned no artists)"}
	}
	return Result{Name: name, Passed: true, Detail: "reachable"}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func summarizeRegistryError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, services.ErrTimeout) {
		return "probe timed out (registry unresponsive)"
	}
	return fmt.Sprintf("%v (%s)", err, services.ErrorHint(err))
}
