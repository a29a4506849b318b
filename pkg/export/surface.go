package export

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Surface presents a printable document to the user, the way a browser
// would open it in a new window.
type Surface interface {
	Present(ctx context.Context, doc Document) (string, error)
}

// OpenerSurface writes documents into Dir and hands them to the system
// opener, which shows them in the default browser.
type OpenerSurface struct {
	Dir string
	// Command overrides the opener, for example "firefox --new-window".
	Command string
}

// Present writes doc and launches the opener without waiting for it.
func (s OpenerSurface) Present(ctx context.Context, doc Document) (string, error) {
	path, err := WriteFile(s.Dir, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	argv := s.argv(path)
	if len(argv) == 0 {
		return path, fmt.Errorf("%w: no opener for %s", ErrSurfaceUnavailable, runtime.GOOS)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return path, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	go func() { _ = cmd.Wait() }()
	return path, nil
}

func (s OpenerSurface) argv(path string) []string {
	if fields := strings.Fields(s.Command); len(fields) > 0 {
		return append(fields, path)
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", path}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", path}
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open", path}
	default:
		return nil
	}
}

// FileSurface only writes the document, for environments without a browser.
type FileSurface struct {
	Dir string
}

func (s FileSurface) Present(_ context.Context, doc Document) (string, error) {
	path, err := WriteFile(s.Dir, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	return path, nil
}

// Print renders the printable export and hands it to surface.
func Print(ctx context.Context, surface Surface, doc Document) (string, error) {
	if surface == nil {
		return "", ErrSurfaceUnavailable
	}
	return surface.Present(ctx, doc)
}
