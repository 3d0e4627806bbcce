package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crmarques/driftscan/config"
	"github.com/crmarques/driftscan/faults"
	"github.com/crmarques/driftscan/reportstore"
	"github.com/crmarques/driftscan/uploader"
)

// Dependencies are the collaborators injected into the command tree. The
// uploader is built lazily so runs without --upload never touch AWS config.
type Dependencies struct {
	Config        config.Config
	ResourceLists reportstore.ResourceListStore
	Reports       reportstore.ReportStore
	NewUploader   func(ctx context.Context, cfg config.Config) (uploader.ReportUploader, error)
}

func Execute(deps Dependencies) error {
	root := NewRootCommand(deps)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), "error: "+strings.TrimSpace(err.Error()))
		return err
	}
	return nil
}

func ExitCodeForError(err error) int {
	if err == nil {
		return 0
	}

	var typedErr *faults.TypedError
	if !errors.As(err, &typedErr) {
		return 1
	}

	switch typedErr.Category {
	case faults.ValidationError:
		return 2
	case faults.NotFoundError:
		return 3
	case faults.TransportError:
		return 4
	default:
		return 1
	}
}
