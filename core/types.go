package core

import (
	"github.com/crmarques/driftscan/config"
	"github.com/crmarques/driftscan/reportstore"
)

// DriftscanContext bundles the collaborators the CLI runs against. The
// analyzer itself is built per run by the analyze command, so compare rules
// and event sinks can come from flags.
type DriftscanContext struct {
	Config        config.Config
	ResourceLists reportstore.ResourceListStore
	Reports       reportstore.ReportStore
}

type BootstrapConfig struct {
	ConfigPath string
}
