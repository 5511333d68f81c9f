package taskboard

import _ "embed"

// Version is the release version of the taskboard module.
//
//go:embed VERSION
var Version string
