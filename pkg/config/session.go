package config

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/confmend/confmend/pkg/types"
)

// SessionConfig is the explicit session-start configuration handed to the
// session controller. All ambient state (tty, host assume flags) is read
// once, here, never mid-algorithm.
type SessionConfig struct {
	// Mode is the validated resolution mode for the session.
	Mode types.ResolutionMode

	// Frontend identifies the interactive frontend, opaque to the core.
	Frontend string

	// Interactive is the computed interactivity flag.
	Interactive bool

	// Packages queued for review, in transaction discovery order.
	Packages []string

	// ScanPaths are the directories searched for variant files.
	ScanPaths []string
}

// HostFlags are the two mutually exclusive assume flags from the host's
// global configuration.
type HostFlags struct {
	AssumeYes bool
	AssumeNo  bool
}

// ComputeInteractive determines whether the session may prompt a human.
// Either assume flag forces unattended behavior, as does a stdin that is
// not a terminal.
func ComputeInteractive(stdin *os.File, flags HostFlags) bool {
	if flags.AssumeYes || flags.AssumeNo {
		return false
	}
	if stdin == nil {
		return false
	}
	return isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd())
}

// NewSessionConfig assembles a SessionConfig from the loaded plugin
// configuration and the host's global state. The unattended value is
// validated here; invalid values degrade to unset.
func NewSessionConfig(cfg *Config, flags HostFlags, packages []string) SessionConfig {
	return SessionConfig{
		Mode:        types.ParseResolutionMode(cfg.Main.Unattended),
		Frontend:    cfg.Main.Frontend,
		Interactive: ComputeInteractive(os.Stdin, flags),
		Packages:    packages,
		ScanPaths:   cfg.Main.ScanPaths,
	}
}
