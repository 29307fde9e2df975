package main

// User-facing strings for the confmend CLI.
const (
	MsgRootShort = "Reconcile configuration files left behind by package upgrades"
	MsgRootLong  = `confmend finds the .rpmnew, .rpmsave and .rpmorig variants that package
upgrades leave next to locally edited configuration files and converges
each pair on a single surviving file: keep your version, adopt the
maintainer's version, show the difference, or decide interactively.`

	MsgRunShort = "Resolve leftover configuration variants"
	MsgRunLong  = `Scan for configuration variant files and resolve each pair according to
the configured policy. With no --unattended mode each pair is resolved
through an interactive prompt; that requires a terminal.`

	MsgGenconfigShort = "Print the default configuration as TOML"
	MsgVersionShort   = "Print version information"

	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagUnattended = "Unattended policy: diff, maintainer or user"
	MsgFlagFrontend   = "Interactive merge frontend (e.g. env)"
	MsgFlagAssumeYes  = "Assume yes to host prompts; disables interactive resolution"
	MsgFlagAssumeNo   = "Assume no to host prompts; disables interactive resolution"
	MsgFlagPackages   = "Restrict resolution to these package names"
	MsgFlagConfig     = "Path to the config file"
	MsgFlagNoSummary  = "Skip the end-of-session summary table"
)
