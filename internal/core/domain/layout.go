package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "varcss.yaml"

	// DefaultDocumentFileName is the host document used when the config does not name one.
	DefaultDocumentFileName = "variables.json"

	// DefaultModeName is the name the host gives the implicit mode of a new collection.
	DefaultModeName = "Mode 1"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
