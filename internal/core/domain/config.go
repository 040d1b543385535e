package domain

// Config is the resolved project configuration.
type Config struct {
	// Root is the directory the configuration was found in, or the working
	// directory when no file exists.
	Root string
	// DocumentPath is the host document file, relative paths resolved against Root.
	DocumentPath string
	// Export holds the default export selection.
	Export ExportRequest
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}
