package domain

// ExportRequest asks for the CSS rendering of a root collection and an
// optional theme collection.
type ExportRequest struct {
	RootCollectionID  string `json:"selectedRootCollectionId"`
	ThemeCollectionID string `json:"selectedThemeCollectionId,omitempty"`
	UseOverrideSyntax bool   `json:"useOverrideSyntax"`
}

// ExportResponse carries the rendered CSS text.
type ExportResponse struct {
	CSSText string `json:"cssText"`
}

// ImportRequest carries CSS text to materialize into the host document.
type ImportRequest struct {
	CSSText string `json:"cssText"`
}

// ImportStatus is the outcome of an import.
type ImportStatus string

const (
	// ImportSuccess means the import ran to completion. Individual values may
	// still have failed; the message says how many.
	ImportSuccess ImportStatus = "success"
	// ImportError means the import was aborted.
	ImportError ImportStatus = "error"
)

// ImportResponse reports the outcome of an import to the shell.
type ImportResponse struct {
	Status  ImportStatus `json:"status"`
	Message string       `json:"message"`
}

// SnapshotMode is a mode as pushed to the shell.
type SnapshotMode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// SnapshotCollection is a collection as pushed to the shell.
type SnapshotCollection struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Modes []SnapshotMode `json:"modes"`
}

// SnapshotVariable is a variable as pushed to the shell, with its display
// value for every mode of its collection.
type SnapshotVariable struct {
	Name          string            `json:"name"`
	CollectionID  string            `json:"collectionId"`
	ModeValues    map[string]string `json:"modeValues"`
	OverrideToken string            `json:"overrideToken,omitempty"`
}

// Snapshot is the state pushed to the shell on startup and after mutations.
type Snapshot struct {
	Revision    string               `json:"revision,omitempty"`
	Variables   []SnapshotVariable   `json:"variables"`
	Collections []SnapshotCollection `json:"collections"`
}

// ImportReport summarizes what an import changed in the host document.
type ImportReport struct {
	CollectionsCreated int
	ModesCreated       int
	VariablesCreated   int
	VariablesMatched   int
	ValuesAssigned     int
	// Failures holds the per-value assignment errors, combined.
	Failures error
	// FailureCount is the number of values that could not be assigned.
	FailureCount int
}
