package shell

import (
	"go.trai.ch/varcss/internal/core/domain"
)

// Inbound message types.
const (
	TypeExportCSS = "export-css"
	TypeImportCSS = "import-css"
	TypeRefresh   = "refresh"
)

// Outbound message types.
const (
	TypeCSSOutput    = "css-output"
	TypeImportStatus = "import-status"
	TypeSnapshot     = "snapshot"
	TypeError        = "error"
)

type header struct {
	Type string `json:"type"`
}

type exportMessage struct {
	Type string `json:"type"`
	domain.ExportRequest
}

type importMessage struct {
	Type string `json:"type"`
	domain.ImportRequest
}

type cssOutputMessage struct {
	Type string `json:"type"`
	domain.ExportResponse
}

type importStatusMessage struct {
	Type string `json:"type"`
	domain.ImportResponse
}

type snapshotMessage struct {
	Type string `json:"type"`
	*domain.Snapshot
}

type errorMessage struct {
	Type    string `json:"type"`
	Request string `json:"request,omitempty"`
	Message string `json:"message"`
}
