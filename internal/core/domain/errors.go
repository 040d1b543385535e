package domain

import "go.trai.ch/zerr"

var (
	// ErrCollectionNotFound is returned when a requested collection does not exist in the host document.
	ErrCollectionNotFound = zerr.New("collection not found")

	// ErrModeNotFound is returned when a requested mode does not exist in its collection.
	ErrModeNotFound = zerr.New("mode not found")

	// ErrVariableNotFound is returned when a requested variable does not exist in the host document.
	ErrVariableNotFound = zerr.New("variable not found")

	// ErrTypeMismatch is returned when a literal does not match the variable's resolved type.
	ErrTypeMismatch = zerr.New("value does not match variable type")

	// ErrHostReadFailed is returned when reading from the host document fails.
	ErrHostReadFailed = zerr.New("failed to read host document")

	// ErrHostWriteFailed is returned when a create or update request to the host document fails.
	ErrHostWriteFailed = zerr.New("failed to write host document")

	// ErrAssignFailed is returned when a single value cannot be assigned during import.
	ErrAssignFailed = zerr.New("failed to assign value")

	// ErrImportFailed is returned when an import is aborted before all values were assigned.
	ErrImportFailed = zerr.New("import failed")

	// ErrRootCollectionRequired is returned when an export names no root collection.
	ErrRootCollectionRequired = zerr.New("root collection required")

	// ErrExportFailed is returned when an export cannot be rendered.
	ErrExportFailed = zerr.New("export failed")

	// ErrDocumentReadFailed is returned when the document file cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document file")

	// ErrDocumentParseFailed is returned when the document file cannot be decoded.
	ErrDocumentParseFailed = zerr.New("failed to parse document file")

	// ErrDocumentMarshalFailed is returned when the document cannot be encoded.
	ErrDocumentMarshalFailed = zerr.New("failed to marshal document")

	// ErrDocumentWriteFailed is returned when the document file cannot be written.
	ErrDocumentWriteFailed = zerr.New("failed to write document file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInputReadFailed is returned when CSS input cannot be read.
	ErrInputReadFailed = zerr.New("failed to read input")

	// ErrOutputWriteFailed is returned when CSS output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrUnknownMessage is returned when the shell receives a message type it does not handle.
	ErrUnknownMessage = zerr.New("unknown message type")

	// ErrMalformedMessage is returned when an inbound shell message cannot be decoded.
	ErrMalformedMessage = zerr.New("malformed message")

	// ErrWatchFailed is returned when the document file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch document file")
)
