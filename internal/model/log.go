package model

import "encoding/json"

// LogMetadata describes who uploaded a log document and when.
// Timestamp is the compact form used in the stored filename (YYYYMMDD_HHMMSS);
// UploadTime is the full RFC3339 upload instant.
type LogMetadata struct {
	Name       string `json:"name"`
	Exam       string `json:"exam"`
	Timestamp  string `json:"timestamp"`
	UploadTime string `json:"upload_time"`
}

// LogEntry is the durable artifact written once per successful upload.
// Data carries the caller-supplied JSON body verbatim.
type LogEntry struct {
	Metadata LogMetadata     `json:"metadata"`
	Data     json.RawMessage `json:"data"`
}

// UploadReceipt is the success response of the log upload endpoint.
type UploadReceipt struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Exam     string `json:"exam"`
}
