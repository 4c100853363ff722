package models

// Frame is a single stored image record. Frames sharing a RequestCode were
// created by one upload call and form a batch; the batch itself is not a
// stored entity, only this grouping.
//
// Invariants:
//   - FileName is globally unique (primary key) and is the server-generated
//     UUID, never the client's original file name;
//   - every frame of a batch shares the batch's CreatedAt and lives in the
//     bucket named by the first 8 characters of RequestCode (YYYYMMDD).
type Frame struct {
	// RequestCode identifies the batch: the upload instant formatted as a
	// compact UTC timestamp with second precision (YYYYMMDDHHMMSS).
	RequestCode string `json:"request_code"`

	// FileName is the server-generated object name without the ".jpg" suffix.
	FileName string `json:"file_name"`

	// CreatedAt is the shared human-readable batch timestamp, second
	// precision ("2006-01-02 15:04:05"). Persisted verbatim so that upload
	// responses and later retrievals return identical strings.
	CreatedAt string `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Frame model.
func (f Frame) TableName() string {
	return "inbox"
}

// ObjectName returns the object-store key of the frame's blob.
func (f Frame) ObjectName() string {
	return f.FileName + ".jpg"
}

// BucketName returns the bucket the frame's blob lives in, derived from the
// request code's date prefix. Returns an empty string for malformed codes.
func (f Frame) BucketName() string {
	if len(f.RequestCode) < 8 {
		return ""
	}
	return f.RequestCode[:8]
}

// FrameUpload is one inbound multipart file of an upload request: the
// client-supplied name (only its ".jpg" suffix matters, the rest is
// discarded) and the raw image bytes.
type FrameUpload struct {
	Name    string
	Content []byte
}
