package models

// FrameInfo is the per-file entry of upload and retrieval responses.
type FrameInfo struct {
	FileName  string `json:"file_name"`
	CreatedAt string `json:"created_at"`
}

// BatchResponse maps a request code to the frames of its batch. Upload
// responses contain exactly one key (the freshly derived code); retrieval
// responses echo the requested code.
type BatchResponse map[string][]FrameInfo

// RegisterResponse is the body returned after successful registration.
type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// LoginResponse is the body returned after successful login. The token is
// the freshly issued (or rotated) opaque bearer value.
type LoginResponse struct {
	AuthToken string `json:"auth_token"`
}

// MessageResponse is a generic human-readable confirmation body, used by the
// home page and batch deletion.
type MessageResponse struct {
	Message string `json:"message"`
}
