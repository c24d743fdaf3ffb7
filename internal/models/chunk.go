package models

// Chunk is a bounded contiguous slice of a document's extracted text,
// sized for embedding and retrieval. Chunks are immutable once produced.
type Chunk struct {
	Content    string `json:"content"`
	SourceFile string `json:"source_file"`
}

// IndexEntry is a single vector record upserted into the external vector
// index. The index owns the entry after upsert; it is only read back
// through similarity queries.
type IndexEntry struct {
	ID      string    `json:"id"`
	Vector  []float32 `json:"vector"`
	Content string    `json:"content"`
	File    string    `json:"file"`
}

// MatchMetadata carries the payload stored alongside an indexed vector.
// Content may legitimately be absent and callers must tolerate that.
type MatchMetadata struct {
	Content string `json:"content,omitempty"`
	File    string `json:"file,omitempty"`
}

// RetrievedMatch is one similarity-query result, ordered by descending score.
type RetrievedMatch struct {
	Score    float64       `json:"score"`
	Metadata MatchMetadata `json:"metadata"`
}

// IngestResult reports a completed ingestion run for one uploaded file.
type IngestResult struct {
	Filename string `json:"filename"`
	Chunks   int    `json:"chunks"`
}
