package models

// UploadRequest is the JSON body of a document upload call to the retrieval
// service. Exactly one of URL or Content must be set.
type UploadRequest struct {
	Mode IndexingMode `json:"mode"`
	Name string       `json:"name"`

	// URL ingests the document from a remote location.
	URL string `json:"url,omitempty"`

	// Content ingests raw text directly.
	Content string `json:"content,omitempty"`
}

// UploadResponse is the subset of the upload reply we keep: the remote
// document id and the reported indexing status.
type UploadResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// RetrievalRequest is the JSON body of a retrieval call.
type RetrievalRequest struct {
	Query string `json:"query"`

	// Filters optionally narrows retrieval to a document scope.
	Filters *RetrievalFilters `json:"filters,omitempty"`
}

// RetrievalFilters narrows a retrieval call to a named scope.
type RetrievalFilters struct {
	Scope string `json:"scope"`
}

// ScoredChunk is one ranked span of text returned by the retrieval service.
type ScoredChunk struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// RetrievalResponse is the retrieval reply payload. An empty ScoredChunks
// slice is a valid outcome, distinct from a transport failure.
type RetrievalResponse struct {
	ScoredChunks []ScoredChunk `json:"scored_chunks"`
}
