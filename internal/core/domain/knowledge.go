package domain

// KnowledgeEntry is one snippet of the static ADGM guidance table. Loaded from
// the catalog at startup; never a retrieval index.
type KnowledgeEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type KnowledgeAnswer struct {
	Text    string           `json:"text"`
	Sources []KnowledgeEntry `json:"sources"`
}
