package blog

// Document is the typed view of a generated blog post.
type Document struct {
	Title      string    `json:"title" bson:"title"`
	Sections   []Section `json:"sections" bson:"sections"`
	Conclusion string    `json:"conclusion" bson:"conclusion"`
}

// Section is one headed block of a post. Subheadings are free-form and are
// stored as the model produced them.
type Section struct {
	Heading     string           `json:"heading" bson:"heading"`
	Content     string           `json:"content" bson:"content"`
	Subheadings []map[string]any `json:"subheadings" bson:"subheadings"`
}

// Candidate is a decoded JSON object from the model that passed validation
// and is about to be persisted verbatim.
type Candidate map[string]any
