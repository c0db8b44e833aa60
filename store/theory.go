package store

// Category classifies a theory's subject area.
type Category string

const (
	CategoryCognitiveBiases     Category = "cognitive-biases"
	CategoryPersuasion          Category = "persuasion-principles"
	CategoryBehavioralEconomics Category = "behavioral-economics"
	CategoryUXPsychology        Category = "ux-psychology"
	CategoryEmotionalTriggers   Category = "emotional-triggers"
)

// TheoryMetadata carries authoring attributes of a theory. Only Tags
// participates in relevance scoring; the remaining fields are passed through
// to callers untouched.
type TheoryMetadata struct {
	Tags       []string `yaml:"tags" json:"tags"`
	Difficulty string   `yaml:"difficulty" json:"difficulty"`
	Relevance  int      `yaml:"relevance" json:"relevance"`
	ReadTime   int      `yaml:"readTime" json:"readTime"`
}

// Theory is the primary content unit of the knowledge hub.
type Theory struct {
	ID       string         `yaml:"id" json:"id"`
	Title    string         `yaml:"title" json:"title"`
	Summary  string         `yaml:"summary" json:"summary"`
	Category Category       `yaml:"category" json:"category"`
	Metadata TheoryMetadata `yaml:"metadata" json:"metadata"`
}
