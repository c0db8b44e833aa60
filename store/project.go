package store

// ProjectReference points at a past client project. Category is free text
// assigned by the project authors, not the theory category enum.
type ProjectReference struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
	Status      string `yaml:"status" json:"status"`
}
