package domain

// Config stores persisted CLI defaults.
type Config struct {
	DefaultInput  string `json:"input,omitempty"`
	DefaultOutput string `json:"output,omitempty"`
	Source        string `json:"source,omitempty"`
}

// IsEmpty reports whether no default is set.
func (c Config) IsEmpty() bool {
	return c.DefaultInput == "" && c.DefaultOutput == "" && c.Source == ""
}
