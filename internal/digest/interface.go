package digest

// Digester turns one transcript into an extractive digest.
type Digester interface {
	Digest(text string) (*Result, error)
}
