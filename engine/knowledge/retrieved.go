package knowledge

// RetrievedContext is a knowledge passage matched by a similarity search.
type RetrievedContext struct {
	ID    string
	Text  string
	Score float64
}
