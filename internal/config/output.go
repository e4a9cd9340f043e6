package config

// OutputConfig selects what is printed about the final position.
type OutputConfig struct {
	// PrintFEN prints the FEN of the final position
	PrintFEN bool

	// PrintStatus prints side to move, check state and result
	PrintStatus bool

	// ListLegal prints every legal move, one per line
	ListLegal bool

	// Board prints a text diagram of the final position
	Board bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		PrintFEN:    true,
		PrintStatus: true,
	}
}
