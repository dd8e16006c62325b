package writer

// Writer renders split lines into one output file format.
type Writer interface {
	// Ext is the file extension, with the dot.
	Ext() string
	Write(path, title string, lines []string) error
}
