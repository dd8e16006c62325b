package splitter

type implSplitter struct {
	opts   Options
	finder *finder
}

// New validates opts and compiles vocab into a ready Splitter.
func New(opts Options, vocab Vocabulary) (Splitter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &implSplitter{
		opts:   opts,
		finder: newFinder(vocab),
	}, nil
}
