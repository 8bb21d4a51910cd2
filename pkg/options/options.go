package options

// DefaultOptions matches the classic corrector: search up to two edits, weak tie-break.
var DefaultOptions = CorrectorOptions{
	MaxEditDistance:   2,
	DeterministicTies: false,
}

type CorrectorOptions struct {
	MaxEditDistance   int  // 0 disables the candidate search, only known words are returned
	DeterministicTies bool // among equal counts the lexicographically smallest candidate wins
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Build applies opts on top of DefaultOptions.
func Build(opts ...Options) CorrectorOptions {
	conf := DefaultOptions
	for _, o := range opts {
		if o != nil {
			o.Apply(&conf)
		}
	}
	if conf.MaxEditDistance < 0 {
		conf.MaxEditDistance = 0
	}
	return conf
}

func WithMaxEditDistance(maxEditDistance int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithDeterministicTies() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.DeterministicTies = true
	})
}
