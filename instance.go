package passmeter

import "sync"

// Instance is a stateful convenience wrapper over the pure estimator. It
// caches reference data across evaluations and allows re-evaluating after
// changing the password, the user inputs, or the translator. All mutating
// operations are serialized by a single mutex; Estimate itself runs
// without shared mutable state.
type Instance struct {
	mu         sync.Mutex
	opts       *Options
	estimator  *Estimator
	password   string
	hasResult  bool
	lastResult *Result
}

// NewInstance builds an instance with persistent reference data.
func NewInstance(opts *Options) (*Instance, error) {
	if opts == nil {
		opts = &Options{}
	}
	estimator, err := New(opts)
	if err != nil {
		return nil, err
	}
	return &Instance{opts: estimator.opts, estimator: estimator}, nil
}

// SetPassword stores and evaluates a password. Unlike Estimate, the
// instance refuses oversized input instead of truncating it.
func (i *Instance) SetPassword(password string) (*Result, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len([]rune(password)) > i.opts.MaxLength {
		return nil, ErrLengthExceeded
	}
	result, err := i.estimator.EstimateStrict(password)
	if err != nil {
		return nil, err
	}
	i.password = password
	i.lastResult = result
	i.hasResult = true
	return result, nil
}

// Result returns the last evaluation, or nil when no password is set.
func (i *Instance) Result() *Result {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.lastResult
}

// Password returns the currently stored password.
func (i *Instance) Password() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.password
}

// UpdateUserInputs replaces the ad-hoc user dictionary and re-evaluates
// the current password, if any.
func (i *Instance) UpdateUserInputs(userInputs []string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	opts := *i.opts
	opts.UserInputs = userInputs
	estimator, err := New(&opts)
	if err != nil {
		return err
	}
	i.estimator = estimator
	i.opts = estimator.opts
	return i.reevaluate()
}

// SetTranslator swaps the feedback translator and refreshes the feedback
// of the current result.
func (i *Instance) SetTranslator(translate TranslateFunc) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if translate == nil {
		translate = func(msgID string) string { return msgID }
	}
	i.estimator.translate = translate
	return i.reevaluate()
}

func (i *Instance) reevaluate() error {
	if !i.hasResult {
		return nil
	}
	result, err := i.estimator.EstimateStrict(i.password)
	if err != nil {
		return err
	}
	i.lastResult = result
	return nil
}
