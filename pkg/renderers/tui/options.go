package tui

// Option configures a Filler.
type Option func(*Filler)

// WithPromptDriver overrides the survey-backed driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithSectionPrefix sets the text printed before a nested form's heading.
func WithSectionPrefix(prefix string) Option {
	return func(f *Filler) {
		f.sectionPrefix = prefix
	}
}
