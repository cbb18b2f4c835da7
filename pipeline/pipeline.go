package pipeline

import (
	"strings"

	"github.com/npillmayer/pseudoloc/message"
	"github.com/npillmayer/pseudoloc/method"
	"github.com/npillmayer/pseudoloc/width"
)

// Pipeline is an ordered chain of pseudolocalization methods.
// Pipelines are immutable and safe for concurrent use.
type Pipeline struct {
	spec    string
	methods []method.Method
}

type config struct {
	widthContext *width.Context
}

// Option configures the methods of a pipeline.
type Option func(*config)

// WithWidthContext sets the context for measuring the display width of text.
// It is used by the expander method. The default is width.LatinContext.
func WithWidthContext(ctx *width.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.widthContext = ctx
		}
	}
}

// Build creates a pipeline from a method specification, i.e. a method name or
// alias, or a comma-separated list thereof. Build returns a *ConfigurationError
// if the specification names a method which is not registered.
func Build(spec string, opts ...Option) (*Pipeline, error) {
	conf := &config{widthContext: width.LatinContext}
	for _, opt := range opts {
		opt(conf)
	}
	p := &Pipeline{spec: spec}
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &ConfigurationError{Name: token, Spec: spec}
		}
		for _, name := range expand(token) {
			create, ok := lookup(name)
			if !ok {
				CT().Errorf("pipeline: unknown method %q", name)
				return nil, &ConfigurationError{Name: name, Spec: spec}
			}
			p.methods = append(p.methods, create(conf))
		}
	}
	CT().Infof("pipeline %q built with methods %v", spec, p.Methods())
	return p, nil
}

// MustBuild is like Build, but panics on configuration errors.
// It simplifies initialization of global pipelines.
func MustBuild(spec string, opts ...Option) *Pipeline {
	p, err := Build(spec, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Spec returns the method specification the pipeline has been built from.
func (p *Pipeline) Spec() string {
	return p.spec
}

// Methods returns the names of the pipeline's methods, in order of application.
func (p *Pipeline) Methods() []string {
	names := make([]string, len(p.methods))
	for i, m := range p.methods {
		names[i] = m.Name()
	}
	return names
}

// Run pseudolocalizes a string, treated as a single translatable fragment.
func (p *Pipeline) Run(input string) (string, error) {
	return p.RunMessage(message.FromString(input))
}

// RunMessage threads a message through all methods of the pipeline and
// returns the concatenated text of the result. If a method fails, its error
// is returned unmodified, together with an empty string.
func (p *Pipeline) RunMessage(msg message.Message) (string, error) {
	var err error
	for _, m := range p.methods {
		if msg, err = m.Apply(msg); err != nil {
			CT().Errorf("pipeline %q: %v", p.spec, err)
			return "", err
		}
		CT().Debugf("pipeline %q: %s -> %s", p.spec, m.Name(), msg.Dump())
	}
	return msg.String(), nil
}
