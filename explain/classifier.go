/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package explain

import (
	"fmt"
	"strings"

	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/code"
	"go.uber.org/zap"
)

// Classifier holds an immutable recognizer table. It is safe for concurrent
// use and meant to be built once and shared.
type Classifier struct {
	rules  []rule
	logger *zap.Logger
}

// Option configures a Classifier at build time.
type Option func(*Classifier)

// WithLogger sets the logger used for match and defect reporting.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a Classifier with the default recognizer table.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		rules:  defaultRules(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = New()

// Classify classifies raw with the default Classifier.
func Classify(raw string) (Record, bool, error) {
	return defaultClassifier.Classify(raw)
}

// Classify trims raw and runs it through the recognizer table.
//
// It returns:
//   - (rec, true, nil) when a recognizer accepted and extracted the message;
//   - (nil, false, nil) when no recognizer accepted it;
//   - (nil, false, err) with code.MalformedInput when a recognizer accepted
//     the message but could not extract its fields.
func (c *Classifier) Classify(raw string) (Record, bool, error) {
	msg := strings.TrimSpace(raw)
	for _, r := range c.rules {
		if !r.dispatch.match(msg) {
			continue
		}
		rec, ok := r.extract(msg)
		if !ok {
			c.logger.Error("recognizer accepted message but extraction failed",
				zap.Stringer("kind", r.kind),
				zap.Stringer("dispatch", r.dispatch),
				zap.String("message", msg),
			)
			return nil, false, pyerr.E(code.MalformedInput, "message accepted by "+r.kind.String()+" recognizer but fields could not be extracted",
				pyerr.WithKindOption(r.kind),
				pyerr.WithDetailOption("message", msg),
				pyerr.WithDetailOption("dispatch", r.dispatch.String()),
			)
		}
		c.logger.Debug("message classified", zap.Stringer("kind", r.kind))
		return rec, true, nil
	}
	c.logger.Debug("no recognizer matched", zap.Int("rules", len(c.rules)))
	return nil, false, nil
}

// Explain produces a textual trace of how raw was classified: every rule
// tried up to the deciding one, then the outcome.
//
// Example output:
//
//	message="NameError: name 'x' is not defined"
//	rule 1 booleanTypo: pattern "^NameError: name '(false|true)'" -> miss
//	rule 2 name: prefix "NameError:" -> hit
//	result: kind=name missingReference="x"
func (c *Classifier) Explain(raw string) string {
	msg := strings.TrimSpace(raw)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "message=%q\n", msg)

	for i, r := range c.rules {
		if !r.dispatch.match(msg) {
			_, _ = fmt.Fprintf(&b, "rule %d %s: %s -> miss\n", i+1, r.kind, r.dispatch)
			continue
		}
		_, _ = fmt.Fprintf(&b, "rule %d %s: %s -> hit\n", i+1, r.kind, r.dispatch)

		rec, ok := r.extract(msg)
		if !ok {
			_, _ = fmt.Fprintf(&b, "result: %s kind=%s", code.MalformedInput, r.kind)
			return b.String()
		}
		_, _ = fmt.Fprintf(&b, "result: kind=%s", rec.Kind())
		for _, f := range rec.Fields() {
			_, _ = fmt.Fprintf(&b, " %s=%q", f.Name, f.Value)
		}
		return b.String()
	}

	b.WriteString("result: no match")
	return b.String()
}
