package cssom

// Sink receives serialized style rules. Every call appends one blob of rule
// text, e.g. ".s1x{color:#ff0000ff;}", to the presentation layer.
// Implementations must not modify or re-order blobs which have been appended
// successfully. An error signals that the blob has not been appended.
type Sink interface {
	AppendRuleText(blob string) error
}

// SinkFunc adapts an ordinary function to interface Sink.
type SinkFunc func(blob string) error

// AppendRuleText calls f(blob).
func (f SinkFunc) AppendRuleText(blob string) error {
	return f(blob)
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// clients inspecting them, we introduce an interface for CSS stylesheets
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}
