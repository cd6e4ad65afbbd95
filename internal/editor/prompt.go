package editor

// promptKind says what a submitted prompt value is used for.
type promptKind int

const (
	promptOpen promptKind = iota
	promptSave
	promptActions
	promptBeepers
)

var promptLabels = map[promptKind]string{
	promptOpen:    "Open",
	promptSave:    "Save as",
	promptActions: "Actions limit",
	promptBeepers: "Initial beepers",
}

// prompt is a single-line text input.
type prompt struct {
	kind  promptKind
	input []rune
}

func newPrompt(kind promptKind, initial string) *prompt {
	return &prompt{kind: kind, input: []rune(initial)}
}

func (p *prompt) Label() string { return promptLabels[p.kind] }
func (p *prompt) Text() string  { return string(p.input) }

func (p *prompt) Insert(r rune) {
	p.input = append(p.input, r)
}

func (p *prompt) Backspace() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}
