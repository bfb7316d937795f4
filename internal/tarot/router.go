package tarot

// ActionKind identifies what a routed message should do.
type ActionKind int

const (
	ActionShuffle ActionKind = iota
	ActionShowLast
	ActionShowHistory
	ActionAiFallback
)

type Action struct {
	Kind ActionKind
	Text string // original text, set for ActionAiFallback
}

// commands is a closed dispatch table. New commands are added as new
// exact-match entries, never pattern rules, so natural-language input
// can't shadow them.
var commands = map[string]ActionKind{
	"/shuffle": ActionShuffle,
	"/last":    ActionShowLast,
	"/history": ActionShowHistory,
}

// Route maps normalized message text to an action. Anything that is not
// an exact command match falls through to the AI.
func Route(text string) Action {
	if kind, ok := commands[text]; ok {
		return Action{Kind: kind}
	}
	return Action{Kind: ActionAiFallback, Text: text}
}
