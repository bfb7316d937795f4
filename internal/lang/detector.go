package lang

import (
	"regexp"
	"sync"
)

// Language codes the detector can produce.
const (
	Portuguese = "pt"
	English    = "en"
)

var (
	// Diacritics that occur in Portuguese but not in English text.
	ptAccents = regexp.MustCompile(`[áàâãéêíóôõúç]`)

	// Common Portuguese pronouns, greetings and verbs. Word-boundary,
	// case-insensitive. A heuristic, not NLP: binary outcome only.
	ptLexicon = regexp.MustCompile(`(?i)\b(eu|você|voce|meu|minha|sim|não|nao|olá|ola|oi|bom dia|boa tarde|boa noite|obrigado|obrigada|quero|pode|como|quando|onde|por que|porque|qual|vai|ser|está|esta|tudo|bem|amor|trabalho|dinheiro|futuro)\b`)
)

// Detect classifies text as Portuguese or English from lexical signals.
func Detect(text string) string {
	if ptAccents.MatchString(text) || ptLexicon.MatchString(text) {
		return Portuguese
	}
	return English
}

// Detector memoizes one language assignment per user. The first message
// decides; later messages never re-detect, so a conversation stays in one
// language even if the user mixes.
type Detector struct {
	mu       sync.Mutex
	assigned map[string]string
}

func NewDetector() *Detector {
	return &Detector{assigned: make(map[string]string)}
}

// Resolve returns the cached assignment for user, or detects from text,
// caches and returns it.
func (d *Detector) Resolve(user, text string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if code, ok := d.assigned[user]; ok {
		return code
	}
	code := Detect(text)
	d.assigned[user] = code
	return code
}
