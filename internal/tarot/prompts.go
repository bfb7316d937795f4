package tarot

import "github.com/mysticline/tarot-ai-bridge/internal/lang"

const PersonaPrompt = `You are an experienced tarot reader. You interpret the cards on the
table with warmth and honesty, weaving their traditional meanings into the
querent's question. Keep answers grounded in the spread listed below; do not
invent cards that are not on the table. Always answer in the language the
querent writes in.`

var greetings = map[string]string{
	lang.Portuguese: "🔮 Olá! Sou seu guia de tarô. Envie /shuffle para tirar suas cartas, /last para rever a última tiragem, /history para ver suas leituras — ou faça uma pergunta.",
	lang.English:    "🔮 Welcome! I am your tarot guide. Send /shuffle to draw your cards, /last to see your latest spread, /history for past readings — or just ask a question.",
}

var noCardsYet = map[string]string{
	lang.Portuguese: "Você ainda não tirou cartas. Envie /shuffle para começar.",
	lang.English:    "You haven't drawn any cards yet. Send /shuffle to begin.",
}

var noHistoryYet = map[string]string{
	lang.Portuguese: "Nenhuma leitura registrada ainda.",
	lang.English:    "No readings recorded yet.",
}

var apologies = map[string]string{
	lang.Portuguese: "Desculpe, não consegui consultar as cartas agora. Tente novamente em instantes. 🙏",
	lang.English:    "Sorry, I couldn't consult the cards just now. Please try again in a moment. 🙏",
}

func pick(m map[string]string, code string) string {
	if s, ok := m[code]; ok {
		return s
	}
	return m[lang.English]
}
