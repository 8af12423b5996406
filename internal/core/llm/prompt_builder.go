package llm

import (
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
)

// BuildAugmentPrompt builds the system prompt for enriching a chatbot
// reply with conversation context.
func BuildAugmentPrompt(st *chatbot.ConversationState, recent []chatbot.Message) string {
	var sb strings.Builder

	sb.WriteString("You are a friendly sales assistant for a digital agency offering AI automation, ")
	sb.WriteString("digital marketing, custom software, and systems integration.\n\n")

	if st != nil {
		sb.WriteString(fmt.Sprintf("Conversation stage: %s\n", st.Stage))
		if len(st.ServicesDiscussed) > 0 {
			sb.WriteString("Services discussed so far: " + strings.Join(st.ServicesDiscussed, ", ") + "\n")
		}
		if len(st.PainPoints) > 0 {
			sb.WriteString("Pain points raised: " + strings.Join(st.PainPoints, ", ") + "\n")
		}
		if st.Contact.Name != "" {
			sb.WriteString("Visitor name: " + st.Contact.Name + "\n")
		}
	}

	if len(recent) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, m := range recent {
			sb.WriteString(fmt.Sprintf("%s: %s\n", m.Sender, m.Content))
		}
	}

	sb.WriteString("\nInstructions:\n")
	sb.WriteString("- Answer in two to four sentences, warm and professional\n")
	sb.WriteString("- Never invent pricing, clients, or guarantees\n")
	sb.WriteString("- If unsure, suggest booking a discovery call\n")

	return sb.String()
}

// BuildBlogPrompt builds the content-generation prompt for a blog draft.
func BuildBlogPrompt(topic string) string {
	var sb strings.Builder
	sb.WriteString("Write a blog post for a digital agency's marketing site.\n")
	sb.WriteString(fmt.Sprintf("Topic: %s\n\n", topic))
	sb.WriteString("Requirements:\n")
	sb.WriteString("- 600-900 words, markdown, H2 section headings\n")
	sb.WriteString("- Practical and concrete, no fluff, no invented statistics\n")
	sb.WriteString("- End with a short call to action inviting a discovery call\n")
	return sb.String()
}

// BuildUseCasePrompt builds the content-generation prompt for a use-case page.
func BuildUseCasePrompt(topic string) string {
	var sb strings.Builder
	sb.WriteString("Write a use-case page for a digital agency's marketing site.\n")
	sb.WriteString(fmt.Sprintf("Use case: %s\n\n", topic))
	sb.WriteString("Structure:\n")
	sb.WriteString("- The problem (2-3 paragraphs)\n")
	sb.WriteString("- How automation solves it\n")
	sb.WriteString("- What a typical rollout looks like\n")
	sb.WriteString("- Markdown, under 700 words, no invented client names\n")
	return sb.String()
}
