package chatbot

import (
	"fmt"
	"strings"
	"time"
)

// BuildSummary projects the final conversation state into the write-once
// summary shape. Qualification is recomputed here, never stored along
// the way.
func BuildSummary(st *ConversationState, messages []Message, now time.Time) Summary {
	if st == nil {
		st = NewConversationState()
	}

	return Summary{
		InteractionDate:     now,
		ContactInfo:         st.Contact,
		ChatSummary:         summaryText(st, messages),
		ServicesDiscussed:   append([]string(nil), st.ServicesDiscussed...),
		KeyPainPoints:       append([]string(nil), st.PainPoints...),
		CallToActionOffered: st.CallToActionOffered,
		NextStep:            nextStep(st),
		LeadQualification:   st.Qualification(),
	}
}

func summaryText(st *ConversationState, messages []Message) string {
	var parts []string

	userTurns := 0
	for _, m := range messages {
		if m.Sender == SenderUser {
			userTurns++
		}
	}
	parts = append(parts, fmt.Sprintf("Visitor exchanged %d messages (%d from visitor).", len(messages), userTurns))

	if len(st.ServicesDiscussed) > 0 {
		parts = append(parts, "Services discussed: "+strings.Join(st.ServicesDiscussed, ", ")+".")
	}
	if len(st.PainPoints) > 0 {
		parts = append(parts, "Pain points raised: "+strings.Join(st.PainPoints, ", ")+".")
	}
	if st.Contact.HasAny() {
		parts = append(parts, "Contact details were shared.")
	} else {
		parts = append(parts, "No contact details were shared.")
	}
	parts = append(parts, fmt.Sprintf("Conversation ended in stage %q.", st.Stage))

	return strings.Join(parts, " ")
}

func nextStep(st *ConversationState) string {
	switch {
	case st.Contact.Email != "" || st.Contact.Phone != "":
		return "Schedule discovery call"
	case st.CallToActionOffered:
		return "Follow up on pending contact request"
	case len(st.ServicesDiscussed)+len(st.PainPoints) > 0:
		return "Nurture with relevant content"
	default:
		return "No action required"
	}
}
