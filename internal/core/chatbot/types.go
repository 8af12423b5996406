package chatbot

import (
	"time"

	"github.com/google/uuid"
)

// Stage represents where the conversation currently is
type Stage string

const (
	StageGreeting          Stage = "greeting"
	StageQualifying        Stage = "qualifying"
	StageServiceDiscussion Stage = "service_discussion"
	StageContactCollection Stage = "contact_collection"
	StageClosing           Stage = "closing"
)

// Expecting marks which answer the next user turn should be interpreted as
type Expecting string

const (
	ExpectName    Expecting = "name"
	ExpectEmail   Expecting = "email"
	ExpectCompany Expecting = "company"
	ExpectGeneral Expecting = "general"
	ExpectNone    Expecting = "none"
)

// Intent is the classifier's label for a single user turn
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentWhatWeDo       Intent = "what_we_do"
	IntentChatbotRequest Intent = "chatbot_request"
	IntentNeedStatement  Intent = "need_statement"
	IntentClarification  Intent = "clarification"
	IntentQuestion       Intent = "question"
	IntentInterest       Intent = "interest"
	IntentNegative       Intent = "negative"
	IntentContactInfo    Intent = "contact_info"
	IntentBusinessInfo   Intent = "business_info"
	IntentGeneral        Intent = "general"
)

// Qualification is the lead temperature derived from discussed categories
type Qualification string

const (
	QualHot  Qualification = "Hot"
	QualWarm Qualification = "Warm"
	QualCold Qualification = "Cold"
)

// QualifyCount maps a combined category count to a tier
func QualifyCount(n int) Qualification {
	switch {
	case n >= 2:
		return QualHot
	case n >= 1:
		return QualWarm
	default:
		return QualCold
	}
}

// ContactInfo is filled incrementally; fields are first-write-wins
type ContactInfo struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Merge fills only the fields not already set on c
func (c ContactInfo) Merge(extra ContactInfo) ContactInfo {
	if c.Name == "" {
		c.Name = extra.Name
	}
	if c.Email == "" {
		c.Email = extra.Email
	}
	if c.Phone == "" {
		c.Phone = extra.Phone
	}
	if c.CompanyName == "" {
		c.CompanyName = extra.CompanyName
	}
	return c
}

func (c ContactInfo) HasAny() bool {
	return c.Name != "" || c.Email != "" || c.Phone != "" || c.CompanyName != ""
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn in the transcript, append-only
type Message struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(content string, sender Sender) Message {
	return Message{
		ID:        uuid.New(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// ConversationState holds everything gathered so far for one chat session
type ConversationState struct {
	Stage               Stage       `json:"stage"`
	ServicesDiscussed   []string    `json:"services_discussed"`
	PainPoints          []string    `json:"pain_points"`
	CallToActionOffered bool        `json:"call_to_action_offered"`
	Expecting           Expecting   `json:"expecting"`
	Contact             ContactInfo `json:"contact_info"`
}

func NewConversationState() *ConversationState {
	return &ConversationState{
		Stage:     StageGreeting,
		Expecting: ExpectNone,
	}
}

// Clone copies the state so the reducer can return a new one
func (s *ConversationState) Clone() *ConversationState {
	next := *s
	next.ServicesDiscussed = append([]string(nil), s.ServicesDiscussed...)
	next.PainPoints = append([]string(nil), s.PainPoints...)
	return &next
}

// Qualification recomputes the tier from the current category sets
func (s *ConversationState) Qualification() Qualification {
	return QualifyCount(len(s.ServicesDiscussed) + len(s.PainPoints))
}

// addToSet appends items not already present (sets stay append-only slices)
func addToSet(set []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range set {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			set = append(set, item)
		}
	}
	return set
}

// Summary is the write-once projection emitted when a session closes
type Summary struct {
	InteractionDate     time.Time     `json:"interaction_date"`
	ContactInfo         ContactInfo   `json:"contact_info"`
	ChatSummary         string        `json:"chat_summary"`
	ServicesDiscussed   []string      `json:"services_discussed"`
	KeyPainPoints       []string      `json:"key_pain_points"`
	CallToActionOffered bool          `json:"call_to_action_offered"`
	NextStep            string        `json:"next_step"`
	LeadQualification   Qualification `json:"lead_qualification"`
}
