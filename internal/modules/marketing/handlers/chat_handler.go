package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/repositories"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/services"
)

type ChatHandler struct {
	engine      *agent.Engine
	chatService *services.ChatService
	contexts    repositories.ContextStore
	llmService  *llm.Service // optional
}

func NewChatHandler(engine *agent.Engine, chatService *services.ChatService, contexts repositories.ContextStore, llmService *llm.Service) *ChatHandler {
	return &ChatHandler{
		engine:      engine,
		chatService: chatService,
		contexts:    contexts,
		llmService:  llmService,
	}
}

type chatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatMessageResponse struct {
	Response          string `json:"response"`
	TypingMs          int64  `json:"typing_ms"`
	Stage             string `json:"stage"`
	LeadQualification string `json:"lead_qualification"`
	AugmentUsed       bool   `json:"augment_used"`
}

// HandleMessage godoc
// @Summary Send a chat message
// @Description Run one user message through the conversation engine and get the bot reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body chatMessageRequest true "Session id and message text"
// @Success 200 {object} chatMessageResponse
// @Failure 400 {object} map[string]interface{}
// @Router /chat/message [post]
func (h *ChatHandler) HandleMessage(c *fiber.Ctx) error {
	var req chatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.SessionID == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id and message are required",
		})
	}

	res := h.engine.HandleMessage(c.UserContext(), req.SessionID, req.Message)

	return c.JSON(chatMessageResponse{
		Response:          res.Reply,
		TypingMs:          res.TypingDelay.Milliseconds(),
		Stage:             string(res.Stage),
		LeadQualification: string(res.Qualification),
		AugmentUsed:       res.AugmentUsed,
	})
}

type closeSessionRequest struct {
	SessionID string `json:"session_id"`
}

// CloseSession godoc
// @Summary Close a chat session
// @Description End the session; summaries are submitted when the conversation was long enough
// @Tags Chat
// @Accept json
// @Produce json
// @Param session body closeSessionRequest true "Session id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /chat/close [post]
func (h *ChatHandler) CloseSession(c *fiber.Ctx) error {
	var req closeSessionRequest
	if err := c.BodyParser(&req); err != nil || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	h.engine.CloseSession(req.SessionID)
	return c.JSON(fiber.Map{"status": "closed"})
}

type submitSummaryRequest struct {
	SessionID string          `json:"session_id"`
	Summary   chatbot.Summary `json:"summary"`
}

// SubmitSummary godoc
// @Summary Submit a conversation summary
// @Description Persist a summary built by the widget itself, for clients that close offline
// @Tags Chat
// @Accept json
// @Produce json
// @Param summary body submitSummaryRequest true "Session id and summary"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /chat/summary [post]
func (h *ChatHandler) SubmitSummary(c *fiber.Ctx) error {
	var req submitSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}
	if req.Summary.InteractionDate.IsZero() {
		req.Summary.InteractionDate = time.Now().UTC()
	}

	record, err := h.chatService.StoreSummary(req.SessionID, req.Summary)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      record.ID,
	})
}

// ListSummaries godoc
// @Summary List conversation summaries
// @Description Recent chat summaries, newest first
// @Tags Chat
// @Produce json
// @Param limit query int false "Max rows" default(50)
// @Success 200 {array} models.ChatSummary
// @Failure 500 {object} map[string]interface{}
// @Router /chat/summaries [get]
func (h *ChatHandler) ListSummaries(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	summaries, err := h.chatService.ListSummaries(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summaries)
}

type saveContextRequest struct {
	SessionID string          `json:"session_id"`
	Payload   json.RawMessage `json:"payload"`
}

// SaveContext godoc
// @Summary Save widget session context
// @Description Store the widget's session context server-side so a revisit can resume
// @Tags Chat
// @Accept json
// @Produce json
// @Param context body saveContextRequest true "Session id and opaque payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /chat/context [post]
func (h *ChatHandler) SaveContext(c *fiber.Ctx) error {
	var req saveContextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.SessionID == "" || len(req.Payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id and payload are required",
		})
	}

	if err := h.contexts.Save(contextOf(c), req.SessionID, req.Payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

// GetContext godoc
// @Summary Fetch widget session context
// @Description Retrieve a previously saved session context
// @Tags Chat
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/context/{sessionId} [get]
func (h *ChatHandler) GetContext(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Session ID is required",
		})
	}

	payload, err := h.contexts.Get(contextOf(c), sessionID)
	if errors.Is(err, repositories.ErrContextNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session context not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"payload":    json.RawMessage(payload),
	})
}

type llmResponseRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
}

type llmResponseBody struct {
	Response         string   `json:"response"`
	Confidence       float64  `json:"confidence"`
	Reasoning        string   `json:"reasoning,omitempty"`
	SuggestedActions []string `json:"suggestedActions"`
	FallbackUsed     bool     `json:"fallbackUsed"`
	Provider         string   `json:"provider"`
}

const llmFallbackReply = "I'd love to help with that. The best next step is a quick discovery call with our team — want me to set one up?"

// LLMResponse godoc
// @Summary Direct LLM response
// @Description Generate a free-form LLM answer outside the rule engine; provider failures degrade to a canned fallback
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body llmResponseRequest true "Prompt and optional context"
// @Success 200 {object} llmResponseBody
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /chat/llm-response [post]
func (h *ChatHandler) LLMResponse(c *fiber.Ctx) error {
	if h.llmService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "LLM provider is not configured",
		})
	}

	var req llmResponseRequest
	if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "prompt is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	systemPrompt := "You are a helpful assistant for a digital agency that offers AI automation, digital marketing, custom software and systems integration."
	if req.Context != "" {
		systemPrompt += "\n\nConversation context:\n" + req.Context
	}

	reply, err := h.llmService.GenerateResponse(ctx, systemPrompt, req.Prompt)
	if err != nil || reply == "" {
		return c.JSON(llmResponseBody{
			Response:         llmFallbackReply,
			Confidence:       0.3,
			Reasoning:        "provider unavailable, canned fallback served",
			SuggestedActions: []string{"book_discovery_call"},
			FallbackUsed:     true,
			Provider:         h.llmService.GetProviderName(),
		})
	}

	return c.JSON(llmResponseBody{
		Response:         reply,
		Confidence:       0.9,
		SuggestedActions: []string{"continue_conversation", "book_discovery_call"},
		Provider:         h.llmService.GetProviderName(),
	})
}

func contextOf(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
