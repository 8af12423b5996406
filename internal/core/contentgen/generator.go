package contentgen

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/repositories"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/utils"
)

// Default topic pools, rotated round-robin. Generation skips a topic when
// a recent post already covers it.
var defaultBlogTopics = []string{
	"How AI automation reduces manual data entry for small teams",
	"Choosing between off-the-shelf and custom software",
	"Lead generation funnels that actually convert",
	"Integrating your CRM with the rest of your stack",
	"When a chatbot helps your website and when it hurts",
	"Marketing automation mistakes that waste your budget",
	"What a systems integration project really costs",
	"Measuring ROI on digital marketing campaigns",
}

var defaultUseCaseTopics = []string{
	"Automating invoice processing for a logistics company",
	"Lead qualification chatbot for a B2B services firm",
	"Connecting an online store to a warehouse system",
	"Automated reporting for a marketing department",
	"Customer onboarding workflow for a SaaS startup",
	"Appointment scheduling automation for a clinic",
}

// Generator produces draft blog posts and use-case pages on a schedule.
type Generator struct {
	llm      *llm.Service
	blogs    repositories.BlogRepo
	useCases repositories.UseCaseRepo

	mu            sync.Mutex
	blogTopics    []string
	useCaseTopics []string
	blogIdx       int
	useCaseIdx    int

	timeout time.Duration
}

func NewGenerator(llmService *llm.Service, blogs repositories.BlogRepo, useCases repositories.UseCaseRepo) *Generator {
	return &Generator{
		llm:           llmService,
		blogs:         blogs,
		useCases:      useCases,
		blogTopics:    defaultBlogTopics,
		useCaseTopics: defaultUseCaseTopics,
		timeout:       2 * time.Minute,
	}
}

// GenerateBlogPost picks the next blog topic not already covered by a
// recent post and writes a draft for it.
func (g *Generator) GenerateBlogPost(ctx context.Context) (*models.BlogPost, error) {
	recent, err := g.blogs.GetRecent(10)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent posts: %w", err)
	}
	recentTitles := make([]string, 0, len(recent))
	for _, p := range recent {
		recentTitles = append(recentTitles, p.Title)
	}

	topic, ok := g.nextTopic(&g.blogIdx, g.blogTopics, recentTitles)
	if !ok {
		log.Println("📝 Blog generation skipped: all topics covered recently")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := g.llm.GenerateResponse(ctx, llm.BuildBlogPrompt(topic), topic)
	if err != nil {
		return nil, fmt.Errorf("blog generation failed for %q: %w", topic, err)
	}

	title, body := splitTitle(content, topic)
	post := &models.BlogPost{
		Title:   title,
		Slug:    slugWithDate(title),
		Excerpt: excerptOf(body),
		Content: body,
		Tags:    datatypes.JSON(`["generated"]`),
		Status:  models.ContentStatusDraft,
		Source:  models.ContentSourceGenerated,
	}
	if err := g.blogs.Create(post); err != nil {
		return nil, fmt.Errorf("failed to save generated post: %w", err)
	}

	log.Printf("📝 Generated blog draft: %s", post.Title)
	return post, nil
}

// GenerateUseCase does the same for use-case pages.
func (g *Generator) GenerateUseCase(ctx context.Context) (*models.UseCase, error) {
	recent, err := g.useCases.GetRecent(10)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent use cases: %w", err)
	}
	recentTitles := make([]string, 0, len(recent))
	for _, uc := range recent {
		recentTitles = append(recentTitles, uc.Title)
	}

	topic, ok := g.nextTopic(&g.useCaseIdx, g.useCaseTopics, recentTitles)
	if !ok {
		log.Println("📝 Use-case generation skipped: all topics covered recently")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := g.llm.GenerateResponse(ctx, llm.BuildUseCasePrompt(topic), topic)
	if err != nil {
		return nil, fmt.Errorf("use-case generation failed for %q: %w", topic, err)
	}

	title, body := splitTitle(content, topic)
	uc := &models.UseCase{
		Title:   title,
		Slug:    slugWithDate(title),
		Content: body,
		Status:  models.ContentStatusDraft,
		Source:  models.ContentSourceGenerated,
	}
	if err := g.useCases.Create(uc); err != nil {
		return nil, fmt.Errorf("failed to save generated use case: %w", err)
	}

	log.Printf("📝 Generated use-case draft: %s", uc.Title)
	return uc, nil
}

// nextTopic walks the pool round-robin starting at *idx, skipping topics
// similar to a recent title. Returns false when the whole pool is covered.
func (g *Generator) nextTopic(idx *int, pool []string, recentTitles []string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < len(pool); i++ {
		candidate := pool[(*idx+i)%len(pool)]
		if coveredRecently(candidate, recentTitles) {
			continue
		}
		*idx = (*idx + i + 1) % len(pool)
		return candidate, true
	}
	return "", false
}

func coveredRecently(topic string, recentTitles []string) bool {
	for _, t := range recentTitles {
		if SimilarTitles(topic, t) {
			return true
		}
	}
	return false
}

// splitTitle pulls a markdown H1 off the top of generated content; falls
// back to the topic when the model didn't emit one.
func splitTitle(content, fallback string) (title, body string) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "# ") {
		if nl := strings.Index(trimmed, "\n"); nl > 0 {
			title = strings.TrimSpace(strings.TrimPrefix(trimmed[:nl], "# "))
			body = strings.TrimSpace(trimmed[nl:])
			if title != "" && body != "" {
				return title, body
			}
		}
	}
	return fallback, trimmed
}

// slugWithDate appends the date so regenerated topics never collide on
// the unique slug index.
func slugWithDate(title string) string {
	return utils.Slugify(title) + "-" + time.Now().Format("2006-01-02")
}

func excerptOf(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > 200 {
			return line[:200] + "…"
		}
		return line
	}
	return ""
}
