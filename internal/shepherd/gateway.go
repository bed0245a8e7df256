// Package shepherd is the gateway to the generative AI service: pastoral
// guidance, sermon summaries and children's stories. Callers always get a
// usable answer; failures turn into fixed fallback replies.
package shepherd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/matheus3301/flock/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Fallback replies.
const (
	GuidanceEmpty  = "I am meditating on your request. Please try again in a moment."
	GuidanceFailed = "The Shepherd is currently unavailable. Please check your connection."
	SummaryEmpty   = "Could not generate summary."
	SummaryFailed  = "Unable to summarize at this time."
)

const shepherdPersona = `You are a "Digital Shepherd", a compassionate, biblical AI assistant for a church community in Zimbabwe.
Your goal is to provide spiritual comfort, relevant Bible verses, and practical wisdom.
Use the King James Version or New King James Version.
Be culturally aware of Zimbabwean context (respectful, community-focused).
If the query is about mental health crisis, gently suggest professional help alongside prayer.`

var storySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {Type: genai.TypeString},
		"pages": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"text":     {Type: genai.TypeString},
					"imageUrl": {Type: genai.TypeString, Description: "A detailed description of the scene for an image generator (placeholder)"},
				},
			},
		},
	},
}

// Operation names used in logs and metrics.
const (
	OpGuidance  = "guidance"
	OpSummarize = "summarize"
	OpStory     = "story"
)

var errThrottled = errors.New("shepherd: rate limited")

// StoryPage is one page of a children's story.
type StoryPage struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

// KidsStory is a generated children's story. It is never stored.
type KidsStory struct {
	Title string      `json:"title"`
	Pages []StoryPage `json:"pages"`
}

// Gateway wraps a Completer with prompts, rate limiting and fallbacks.
type Gateway struct {
	completer Completer
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewLimiter allows perMinute calls per minute with the given burst. A
// non-positive rate disables limiting.
func NewLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// NewGateway creates a gateway. A nil limiter means no limit.
func NewGateway(c Completer, limiter *rate.Limiter, logger *zap.Logger) *Gateway {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{completer: c, limiter: limiter, logger: logger}
}

// Available reports whether the gateway has a credential to reach the
// service.
func (g *Gateway) Available() bool {
	_, none := g.completer.(unavailable)
	return !none
}

// complete runs one call and records its outcome. The returned text is only
// meaningful when err is nil.
func (g *Gateway) complete(ctx context.Context, op string, req Request) (string, error) {
	if !g.limiter.Allow() {
		metrics.RecordAIRequest(op, metrics.AIThrottled, 0)
		g.logger.Warn("shepherd request throttled", zap.String("operation", op))
		return "", errThrottled
	}

	start := time.Now()
	text, err := g.completer.Complete(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordAIRequest(op, metrics.AIError, elapsed)
		g.logger.Warn("shepherd request failed", zap.String("operation", op), zap.Duration("elapsed", elapsed), zap.Error(err))
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordAIRequest(op, metrics.AIEmpty, elapsed)
		return "", nil
	}
	metrics.RecordAIRequest(op, metrics.AIOK, elapsed)
	return text, nil
}

// GetGuidance answers a question in the Digital Shepherd persona.
func (g *Gateway) GetGuidance(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		metrics.RecordAIRequest(OpGuidance, metrics.AIRejected, 0)
		return GuidanceEmpty
	}
	reply, err := g.complete(ctx, OpGuidance, Request{System: shepherdPersona, Prompt: text})
	if err != nil {
		return GuidanceFailed
	}
	if reply == "" {
		return GuidanceEmpty
	}
	return reply
}

// SummarizeTranscript condenses a sermon transcript into takeaways.
func (g *Gateway) SummarizeTranscript(ctx context.Context, transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		metrics.RecordAIRequest(OpSummarize, metrics.AIRejected, 0)
		return SummaryEmpty
	}
	prompt := "Summarize this sermon transcript into 3 key takeaways and a practical application point:\n\n" + transcript
	reply, err := g.complete(ctx, OpSummarize, Request{Prompt: prompt})
	if err != nil {
		return SummaryFailed
	}
	if reply == "" {
		return SummaryEmpty
	}
	return reply
}

// GenerateStory writes a short children's story about topic. It returns nil
// when the service fails or the reply cannot be parsed.
func (g *Gateway) GenerateStory(ctx context.Context, topic string) *KidsStory {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		metrics.RecordAIRequest(OpStory, metrics.AIRejected, 0)
		return nil
	}
	prompt := fmt.Sprintf("Write a short 3-page children's story about: %s.\n"+
		"The story must be biblical, moral, and safe for children.\n"+
		"Output strictly JSON format.", topic)
	reply, err := g.complete(ctx, OpStory, Request{Prompt: prompt, Schema: storySchema})
	if err != nil || reply == "" {
		return nil
	}
	story, err := parseStory(reply, topic)
	if err != nil {
		g.logger.Warn("shepherd story unparsable", zap.Error(err))
		return nil
	}
	return story
}

func parseStory(reply, topic string) (*KidsStory, error) {
	var story KidsStory
	if err := json.Unmarshal([]byte(reply), &story); err != nil {
		return nil, fmt.Errorf("decode story: %w", err)
	}
	if story.Pages == nil {
		return nil, errors.New("story has no pages")
	}
	for i := range story.Pages {
		story.Pages[i].ImageURL = StoryImageURL(topic, i)
	}
	return &story, nil
}

// StoryImageURL is the placeholder illustration for page index of a story.
func StoryImageURL(topic string, index int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/600", escapeSeed(fmt.Sprintf("%s%d", topic, index)))
}

// seedUnescape undoes the query escaping of characters that stay literal in
// a URI component.
var seedUnescape = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

func escapeSeed(s string) string {
	return seedUnescape.Replace(url.QueryEscape(s))
}
