package insights

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"salesreport/internal/logger"
	"salesreport/internal/models"
)

const systemPrompt = `You are a retail sales analyst. Given summary metrics for a
sales period, write two or three short sentences of commentary for a business
audience. Mention the overall revenue trend and call out the best day. Use
plain markdown, no headings.`

// Client generates report commentary with an LLM and converts it to HTML
type Client struct {
	client   *openai.Client
	model    string
	markdown goldmark.Markdown
	log      *logger.Logger
}

// NewClient creates an insights client
func NewClient(apiKey, model string) *Client {
	return &Client{
		client:   openai.NewClient(apiKey),
		model:    model,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		log:      logger.WithComponent("INSIGHTS"),
	}
}

// Commentary asks the model for a short narrative over the metrics and
// returns it as rendered HTML
func (c *Client) Commentary(ctx context.Context, m *models.Metrics) (string, error) {
	prompt := c.buildPrompt(m)

	reqCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		reqCtx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   500,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("commentary request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("commentary request: empty response")
	}

	md := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.log.Debug("Commentary received", map[string]interface{}{"chars": len(md)})

	var buf bytes.Buffer
	if err := c.markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("converting commentary markdown: %w", err)
	}

	return buf.String(), nil
}

func (c *Client) buildPrompt(m *models.Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total orders: %d\n", m.TotalOrders)
	fmt.Fprintf(&b, "Total revenue: %s\n", models.FormatCurrency(m.TotalRevenue))
	fmt.Fprintf(&b, "Best day: %s with %s revenue across %d orders\n",
		m.BestDay.Date.Format(models.DateFormat),
		models.FormatCurrency(m.BestDay.Revenue),
		m.BestDay.Orders)
	return b.String()
}
