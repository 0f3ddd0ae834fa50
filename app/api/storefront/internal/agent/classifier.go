package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Classification labels. PRODUCT queries go to the deterministic matcher;
// INFO queries get a generated answer.
const (
	LabelProduct = "PRODUCT"
	LabelInfo    = "INFO"
)

// Classifier is the optional model-backed front of the assistant. All of
// its failure modes fall back to the keyword matcher, so the storefront
// works identically with no model configured.
type Classifier struct {
	log      logx.Logger
	model    model.BaseChatModel
	runnable compose.Runnable[string, string]
}

func NewClassifier(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Classifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	chain := compose.NewChain[string, string]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, query string) ([]*schema.Message, error) {
		systemPrompt := `You are a storefront assistant. Classify the user's message into exactly one word:
- "PRODUCT" when the user wants product recommendations or shopping help.
- "INFO" when the user asks for information, explanation, or general help.
Reply with the single word only, no extra text.`

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(query),
		}, nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (string, error) {
		if msg == nil {
			return "", fmt.Errorf("empty classification message")
		}
		label := strings.ToUpper(strings.TrimSpace(msg.Content))
		if strings.HasPrefix(label, LabelInfo) {
			return LabelInfo, nil
		}
		// anything unexpected is treated as a shopping query
		return LabelProduct, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		log:      logger,
		model:    chatModel,
		runnable: runnable,
	}, nil
}

// Classify labels a query PRODUCT or INFO.
func (c *Classifier) Classify(ctx context.Context, query string) (string, error) {
	if c == nil || c.runnable == nil {
		return "", fmt.Errorf("classifier unavailable")
	}
	return c.runnable.Invoke(ctx, query)
}

// Answer generates a direct reply for INFO queries.
func (c *Classifier) Answer(ctx context.Context, query string) (string, error) {
	if c == nil || c.model == nil {
		return "", fmt.Errorf("classifier unavailable")
	}

	systemPrompt := `You are the EcoSage assistant for a sustainable products storefront. Answer the user's question briefly and helpfully. Do not invent products or prices.`
	out, err := c.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(query),
	})
	if err != nil {
		return "", err
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("empty answer")
	}
	return strings.TrimSpace(out.Content), nil
}
