package assist

import "context"

// Service runs assistant tasks: build the prompt, make exactly one
// completion call, interpret the raw output.
type Service struct {
	Client *Client
}

func NewService(client *Client) *Service {
	return &Service{Client: client}
}

func runTask[T any](ctx context.Context, c *Client, req Request, interpret func(string) (T, error)) (T, error) {
	var zero T
	raw, err := c.Complete(ctx, req)
	if err != nil {
		return zero, err
	}
	return interpret(raw)
}

func (s *Service) Chat(ctx context.Context, message, activityContext string) (string, error) {
	raw, err := s.Client.Complete(ctx, ChatPrompt(message, activityContext))
	if err != nil {
		return "", err
	}
	return InterpretText(raw), nil
}

func (s *Service) SuggestAlternatives(ctx context.Context, p Product) (AlternativesResult, error) {
	return runTask(ctx, s.Client, AlternativesPrompt(p), InterpretAlternatives)
}

func (s *Service) AnalyzeProduct(ctx context.Context, p Product, location string) (ProductAnalysis, error) {
	return runTask(ctx, s.Client, ProductAnalysisPrompt(p, location), InterpretProductAnalysis)
}

func (s *Service) AnalyzeBasket(ctx context.Context, items []BasketLine) (BasketAnalysis, error) {
	return runTask(ctx, s.Client, BasketPrompt(items), InterpretBasketAnalysis)
}
