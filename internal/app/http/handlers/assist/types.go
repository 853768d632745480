package assist

// Message is a single chat-completion message. Order matters: the system
// message, when present, precedes the user message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one completion call: ordered messages plus sampling and
// output-shape settings. JSONObject asks the service to emit a single JSON
// object as its entire output.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONObject  bool
}

// Product is the page payload the extension scrapes for a single product.
type Product struct {
	ProductName string `json:"productName"`
	Price       string `json:"price"`
	Store       string `json:"store"`
	Category    string `json:"category,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// BasketLine is the slice of a basket item the basket analysis prompt needs.
type BasketLine struct {
	ProductName string `json:"productName"`
	Price       string `json:"price"`
	Store       string `json:"store"`
}

type Suggestion struct {
	Name           string  `json:"name"`
	EstimatedPrice string  `json:"estimatedPrice"`
	SavingsPercent float64 `json:"savingsPercent"`
	Reason         string  `json:"reason"`
	WhereToBuy     string  `json:"whereToBuy"`
}

type AlternativesResult struct {
	Suggestions   []Suggestion `json:"suggestions"`
	GeneralAdvice string       `json:"generalAdvice,omitempty"`
}

type ComparisonRow struct {
	Store   string `json:"store"`
	Product string `json:"product"`
	Price   string `json:"price"`
	Actions string `json:"actions"`
	Link    string `json:"link"`
}

type PriceComparison struct {
	LowestPrice       string          `json:"lowestPrice"`
	AveragePrice      string          `json:"averagePrice"`
	HighestPrice      string          `json:"highestPrice"`
	ComparisonDetails []ComparisonRow `json:"comparisonDetails"`
}

type ProductAnalysis struct {
	PriceAnalysis   string          `json:"priceAnalysis"`
	BuyingAdvice    string          `json:"buyingAdvice"`
	WhenToBuy       string          `json:"whenToBuy"`
	WarningFlags    []string        `json:"warningFlags"`
	PriceComparison PriceComparison `json:"priceComparison"`
}

type Substitution struct {
	Original         string `json:"original"`
	Alternative      string `json:"alternative"`
	EstimatedSavings string `json:"estimatedSavings"`
}

type BasketAnalysis struct {
	TotalSavingsOpportunity string         `json:"totalSavingsOpportunity"`
	Recommendations         []string       `json:"recommendations"`
	SubstitutionIdeas       []Substitution `json:"substitutionIdeas"`
	PrioritizationAdvice    string         `json:"prioritizationAdvice"`
}

// Chat-completions wire format.

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}
