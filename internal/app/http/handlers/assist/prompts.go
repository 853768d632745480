package assist

import (
	"fmt"
	"net/url"
	"strings"
)

// Prompt builders are pure: they assume required fields were validated by
// the caller and never touch the network.

const chatPersona = "You are a helpful shopping assistant for the CostIndex Chrome extension. Help the user with their shopping needs and provide practical advice for saving money."

func ChatPrompt(message, activityContext string) Request {
	system := chatPersona
	if activityContext != "" {
		system += "\nContext about the user's current shopping activity: " + activityContext
	}
	return Request{
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   800,
	}
}

const alternativesPersona = "You are a shopping assistant with extensive knowledge of products, prices, and value alternatives. Provide realistic alternatives based on the features that truly matter for the type of product. Always maintain a balance between price and quality in recommendations."

const alternativesTemplate = `I need suggestions for cheaper alternatives to this product:

Product: %s
Current Price: %s
Store: %s
Category: %s

Please suggest 2-3 specific cheaper alternatives with these details:
1. Alternative product name
2. Estimated price (same currency as original)
3. Approximate savings percentage
4. Brief reason why it's a good alternative
5. Where to buy (store or website)

Also provide general money-saving advice related to this type of product.

Format your response as JSON with this structure:
{
  "suggestions": [
    {
      "name": "Alternative Product Name",
      "estimatedPrice": "Price with currency symbol",
      "savingsPercent": Percentage as number (no %% symbol),
      "reason": "Brief explanation of why this is a good alternative",
      "whereToBuy": "Store or website name"
    }
  ],
  "generalAdvice": "General money-saving advice related to this product category"
}`

func AlternativesPrompt(p Product) Request {
	prompt := fmt.Sprintf(alternativesTemplate,
		p.ProductName, p.Price, p.Store, orDefault(p.Category, "Unknown"))
	return Request{
		Messages: []Message{
			{Role: "system", Content: alternativesPersona},
			{Role: "user", Content: prompt},
		},
		JSONObject: true,
	}
}

const analysisPersona = "You are a shopping assistant with expertise in product pricing, market trends, and consumer protection. Provide practical, actionable advice to help users make informed purchasing decisions."

const analysisTemplate = `Analyze this product and provide shopping insights based on the location: %[1]s

Product: %[2]s
Price: %[3]s
Store: %[4]s
Category: %[5]s
URL: %[6]s
Description: %[7]s

Price Comparison:
Compare the price of "%[2]s" across the following stores:
- Amazon
- Walmart
- Kroger

Provide the following information in JSON format:
1. Price analysis (is this a good price compared to the market?)
2. Buying advice (should they buy now, wait, consider alternatives?)
3. When to buy (is there a better time to purchase this?)
4. Warning flags (any red flags about this product or listing)

**Include the price comparison**:
- The lowest price for the product across all stores.
- The average price across stores.
- The highest price for the product across stores.

**Provide product links** for each store, with the format:
Amazon link: https://www.amazon.com/s?k=<product-name>
Walmart link: https://www.walmart.com/search?q=<product-name>
Kroger link: https://www.kroger.com/

The comparison should look like this:
{
  "priceComparison": {
    "lowestPrice": "$179.99",
    "averagePrice": "$189.99",
    "highestPrice": "$199.99",
    "comparisonDetails": [
      {
        "store": "Amazon",
        "product": "%[2]s",
        "price": "$199.99",
        "actions": "View",
        "link": "https://www.amazon.com/s?k=%[8]s"
      },
      {
        "store": "Walmart",
        "product": "%[2]s",
        "price": "$189.99",
        "actions": "View",
        "link": "https://www.walmart.com/search?q=%[8]s"
      },
      {
        "store": "Kroger",
        "product": "%[2]s",
        "price": "$179.99",
        "actions": "Best Price View",
        "link": "https://www.kroger.com/search?q=%[8]s"
      }
    ]
  }
}

Format your response like this:
{
  "priceAnalysis": "Analysis of whether this price is good or not",
  "buyingAdvice": "Advice on whether to purchase now",
  "whenToBuy": "Timing advice for this purchase",
  "warningFlags": ["Warning 1", "Warning 2"],
  "priceComparison": {
    "lowestPrice": "$179.99",
    "averagePrice": "$189.99",
    "highestPrice": "$199.99",
    "comparisonDetails": [
      {
        "store": "Amazon",
        "product": "%[2]s",
        "price": "$199.99",
        "actions": "View",
        "link": "https://www.amazon.com/s?k=%[8]s"
      },
      {
        "store": "Walmart",
        "product": "%[2]s",
        "price": "$189.99",
        "actions": "View",
        "link": "https://www.walmart.com/search?q=%[8]s"
      },
      {
        "store": "Kroger",
        "product": "%[2]s",
        "price": "$179.99",
        "actions": "Best Price View",
        "link": "https://www.kroger.com/search?q=%[8]s"
      }
    ]
  }
}`

func ProductAnalysisPrompt(p Product, location string) Request {
	prompt := fmt.Sprintf(analysisTemplate,
		location,
		p.ProductName,
		p.Price,
		p.Store,
		orDefault(p.Category, "Unknown"),
		p.URL,
		orDefault(p.Description, "Not provided"),
		url.QueryEscape(p.ProductName),
	)
	return Request{
		Messages: []Message{
			{Role: "system", Content: analysisPersona},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   800,
		JSONObject:  true,
	}
}

const basketPersona = "You are a smart shopping assistant that helps people save money on their purchases. You have expertise in price comparison, product alternatives, and shopping optimization. Provide practical and realistic advice."

const basketTemplate = `Analyze this shopping basket and provide money-saving insights:

ITEMS:
%s

Please provide:
1. Total savings opportunity (estimate how much could be saved)
2. 2-3 specific recommendations for this basket
3. Substitution ideas (which items could be replaced with cheaper alternatives)
4. Prioritization advice (which items are worth the price vs. which could be reconsidered)

Format your response as JSON with this structure:
{
  "totalSavingsOpportunity": "Estimated total savings with explanation",
  "recommendations": ["Recommendation 1", "Recommendation 2"],
  "substitutionIdeas": [
    {
      "original": "Original product name",
      "alternative": "Suggested alternative",
      "estimatedSavings": "Estimated savings with currency"
    }
  ],
  "prioritizationAdvice": "Advice on which items to prioritize or reconsider"
}`

func BasketPrompt(items []BasketLine) Request {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s (%s) from %s",
			it.ProductName, it.Price, orDefault(it.Store, "Unknown store")))
	}
	prompt := fmt.Sprintf(basketTemplate, strings.Join(lines, "\n"))
	return Request{
		Messages: []Message{
			{Role: "system", Content: basketPersona},
			{Role: "user", Content: prompt},
		},
		JSONObject: true,
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
