package assist

import (
	"strings"
	"testing"
)

func TestChatPromptMessageOrder(t *testing.T) {
	req := ChatPrompt("where can I buy cheap milk?", "")

	if len(req.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Fatalf("roles = %s,%s, want system,user", req.Messages[0].Role, req.Messages[1].Role)
	}
	if req.Messages[1].Content != "where can I buy cheap milk?" {
		t.Fatalf("user content = %q", req.Messages[1].Content)
	}
	if req.JSONObject {
		t.Fatalf("chat prompt must be free text")
	}
	if req.MaxTokens != 800 {
		t.Fatalf("max tokens = %d, want 800", req.MaxTokens)
	}
}

func TestChatPromptAppendsContext(t *testing.T) {
	req := ChatPrompt("hi", "browsing laptops on Amazon")

	if !strings.Contains(req.Messages[0].Content, "browsing laptops on Amazon") {
		t.Fatalf("system message missing activity context: %q", req.Messages[0].Content)
	}

	plain := ChatPrompt("hi", "")
	if strings.Contains(plain.Messages[0].Content, "shopping activity") {
		t.Fatalf("system message mentions context without one: %q", plain.Messages[0].Content)
	}
}

func TestAlternativesPromptContainsProductVerbatim(t *testing.T) {
	req := AlternativesPrompt(Product{
		ProductName: "Sony WH-1000XM5",
		Price:       "$399.99",
		Store:       "Amazon",
	})

	user := req.Messages[1].Content
	if !strings.Contains(user, "Sony WH-1000XM5") {
		t.Fatalf("prompt missing product name:\n%s", user)
	}
	if !strings.Contains(user, "$399.99") {
		t.Fatalf("prompt missing price:\n%s", user)
	}
	if !strings.Contains(user, "Category: Unknown") {
		t.Fatalf("missing category placeholder:\n%s", user)
	}
	if !req.JSONObject {
		t.Fatalf("alternatives prompt must request a json object")
	}
}

func TestProductAnalysisPromptEncodesSearchLinks(t *testing.T) {
	req := ProductAnalysisPrompt(Product{
		ProductName: "Dyson V15 Detect",
		Price:       "$649.99",
		Store:       "Best Buy",
	}, "Canada")

	user := req.Messages[1].Content
	if !strings.Contains(user, "location: Canada") {
		t.Fatalf("prompt missing location:\n%s", user)
	}
	if !strings.Contains(user, "https://www.amazon.com/s?k=Dyson+V15+Detect") {
		t.Fatalf("prompt missing encoded Amazon link:\n%s", user)
	}
	if !strings.Contains(user, "https://www.walmart.com/search?q=Dyson+V15+Detect") {
		t.Fatalf("prompt missing encoded Walmart link:\n%s", user)
	}
	if !strings.Contains(user, "https://www.kroger.com/search?q=Dyson+V15+Detect") {
		t.Fatalf("prompt missing encoded Kroger link:\n%s", user)
	}
	if !strings.Contains(user, "Description: Not provided") {
		t.Fatalf("missing description placeholder:\n%s", user)
	}
	if !strings.Contains(user, "Amazon link: https://www.amazon.com/s?k=<product-name>") ||
		!strings.Contains(user, "Walmart link: https://www.walmart.com/search?q=<product-name>") ||
		!strings.Contains(user, "Kroger link: https://www.kroger.com/") {
		t.Fatalf("prompt missing store link format instructions:\n%s", user)
	}
	if !strings.Contains(user, "The comparison should look like this:") {
		t.Fatalf("prompt missing comparison example:\n%s", user)
	}
	if !req.JSONObject {
		t.Fatalf("analysis prompt must request a json object")
	}
}

func TestBasketPromptListsItems(t *testing.T) {
	req := BasketPrompt([]BasketLine{
		{ProductName: "Milk", Price: "$3.50", Store: "Kroger"},
		{ProductName: "Eggs", Price: "$2.99"},
	})

	user := req.Messages[1].Content
	if !strings.Contains(user, "- Milk ($3.50) from Kroger") {
		t.Fatalf("missing first item line:\n%s", user)
	}
	if !strings.Contains(user, "- Eggs ($2.99) from Unknown store") {
		t.Fatalf("missing unknown store placeholder:\n%s", user)
	}
	if !req.JSONObject {
		t.Fatalf("basket prompt must request a json object")
	}
}
