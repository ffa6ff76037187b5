package flows_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"izybotanic/internal/flows"
)

var Module = fx.Provide(
	provideModelClient, provideFlows)

func provideModelClient() flows.ModelClient {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := flows.NewModelClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create model client: %v", err)
	}
	return client
}

func provideFlows(client flows.ModelClient) flows.Flows {
	return flows.NewFlows(client)
}
