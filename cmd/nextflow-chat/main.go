package main

import (
	"log"
	"net/http"

	"github.com/Varun9213/nextflow-chat-bot/internal/adapters/docs"
	httpadapter "github.com/Varun9213/nextflow-chat-bot/internal/adapters/http"
	"github.com/Varun9213/nextflow-chat-bot/internal/adapters/llm"
	memstore "github.com/Varun9213/nextflow-chat-bot/internal/adapters/storage/memory"
	"github.com/Varun9213/nextflow-chat-bot/internal/app/chat"
	"github.com/Varun9213/nextflow-chat-bot/internal/app/retrieval"
	"github.com/Varun9213/nextflow-chat-bot/internal/config"
	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
)

func main() {
	cfg := config.Load()

	// Docs corpus, read once. A missing directory just means an empty store.
	store, err := docs.New(cfg.DocsDir)
	if err != nil {
		log.Fatalf("error loading docs from %s: %v", cfg.DocsDir, err)
	}
	log.Printf("[DOCS] Loaded %d documents from %s", store.Len(), cfg.DocsDir)

	// Choose between mock and OpenAI by config (useful for dev and tests).
	var client domain.CompletionClient
	if cfg.MockMode {
		log.Println("[LLM] Using MOCK completion client")
		client = llm.NewMockClient()
	} else {
		log.Println("[LLM] Using OpenAI completion client")
		client, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model, cfg.CompletionTimeout)
		if err != nil {
			log.Fatalf("error initializing OpenAI client: %v", err)
		}
	}

	sessions := memstore.NewSessionStore()
	retriever := retrieval.New(store)

	svc := chat.NewService(client, sessions, retriever)
	handler := httpadapter.NewServer(svc)

	addr := ":" + cfg.Port
	log.Println("Docs Q&A chat listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
