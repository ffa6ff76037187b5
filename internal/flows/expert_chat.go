package flows

import (
	"context"
	"fmt"
	"strings"

	"izybotanic/internal/models/db_models"
	"izybotanic/pkg/utils"
)

type ExpertChatInput struct {
	// PlantAnalysis is a textual summary of the user's garden, optional.
	PlantAnalysis string                `json:"plantAnalysis,omitempty"`
	ChatHistory   db_models.ChatHistory `json:"chatHistory,omitempty"`
	UserMessage   string                `json:"userMessage"`
}

func (in ExpertChatInput) Validate() error {
	if strings.TrimSpace(in.UserMessage) == "" {
		return fmt.Errorf("%w: userMessage is required", utils.ErrInvalidInput)
	}
	for _, turn := range in.ChatHistory {
		if turn.Role != db_models.ChatRoleUser && turn.Role != db_models.ChatRoleBot {
			return fmt.Errorf("%w: unknown chat role %q", utils.ErrInvalidInput, turn.Role)
		}
	}
	return nil
}

type ExpertChatOutput struct {
	BotMessage string `json:"botMessage"`
}

func (out ExpertChatOutput) Validate() error {
	if strings.TrimSpace(out.BotMessage) == "" {
		return fmt.Errorf("%w: missing botMessage", utils.ErrFlowOutputInvalid)
	}
	return nil
}

func renderExpertChatPrompt(in ExpertChatInput) string {
	var b strings.Builder

	b.WriteString("Você é Izy, uma IA especialista em botânica, amigável e prestativa. Responda sempre em português do Brasil.\n\n")

	b.WriteString("Análise do jardim do usuário:\n")
	if strings.TrimSpace(in.PlantAnalysis) != "" {
		b.WriteString(in.PlantAnalysis)
	} else {
		b.WriteString("(nenhuma análise disponível)")
	}
	b.WriteString("\n\nHistórico da conversa recente:\n")
	for _, turn := range in.ChatHistory {
		if turn.Role == db_models.ChatRoleUser {
			b.WriteString("User: ")
		} else {
			b.WriteString("Bot: ")
		}
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}

	b.WriteString("\nA nova pergunta do usuário é:\nUser: ")
	b.WriteString(in.UserMessage)
	b.WriteString("\n\nCom base em todo o contexto fornecido, formule sua resposta como especialista. Seja direto e útil.\n")
	b.WriteString(`Retorne somente JSON no formato {"botMessage": "sua resposta"}.`)

	return b.String()
}

func (f *flowRunner) ExpertChat(ctx context.Context, input ExpertChatInput) (*ExpertChatOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var out ExpertChatOutput
	if err := f.call(ctx, renderExpertChatPrompt(input), nil, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}
