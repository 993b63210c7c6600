package post

import (
	"fmt"
	"strings"

	"github.com/posty-app/post-api/internal/domain/flow"
)

// systemInstruction pins the model to a strict JSON contract so the response
// can be parsed without prose heuristics in the common case.
const systemInstruction = "Você é um especialista em marketing digital e criação de conteúdo para redes sociais. " +
	"Crie posts envolventes, autênticos e otimizados para cada plataforma. " +
	"IMPORTANTE: Responda APENAS com um JSON válido contendo 'content' (texto do post) e " +
	"'imageDescription' (descrição detalhada da imagem ideal). Não inclua formatação markdown no conteúdo."

// BuildPrompt assembles the briefing sent to the chat completion endpoint.
func BuildPrompt(data flow.Data) string {
	platformKey, spec := ResolvePlatform(data.PlatformKey())

	var b strings.Builder
	fmt.Fprintf(&b, "Crie um post altamente engajante para %s seguindo estas especificações:\n\n", platformKey)

	b.WriteString("BRIEFING DO CLIENTE:\n")
	fmt.Fprintf(&b, "- Objetivo: %s\n", data.ObjectiveKey())
	fmt.Fprintf(&b, "- Público-alvo: %s\n", data.Audience())
	fmt.Fprintf(&b, "- Tom de voz: %s\n", data.Tone())
	fmt.Fprintf(&b, "- Conteúdo principal: %s\n", data.Content())
	if data.Additional() != "" {
		fmt.Fprintf(&b, "- Instruções especiais: %s\n", data.Additional())
	}

	fmt.Fprintf(&b, "\nESPECIFICAÇÕES DA PLATAFORMA (%s):\n", platformKey)
	fmt.Fprintf(&b, "- Limite: %s\n", spec.MaxLength)
	fmt.Fprintf(&b, "- Estilo: %s\n", spec.Style)
	fmt.Fprintf(&b, "- Hashtags: %s\n", spec.Hashtags)
	fmt.Fprintf(&b, "- Emojis: %s\n", spec.Emojis)
	fmt.Fprintf(&b, "- Formatação: %s\n", spec.Format)
	fmt.Fprintf(&b, "- Engajamento: %s\n", spec.Engagement)
	fmt.Fprintf(&b, "- Estilo da imagem: %s\n", spec.ImageStyle)

	b.WriteString(`
DIRETRIZES CRÍTICAS:
1. NÃO use formatação markdown (**, *, ##, etc.) - apenas texto limpo
2. Seja autêntico e genuíno, evite clichês de marketing
3. Use gatilhos psicológicos adequados ao objetivo
4. Inclua call-to-action natural e convincente
5. Adapte perfeitamente ao tom de voz solicitado
6. Otimize para máximo engajamento da plataforma específica

RESPOSTA OBRIGATÓRIA EM JSON:
{
  "content": "Texto completo do post otimizado para a plataforma, incluindo emojis, hashtags e formatação adequada",
  "imageDescription": "modern office workspace with laptop computer and coffee cup on clean white desk, natural lighting from window, organized environment with plants, professional photography style, no people visible, colors white wood green"
}

IMPORTANTE: A imageDescription deve conter apenas palavras-chave separadas por vírgulas para busca de imagens, não frases completas.

Crie agora o post e a descrição da imagem ideal:`)

	return b.String()
}
