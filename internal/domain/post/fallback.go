package post

import (
	"fmt"

	"github.com/posty-app/post-api/internal/domain/flow"
)

// objectiveKeywords maps objective labels to visual-style keyword bundles for
// the fallback image description.
var objectiveKeywords = map[string]string{
	"Vender produto/serviço": "product, showcase, professional, clean, modern",
	"Aumentar engajamento":   "vibrant, dynamic, colorful, engaging, lifestyle",
	"Educar audiência":       "workspace, books, learning, organized, professional",
	"Inspirar pessoas":       "success, motivation, growth, bright, inspiring",
	"Criar buzz":             "trendy, modern, bold, creative, innovative",
}

var platformKeywords = map[string]string{
	"Instagram": "lifestyle, aesthetic, square, beautiful",
	"Facebook":  "authentic, storytelling, relatable, social",
	"LinkedIn":  "professional, corporate, business, networking",
	"Twitter":   "simple, clear, informative, concise",
}

// FallbackImageDescription synthesizes a keyword image description from the
// objective and platform lookup tables when the model produced none.
func FallbackImageDescription(data flow.Data) string {
	baseKeywords, ok := objectiveKeywords[data.ObjectiveKey()]
	if !ok {
		baseKeywords = "professional, business, modern, clean"
	}

	platformKey, _ := ResolvePlatform(data.PlatformKey())
	platformWords := platformKeywords[platformKey]

	return fmt.Sprintf("%s, %s, office, workspace, laptop, desk, natural lighting, no people", baseKeywords, platformWords)
}

// FallbackContent renders the deterministic per-platform template with the
// collected answers interpolated, already passed through CleanContent.
func FallbackContent(data flow.Data) string {
	content := data.Content()
	if content == "" {
		content = "Aqui está uma reflexão importante sobre persistência e sucesso"
	}
	audience := data.Audience()
	if audience == "" {
		audience = "empreendedores como você"
	}

	platformKey, _ := ResolvePlatform(data.PlatformKey())

	var template string
	switch platformKey {
	case "Facebook":
		template = fmt.Sprintf(`Aconteceu algo que me fez refletir muito...

%s

Conversando com %s, percebi que todos nós passamos pelos mesmos desafios. A diferença está em como escolhemos reagir.

Aqui estão as 3 lições que mudaram minha perspectiva:

→ Problemas são oportunidades disfarçadas
→ O não de hoje pode ser o sim de amanhã
→ Cada pequeno passo conta mais do que esperamos

O que mais me impressiona é ver como essas mudanças simples podem transformar completamente os resultados.

E vocês? Já passaram por algo assim? Compartilhem suas experiências nos comentários! Adoro ler suas histórias.`, content, audience)

	case "LinkedIn":
		template = fmt.Sprintf(`Insight importante sobre o mercado atual que preciso compartilhar.

%s

Trabalhando diretamente com %s, observei um padrão interessante que poucos estão discutindo.

Principais descobertas:

• A diferenciação real está na execução, não na estratégia
• Relacionamentos superam qualquer tática de vendas
• Consistência gera mais valor que campanhas pontuais
• Autenticidade é o novo ROI

O resultado tem sido crescimento sustentável e parcerias duradouras com clientes que realmente valorizam nosso trabalho.

Como vocês têm equilibrado inovação e consistência em suas estratégias? Gostaria de ouvir suas experiências.

#estrategia #crescimento #relacionamentos #resultados #inovacao`, content, audience)

	case "Twitter":
		template = fmt.Sprintf(`Plot twist: %s

Para %s, isso mudou tudo.

A receita? Foco + Consistência + Paciência.

Resultado: 300%% mais engajamento em 90 dias.

Thread nos comentários com o passo a passo completo

#marketing #resultados #crescimento`, content, audience)

	default: // Instagram
		template = fmt.Sprintf(`Você sabia que 90%% das pessoas desistem bem na reta final?

%s

Mas aqui está o segredo que mudou tudo para %s: consistência supera perfeição.

As 3 coisas que aprendi:
🎯 Foque no progresso, não na perfeição
⚡ Pequenas ações diárias = grandes resultados
🔥 Sua jornada inspira outros

E você? Qual foi sua maior lição esse ano?

Comenta aqui embaixo e salva este post para lembrar depois!

#motivacao #crescimento #mindset #sucesso #inspiracao #foco #disciplina #resultado`, content, audience)
	}

	return CleanContent(template)
}
