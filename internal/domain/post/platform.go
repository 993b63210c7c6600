package post

// PlatformSpec captures the per-network writing and imagery guidance embedded
// into the generation prompt.
type PlatformSpec struct {
	MaxLength  string
	Style      string
	Hashtags   string
	Emojis     string
	Format     string
	Engagement string
	ImageStyle string
}

// PlatformHint is the composition hint appended to AI image prompts.
type PlatformHint string

const defaultPlatform = "Instagram"

var platformSpecs = map[string]PlatformSpec{
	"Instagram": {
		MaxLength:  "2200 caracteres",
		Style:      "Visual e inspirador com storytelling",
		Hashtags:   "5-10 hashtags relevantes e estratégicos",
		Emojis:     "Use emojis estrategicamente para destacar pontos importantes",
		Format:     "Quebras de linha para facilitar leitura, hooks visuais",
		Engagement: "Perguntas diretas, calls-to-action para salvar/compartilhar",
		ImageStyle: "Quadrada (1:1), alta qualidade, visualmente atrativa, lifestyle",
	},
	"Facebook": {
		MaxLength:  "2000 caracteres",
		Style:      "Conversacional e storytelling, tom mais pessoal",
		Hashtags:   "2-5 hashtags no máximo, uso moderado",
		Emojis:     "Use com moderação, foque na narrativa",
		Format:     "Parágrafos bem estruturados, fácil de ler",
		Engagement: "Estimule comentários e discussões",
		ImageStyle: "Horizontal ou quadrada, storytelling visual, autêntica",
	},
	"LinkedIn": {
		MaxLength:  "3000 caracteres",
		Style:      "Profissional mas humano, insights valiosos",
		Hashtags:   "3-5 hashtags estratégicos do setor",
		Emojis:     "Poucos emojis profissionais quando apropriado",
		Format:     "Estrutura clara com bullet points ou numeração",
		Engagement: "Perguntas que geram networking e discussão profissional",
		ImageStyle: "Profissional, limpa, corporativa, horizontal preferível",
	},
	"Twitter": {
		MaxLength:  "280 caracteres",
		Style:      "Conciso, direto e impactante",
		Hashtags:   "1-3 hashtags principais, máximo eficiência",
		Emojis:     "1-2 emojis estratégicos se necessário",
		Format:     "Texto direto, cada palavra conta",
		Engagement: "Threads se necessário, retweets e respostas",
		ImageStyle: "Horizontal, informativa, clara, sem muito texto",
	},
}

// ResolvePlatform maps an emoji-stripped platform key to its spec. Unknown
// platforms default to Instagram.
func ResolvePlatform(key string) (string, PlatformSpec) {
	if spec, ok := platformSpecs[key]; ok {
		return key, spec
	}
	return defaultPlatform, platformSpecs[defaultPlatform]
}

// SupportedPlatforms lists the platform keys with a dedicated spec.
func SupportedPlatforms() []string {
	return []string{"Instagram", "Facebook", "LinkedIn", "Twitter"}
}
