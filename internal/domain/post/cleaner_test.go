package post

import "testing"

func TestCleanContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "**Título** do post", "Título do post"},
		{"italic", "*ênfase* aqui", "ênfase aqui"},
		{"header", "## Seção\nTexto", "Seção\nTexto"},
		{"code fence", "```\ncódigo\n```", "código"},
		{"separator", "antes --- depois", "antes  depois"},
		{"list marker", "- item um\n- item dois", "item um\nitem dois"},
		{"mixed", "**Dica:** use *sempre*\n- passo", "Dica: use sempre\npasso"},
		{"empty", "", ""},
		{"plain", "Post limpo com #hashtag", "Post limpo com #hashtag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanContent(tt.in); got != tt.want {
				t.Fatalf("CleanContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanContentIdempotent(t *testing.T) {
	inputs := []string{
		"**bold** e *italic*",
		"- - item aninhado",
		"## Título\n- lista\n---",
		"texto já limpo",
	}

	for _, in := range inputs {
		once := CleanContent(in)
		twice := CleanContent(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanContentKeepsHashtags(t *testing.T) {
	// Hashtags have no trailing space after #, headers do.
	got := CleanContent("Confira! #marketing #vendas")
	if got != "Confira! #marketing #vendas" {
		t.Fatalf("hashtags must survive cleaning, got %q", got)
	}
}
