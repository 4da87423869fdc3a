package openai

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const systemPrompt = `Você é um especialista em Google Ads com foco em campanhas Performance Max para o varejo brasileiro.
Responda sempre em português do Brasil e exclusivamente com um objeto JSON válido, sem texto fora do JSON.`

const recommendationsInstructions = `Com base nos dados acima, gere até %d recomendações práticas de otimização.
Formato: {"recommendations":[{"type":"BUDGET|BIDDING|ASSETS|AUDIENCE|FEED|GENERAL","title":"...","description":"...","expected_impact":"...","priority":"HIGH|MEDIUM|LOW"}]}`

const analysisInstructions = `Com base nos dados acima, escreva uma análise de desempenho da campanha.
Formato: {"summary":"...","strengths":["..."],"weaknesses":["..."],"next_steps":["..."]}`

const assetsInstructions = `Sugira novos textos para o grupo de recursos "%s", complementando os existentes sem repeti-los.
Limites: títulos com até %d caracteres, títulos longos e descrições com até %d caracteres.
Formato: {"headlines":["..."],"long_headlines":["..."],"descriptions":["..."]}`

// describeCampaign resume campanha, métricas e recursos em texto para o prompt
func describeCampaign(s domain.CampaignSnapshot) string {
	var b strings.Builder
	c := s.Campaign

	fmt.Fprintf(&b, "Campanha: %s (%s, status %s)\n", c.Name, c.Type, c.Status)
	fmt.Fprintf(&b, "Orçamento diário: R$ %.2f\n", c.DailyBudget)
	if c.TargetROAS != nil {
		fmt.Fprintf(&b, "ROAS alvo: %.2f\n", *c.TargetROAS)
	}

	t := s.Totals
	fmt.Fprintf(&b, "\nTotais do período (%d dias): impressões %d, cliques %d, custo R$ %.2f, conversões %.1f, valor R$ %.2f, CTR %.2f%%, CPC R$ %.2f, ROAS %.2f, CPA R$ %.2f\n",
		len(s.Metrics), t.Impressions, t.Clicks, t.Cost, t.Conversions, t.ConversionValue, t.CTR, t.CPC, t.ROAS, t.CPA)

	if len(s.Metrics) > 0 {
		b.WriteString("\nMétricas diárias (data; impressões; cliques; custo; conversões; valor; ROAS):\n")
		for _, m := range s.Metrics {
			fmt.Fprintf(&b, "%s; %d; %d; %.2f; %.1f; %.2f; %.2f\n",
				m.Date.Format(time.DateOnly), m.Impressions, m.Clicks, m.Cost, m.Conversions, m.ConversionValue, m.ROAS)
		}
	}

	for _, g := range s.AssetGroups {
		fmt.Fprintf(&b, "\nGrupo de recursos %q", g.Name)
		if g.AdStrength != nil {
			fmt.Fprintf(&b, " (força do anúncio: %s)", *g.AdStrength)
		}
		b.WriteString("\n")
		writeList(&b, "Títulos", g.Headlines)
		writeList(&b, "Títulos longos", g.LongHeadlines)
		writeList(&b, "Descrições", g.Descriptions)
	}

	return b.String()
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(b, "%s: nenhum\n", label)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(values, " | "))
}

// truncate corta por runas para não quebrar caracteres acentuados
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max]))
}

// fitTexts remove vazios e repetidos, respeita tamanho e quantidade
func fitTexts(values, existing []string, maxLen, maxCount int) []string {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[strings.ToLower(strings.TrimSpace(e))] = true
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		v = truncate(v, maxLen)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
		if len(out) == maxCount {
			break
		}
	}
	return out
}
