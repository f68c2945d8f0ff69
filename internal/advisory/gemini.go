package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/printguard/printguard-api/internal/models"
)

// Valores fixos usados sempre que o modelo não responde ou a resposta não
// decodifica. Falha do colaborador nunca vira erro para quem chamou.
const (
	FallbackDiagnosis = "Não foi possível analisar automaticamente."
	FallbackAction    = "Verifique o manual de serviço do equipamento."
	FallbackReport    = "Erro ao gerar relatório preventivo."
	EmptyReport       = "Sem recomendações no momento."
)

const (
	defaultModel    = "gemini-2.5-flash-latest"
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	requestTimeout  = 20 * time.Second
)

type Diagnosis struct {
	Diagnosis         string   `json:"diagnosis"`
	RecommendedAction string   `json:"recommendedAction"`
	SuggestedParts    []string `json:"suggestedParts"`
}

// Advisor é a fronteira consumida pela camada HTTP. A saída é texto livre
// gravado tal qual nos campos da OS, nunca interpretada pelo núcleo.
type Advisor interface {
	Diagnose(ctx context.Context, printer models.Printer, problem string) Diagnosis
	PreventiveReport(ctx context.Context, printers []models.Printer) string
}

type Client struct {
	apiKey   string
	model    string
	endpoint string
	http     *http.Client
}

func NewClient(apiKey string) *Client {
	if apiKey == "" {
		log.Printf("[advisory] api key not configured, running with fallbacks only")
	}
	return &Client{
		apiKey:   apiKey,
		model:    defaultModel,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// --------------------------------------------------
// Diagnose
// --------------------------------------------------

func (c *Client) Diagnose(ctx context.Context, printer models.Printer, problem string) Diagnosis {
	prompt := fmt.Sprintf(`Você é um técnico especialista sênior em manutenção de impressoras.
Analise o seguinte problema:

Impressora: %s %s
Contador de Páginas: %d
Descrição do Erro: %s

Forneça uma resposta JSON com o seguinte formato (sem markdown):
{
  "diagnosis": "Diagnóstico provável...",
  "recommendedAction": "Passo a passo recomendado...",
  "suggestedParts": ["Nome da peça 1", "Nome da peça 2"]
}
Seja técnico e preciso. Considere o desgaste natural baseado no contador de páginas.`,
		printer.Brand, printer.Model, printer.PageCounter, problem)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		log.Printf("[advisory] diagnose failed err=%v", err)
		return fallbackDiagnosis()
	}

	var d Diagnosis
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		log.Printf("[advisory] diagnose response decode failed err=%v", err)
		return fallbackDiagnosis()
	}
	if d.SuggestedParts == nil {
		d.SuggestedParts = []string{}
	}
	return d
}

func fallbackDiagnosis() Diagnosis {
	return Diagnosis{
		Diagnosis:         FallbackDiagnosis,
		RecommendedAction: FallbackAction,
		SuggestedParts:    []string{},
	}
}

// --------------------------------------------------
// Preventive report
// --------------------------------------------------

func (c *Client) PreventiveReport(ctx context.Context, printers []models.Printer) string {
	lines := make([]string, 0, len(printers))
	for _, p := range printers {
		lines = append(lines, fmt.Sprintf("%s %s (Contador: %d)", p.Brand, p.Model, p.PageCounter))
	}

	prompt := fmt.Sprintf(`Com base na lista de impressoras abaixo, identifique quais provavelmente precisarão de manutenção preventiva em breve considerando um ciclo médio de 50.000 páginas para laser e 15.000 para jato de tinta.
Lista:
%s

Responda em texto corrido curto, focado apenas nas que precisam de atenção.`,
		strings.Join(lines, "\n"))

	text, err := c.generate(ctx, prompt, false)
	if err != nil {
		log.Printf("[advisory] preventive report failed err=%v", err)
		return FallbackReport
	}
	if strings.TrimSpace(text) == "" {
		return EmptyReport
	}
	return text
}

// --------------------------------------------------
// Transport
// --------------------------------------------------

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("api key not configured")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if jsonMode {
		reqBody.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty model response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
