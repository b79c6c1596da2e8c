package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Record é uma linha de dados do CSV: os valores indexados pelo texto do
// cabeçalho, mais a ordem original das colunas. A ordem importa para o
// resolvedor de colunas ("primeira chave encontrada" precisa ser
// determinístico, e mapas em Go não garantem ordem de iteração).
type Record struct {
	Keys   []string
	Values map[string]string
}

// Source descreve uma fonte de CSV: uma URL remota ou texto literal colado,
// mais um rótulo de exibição para o histórico de atualizações.
type Source struct {
	URL   string
	Text  string
	Label string
}

// Parser baixa (ou recebe) o conteúdo CSV e o tokeniza em Records.
// A primeira linha é o cabeçalho; as seguintes são dados.
type Parser struct {
	client *http.Client
}

// NewParser cria um Parser com timeout próprio para o download.
func NewParser(fetchTimeout time.Duration) *Parser {
	return &Parser{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Parse resolve a fonte (download ou texto literal) e extrai os registros.
func (p *Parser) Parse(ctx context.Context, source Source) ([]Record, error) {
	if source.URL != "" {
		content, err := p.fetch(ctx, source.URL)
		if err != nil {
			return nil, err
		}
		return ParseText(content)
	}
	return ParseText(source.Text)
}

// fetch baixa o conteúdo da URL respeitando o contexto do chamador.
func (p *Parser) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("falha ao montar a requisição de download: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("falha ao baixar o CSV: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download do CSV retornou status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("falha ao ler o corpo do download: %w", err)
	}

	return string(body), nil
}

// ParseText tokeniza um conteúdo CSV literal em Records.
func ParseText(content string) ([]Record, error) {
	content = strings.TrimPrefix(content, "\uFEFF") // BOM de planilhas exportadas do Excel

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("conteúdo CSV vazio")
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = sniffDelimiter(content)
	reader.FieldsPerRecord = -1 // planilhas reais têm linhas com colunas faltando
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("falha ao ler o cabeçalho do CSV: %w", err)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("falha ao ler linha do CSV: %w", err)
		}

		record := Record{
			Keys:   headers,
			Values: make(map[string]string, len(headers)),
		}
		for i, value := range row {
			if i < len(headers) {
				record.Values[headers[i]] = value
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// sniffDelimiter inspeciona a linha de cabeçalho e escolhe o delimitador
// mais frequente. Planilhas brasileiras exportam com ponto-e-vírgula com
// frequência, então vírgula sozinha não basta.
func sniffDelimiter(content string) rune {
	header := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		header = content[:idx]
	}

	best := ','
	bestCount := strings.Count(header, ",")
	for _, cand := range []rune{';', '\t'} {
		if c := strings.Count(header, string(cand)); c > bestCount {
			best = cand
			bestCount = c
		}
	}
	return best
}
