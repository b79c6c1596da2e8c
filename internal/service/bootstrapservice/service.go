package bootstrapservice

import (
	"context"
	"encoding/json"
	"net/url"

	"painelestoque/internal/csv"
	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// AppState define o que o bootstrap precisa do estado persistente.
type AppState interface {
	SyncURL() string
	SetSyncURL(ctx context.Context, url string) error
	Vendedores() []string
	ReplaceVendedores(ctx context.Context, names []string) error
}

// SyncEngine é o contrato do motor de sincronização usado na carga inicial.
type SyncEngine interface {
	Sync(ctx context.Context, source csv.Source) (int, error)
}

// Service reconcilia as fontes possíveis de configuração inicial: o link
// compartilhado (parâmetros s e v) e os valores já persistidos. Também gera
// links compartilháveis a partir do estado atual.
type Service struct {
	state  AppState
	sync   SyncEngine
	logger logger.Logger
}

// NewService cria uma nova instância do resolvedor de bootstrap.
func NewService(state AppState, sync SyncEngine, log logger.Logger) *Service {
	return &Service{state: state, sync: sync, logger: log}
}

// Run executa a sequência de inicialização:
//  1. o parâmetro v do link, se presente e válido, substitui e persiste o
//     quadro de vendedores;
//  2. a URL efetiva de sincronização é o parâmetro s, se presente (e então
//     persistido), senão a URL já armazenada;
//  3. havendo URL efetiva, uma sincronização é executada e aguardada antes
//     de o servidor começar a atender — falha de sincronização é logada,
//     não fatal: o catálogo anterior continua valendo.
func (s *Service) Run(ctx context.Context, shareLink string) error {
	syncParam, vendParam := parseShareLink(shareLink)

	if vendParam != "" {
		var names []string
		if err := json.Unmarshal([]byte(vendParam), &names); err != nil || len(names) == 0 {
			s.logger.Warn("Parâmetro de vendedores do link ignorado (inválido ou vazio).", map[string]interface{}{
				"valor": vendParam,
			})
		} else if err := s.state.ReplaceVendedores(ctx, names); err != nil {
			return err
		}
	}

	effectiveURL := syncParam
	if effectiveURL == "" {
		effectiveURL = s.state.SyncURL()
	}

	if syncParam != "" {
		if err := s.state.SetSyncURL(ctx, syncParam); err != nil {
			return err
		}
	}

	if effectiveURL == "" {
		s.logger.Info("Bootstrap sem URL de sincronização; catálogo permanece como persistido.", nil)
		return nil
	}

	if _, err := s.sync.Sync(ctx, csv.Source{URL: effectiveURL, Label: domain.FonteSincronizacaoAutomatica}); err != nil {
		s.logger.Error("Falha ao sincronizar dados iniciais.", err)
	}

	return nil
}

// BuildShareLink monta o link compartilhável com a URL de sincronização e o
// quadro de vendedores atuais (`?s=...&v=...`).
func (s *Service) BuildShareLink(baseURL string) (string, error) {
	syncURL := s.state.SyncURL()
	if syncURL == "" {
		return "", apperror.NewNotFoundError("Nenhum link de sincronização configurado para compartilhar.")
	}

	vendedores, err := json.Marshal(s.state.Vendedores())
	if err != nil {
		return "", apperror.NewInternalError("Falha ao serializar o quadro de vendedores.", err)
	}

	params := url.Values{}
	params.Set("s", syncURL)
	params.Set("v", string(vendedores))

	return baseURL + "?" + params.Encode(), nil
}

// parseShareLink extrai os parâmetros s e v do link (URL completa ou só a
// query). Link ilegível é tratado como ausente.
func parseShareLink(shareLink string) (syncParam, vendParam string) {
	if shareLink == "" {
		return "", ""
	}

	parsed, err := url.Parse(shareLink)
	if err != nil {
		return "", ""
	}

	query := parsed.Query()
	if len(query) == 0 && parsed.Path != "" {
		// Aceita também a query crua sem "?": "s=...&v=...".
		if values, qErr := url.ParseQuery(parsed.Path); qErr == nil {
			query = values
		}
	}

	return query.Get("s"), query.Get("v")
}
