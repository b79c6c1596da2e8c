package stateservice

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// Chaves do armazenamento durável. Os nomes são herdados do sistema original
// e mantidos para compatibilidade com estados já persistidos.
const (
	KeyProducts      = "marsil_local_products"
	KeyVendedores    = "marsil_vendedores_list"
	KeyRequests      = "marsil_requests_history"
	KeyUpdateHistory = "marsil_update_history"
	KeyWhatsApp      = "marsil_whatsapp_config"
	KeySyncURL       = "marsil_sync_url"
)

// Store define o contrato (porta de persistência) que este Serviço espera da
// camada de armazenamento chave/valor. Valores são strings opacas: JSON
// serializado para as listas, string crua para a URL de sincronização.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Service mantém o AppState em memória como fonte única de verdade e o
// espelha no Store a cada mutação. Toda mutação é copy-on-write: aplica na
// cópia, persiste e só então troca o estado visível — uma falha de
// persistência deixa o estado anterior intacto.
type Service struct {
	store  Store
	logger logger.Logger

	mu      sync.RWMutex
	state   domain.AppState
	syncURL string
}

// NewService cria o serviço e reidrata o estado a partir do Store.
// Valores ausentes ou corrompidos caem silenciosamente nos padrões
// (quadro fixo de vendedores; listas vazias); falhas de infraestrutura
// na leitura são propagadas.
func NewService(ctx context.Context, store Store, log logger.Logger) (*Service, error) {
	s := &Service{
		store:  store,
		logger: log,
	}

	state := domain.AppState{
		Products:       []domain.Product{},
		Requests:       []domain.StockRequest{},
		Vendedores:     append([]string(nil), domain.DefaultVendedores...),
		WhatsAppConfig: domain.DefaultWhatsAppConfig(),
		UpdateHistory:  []domain.UpdateLog{},
	}

	if err := s.loadJSON(ctx, KeyProducts, &state.Products); err != nil {
		return nil, err
	}

	var vendedores []string
	loaded, err := s.loadJSONFound(ctx, KeyVendedores, &vendedores)
	if err != nil {
		return nil, err
	}
	// Quadro persistido vazio não substitui o padrão.
	if loaded && len(vendedores) > 0 {
		state.Vendedores = vendedores
	}

	if err := s.loadJSON(ctx, KeyRequests, &state.Requests); err != nil {
		return nil, err
	}
	if err := s.loadJSON(ctx, KeyUpdateHistory, &state.UpdateHistory); err != nil {
		return nil, err
	}
	if err := s.loadJSON(ctx, KeyWhatsApp, &state.WhatsAppConfig); err != nil {
		return nil, err
	}

	syncURL, err := s.loadRaw(ctx, KeySyncURL)
	if err != nil {
		return nil, err
	}

	s.state = state
	s.syncURL = syncURL

	log.Info("Estado da aplicação reidratado.", map[string]interface{}{
		"produtos":   len(state.Products),
		"pedidos":    len(state.Requests),
		"vendedores": len(state.Vendedores),
		"historico":  len(state.UpdateHistory),
	})

	return s, nil
}

// loadJSONFound lê e desserializa uma chave. Retorna (false, nil) quando a
// chave não existe ou o valor persistido está corrompido — nos dois casos o
// chamador mantém o padrão.
func (s *Service) loadJSONFound(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("Valor persistido corrompido; usando padrão.", map[string]interface{}{
			"chave": key,
			"erro":  err.Error(),
		})
		return false, nil
	}

	return true, nil
}

func (s *Service) loadJSON(ctx context.Context, key string, dst interface{}) error {
	_, err := s.loadJSONFound(ctx, key, dst)
	return err
}

// loadRaw lê uma chave como string crua (sem JSON); ausente vira "".
func (s *Service) loadRaw(ctx context.Context, key string) (string, error) {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", err
	}
	return raw, nil
}

// mutate aplica fn sobre uma cópia do estado, persiste a cópia e, só em caso
// de sucesso, a torna o estado visível.
func (s *Service) mutate(ctx context.Context, fn func(next *domain.AppState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneState(s.state)
	fn(&next)

	if err := s.persist(ctx, &next); err != nil {
		return err
	}

	s.state = next
	return nil
}

// persist re-serializa os campos persistidos do estado inteiro, como o
// sistema original fazia a cada mutação.
func (s *Service) persist(ctx context.Context, state *domain.AppState) error {
	entries := []struct {
		key   string
		value interface{}
	}{
		{KeyProducts, state.Products},
		{KeyVendedores, state.Vendedores},
		{KeyRequests, state.Requests},
		{KeyUpdateHistory, state.UpdateHistory},
		{KeyWhatsApp, state.WhatsAppConfig},
	}

	for _, entry := range entries {
		raw, err := json.Marshal(entry.value)
		if err != nil {
			return apperror.NewInternalError("falha ao serializar estado para persistência", err)
		}
		if err := s.store.Set(ctx, entry.key, string(raw)); err != nil {
			return err
		}
	}

	return nil
}

func cloneState(state domain.AppState) domain.AppState {
	clone := state
	clone.Products = append([]domain.Product(nil), state.Products...)
	clone.Requests = append([]domain.StockRequest(nil), state.Requests...)
	clone.Vendedores = append([]string(nil), state.Vendedores...)
	clone.UpdateHistory = append([]domain.UpdateLog(nil), state.UpdateHistory...)
	return clone
}

// prependLog insere a entrada no topo do histórico respeitando o teto.
func prependLog(history []domain.UpdateLog, entry domain.UpdateLog) []domain.UpdateLog {
	next := append([]domain.UpdateLog{entry}, history...)
	if len(next) > domain.MaxUpdateHistory {
		next = next[:domain.MaxUpdateHistory]
	}
	return next
}

// --- Leitura ---

// Snapshot retorna uma cópia independente do estado atual.
func (s *Service) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Products retorna uma cópia do catálogo atual.
func (s *Service) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.state.Products...)
}

// Requests retorna uma cópia da lista de pedidos.
func (s *Service) Requests() []domain.StockRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.StockRequest(nil), s.state.Requests...)
}

// Vendedores retorna uma cópia do quadro de vendedores.
func (s *Service) Vendedores() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.state.Vendedores...)
}

// WhatsApp retorna a configuração de mensageria atual.
func (s *Service) WhatsApp() domain.WhatsAppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.WhatsAppConfig
}

// UpdateHistory retorna uma cópia do histórico de sincronizações.
func (s *Service) UpdateHistory() []domain.UpdateLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.UpdateLog(nil), s.state.UpdateHistory...)
}

// SyncURL retorna a URL de sincronização persistida ("" se não configurada).
func (s *Service) SyncURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncURL
}

// --- Mutação ---

// SetSyncURL persiste a URL de sincronização como string crua.
func (s *Service) SetSyncURL(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, KeySyncURL, url); err != nil {
		return err
	}
	s.syncURL = url
	return nil
}

// ReplaceCatalog substitui o catálogo inteiro e registra a entrada de
// sucesso no histórico — tudo-ou-nada, nunca merge parcial.
func (s *Service) ReplaceCatalog(ctx context.Context, products []domain.Product, entry domain.UpdateLog) error {
	return s.mutate(ctx, func(next *domain.AppState) {
		next.Products = append([]domain.Product(nil), products...)
		next.UpdateHistory = prependLog(next.UpdateHistory, entry)
	})
}

// AppendUpdateLog registra uma entrada no histórico sem tocar no catálogo
// (usado para falhas de sincronização).
func (s *Service) AppendUpdateLog(ctx context.Context, entry domain.UpdateLog) error {
	return s.mutate(ctx, func(next *domain.AppState) {
		next.UpdateHistory = prependLog(next.UpdateHistory, entry)
	})
}

// AddVendedor insere um nome no quadro, mantendo unicidade (comparação
// exata) e ordem lexicográfica.
func (s *Service) AddVendedor(ctx context.Context, name string) error {
	if name == "" {
		return apperror.NewValidationError("O nome do vendedor não pode ser vazio.")
	}

	var duplicate bool
	err := s.mutate(ctx, func(next *domain.AppState) {
		for _, v := range next.Vendedores {
			if v == name {
				duplicate = true
				return
			}
		}
		next.Vendedores = append(next.Vendedores, name)
		sort.Strings(next.Vendedores)
	})
	if err != nil {
		return err
	}
	if duplicate {
		return apperror.NewConflictError("Vendedor já cadastrado: " + name)
	}
	return nil
}

// RemoveVendedor remove o nome do quadro (comparação exata).
func (s *Service) RemoveVendedor(ctx context.Context, name string) error {
	return s.mutate(ctx, func(next *domain.AppState) {
		kept := next.Vendedores[:0]
		for _, v := range next.Vendedores {
			if v != name {
				kept = append(kept, v)
			}
		}
		next.Vendedores = kept
	})
}

// ReplaceVendedores substitui o quadro inteiro (usado pelo bootstrap quando
// o link compartilhado traz um quadro próprio).
func (s *Service) ReplaceVendedores(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return apperror.NewValidationError("O quadro de vendedores não pode ser vazio.")
	}
	return s.mutate(ctx, func(next *domain.AppState) {
		next.Vendedores = append([]string(nil), names...)
	})
}

// SetWhatsApp atualiza a configuração de mensageria. Armazenada e servida,
// mas nunca disparada.
func (s *Service) SetWhatsApp(ctx context.Context, cfg domain.WhatsAppConfig) error {
	return s.mutate(ctx, func(next *domain.AppState) {
		next.WhatsAppConfig = cfg
	})
}

// MutateRequests aplica fn sobre uma cópia da lista de pedidos e persiste o
// resultado. Usada pelo gerenciador de ciclo de vida dos pedidos.
func (s *Service) MutateRequests(ctx context.Context, fn func(requests []domain.StockRequest) []domain.StockRequest) error {
	return s.mutate(ctx, func(next *domain.AppState) {
		next.Requests = fn(next.Requests)
	})
}
