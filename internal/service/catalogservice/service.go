package catalogservice

import (
	"strings"
	"time"

	"painelestoque/internal/catalog"
	"painelestoque/internal/domain"
	"painelestoque/internal/pkg/logger"
)

// AppState define o que o serviço de catálogo precisa do estado persistente.
type AppState interface {
	Products() []domain.Product
	Requests() []domain.StockRequest
	UpdateHistory() []domain.UpdateLog
}

// Stats é o resumo exibido nos cartões do painel.
type Stats struct {
	TotalProdutos        int     `json:"totalProdutos"`
	PedidosPendentes     int     `json:"pedidosPendentes"`
	PedidosAprovados     int     `json:"pedidosAprovados"`
	PedidosRecusados     int     `json:"pedidosRecusados"`
	PedidosUltimos7Dias  int     `json:"pedidosUltimos7Dias"`
	UltimaAtualizacao    string  `json:"ultimaAtualizacao,omitempty"`
	MediaDiferencaMarsil float64 `json:"mediaDiferencaMarsil"`
}

// Service expõe busca e estatísticas sobre o catálogo sincronizado.
type Service struct {
	state  AppState
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do serviço de catálogo.
func NewService(state AppState, log logger.Logger) *Service {
	return &Service{state: state, logger: log}
}

// Search filtra o catálogo por nome e código, ambos por substring
// case-insensitive. Filtros vazios casam com tudo.
func (s *Service) Search(filter domain.ProductFilter) []domain.Product {
	products := s.state.Products()

	nome := strings.ToLower(strings.TrimSpace(filter.Nome))
	codigo := strings.ToLower(strings.TrimSpace(filter.Codigo))
	if nome == "" && codigo == "" {
		return products
	}

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		matchNome := nome == "" || strings.Contains(strings.ToLower(p.Produto), nome)
		matchCodigo := codigo == "" || strings.Contains(strings.ToLower(p.Codigo), codigo)
		if matchNome && matchCodigo {
			matched = append(matched, p)
		}
	}
	return matched
}

// FindForRequest localiza o produto por trás de um pedido: primeiro pelo id
// do snapshot, com fallback pelo código — os ids do catálogo são
// regenerados a cada sincronização e podem não resolver mais.
func (s *Service) FindForRequest(productID, productCode string) (domain.Product, bool) {
	products := s.state.Products()

	for _, p := range products {
		if p.ID == productID {
			return p, true
		}
	}
	if productCode != "" {
		for _, p := range products {
			if p.Codigo == productCode {
				return p, true
			}
		}
	}
	return domain.Product{}, false
}

// Stats monta o resumo do painel a partir do estado atual.
func (s *Service) Stats(now time.Time) Stats {
	products := s.state.Products()
	requests := s.state.Requests()
	history := s.state.UpdateHistory()

	stats := Stats{TotalProdutos: len(products)}

	for _, r := range requests {
		switch r.Status {
		case domain.StatusPendente:
			stats.PedidosPendentes++
		case domain.StatusAprovado:
			stats.PedidosAprovados++
		case domain.StatusRecusado:
			stats.PedidosRecusados++
		}
		if catalog.WithinLast7Days(r.DataSolicitacao, now) {
			stats.PedidosUltimos7Dias++
		}
	}

	if len(history) > 0 {
		stats.UltimaAtualizacao = history[0].Timestamp
	}

	if len(products) > 0 {
		var sum float64
		for _, p := range products {
			sum += catalog.DiffPercent(p.EstoqueMarsil, p.EstoqueBoraceia)
		}
		stats.MediaDiferencaMarsil = sum / float64(len(products))
	}

	return stats
}
