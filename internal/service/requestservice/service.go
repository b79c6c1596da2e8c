package requestservice

import (
	"context"
	"fmt"
	"time"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// AppState define o que o gerenciador de pedidos precisa do estado
// persistente: leitura e mutação copy-on-write da lista de pedidos.
type AppState interface {
	Requests() []domain.StockRequest
	MutateRequests(ctx context.Context, fn func(requests []domain.StockRequest) []domain.StockRequest) error
}

// Service implementa o ciclo de vida dos pedidos de reposição. Todas as
// operações produzem uma lista nova (nunca mutação in-place) e todas as
// comparações de id são feitas como string.
type Service struct {
	state  AppState
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do gerenciador de pedidos.
func NewService(state AppState, log logger.Logger) *Service {
	return &Service{state: state, logger: log}
}

// List retorna os pedidos, opcionalmente filtrados por solicitante
// (comparação exata, case-sensitive).
func (s *Service) List(solicitante string) []domain.StockRequest {
	requests := s.state.Requests()
	if solicitante == "" {
		return requests
	}

	filtered := make([]domain.StockRequest, 0, len(requests))
	for _, r := range requests {
		if r.Solicitante == solicitante {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Submit valida e insere um novo pedido no topo da lista. Um id vazio é
// preenchido com a forma sintética baseada em tempo do sistema original.
func (s *Service) Submit(ctx context.Context, req domain.StockRequest) (domain.StockRequest, error) {
	if req.Solicitante == "" {
		return domain.StockRequest{}, apperror.NewValidationError("O solicitante do pedido é obrigatório.")
	}
	if req.Quantidade < 1 {
		return domain.StockRequest{}, apperror.NewValidationError("A quantidade do pedido deve ser de pelo menos 1.")
	}
	if !domain.ValidUnit(req.Unidade) {
		return domain.StockRequest{}, apperror.NewValidationError(fmt.Sprintf("Unidade desconhecida: %q.", req.Unidade))
	}
	if !domain.ValidRequestType(req.Tipo) {
		return domain.StockRequest{}, apperror.NewValidationError(fmt.Sprintf("Tipo de pedido desconhecido: %q.", req.Tipo))
	}

	if req.ID == "" {
		req.ID = fmt.Sprintf("req-%d", time.Now().UnixMilli())
	}
	if req.DataSolicitacao == "" {
		req.DataSolicitacao = time.Now().UTC().Format(time.RFC3339)
	}
	req.Status = domain.StatusPendente

	err := s.state.MutateRequests(ctx, func(requests []domain.StockRequest) []domain.StockRequest {
		return append([]domain.StockRequest{req}, requests...)
	})
	if err != nil {
		return domain.StockRequest{}, err
	}

	s.logger.Info("Pedido registrado.", map[string]interface{}{
		"id":          req.ID,
		"solicitante": req.Solicitante,
		"produto":     req.ProductName,
	})

	return req, nil
}

// Update substitui por inteiro o pedido cujo id casa com o informado.
// Id inexistente é um no-op silencioso, como no sistema original.
func (s *Service) Update(ctx context.Context, req domain.StockRequest) error {
	if req.ID == "" {
		return apperror.NewValidationError("O id do pedido é obrigatório para edição.")
	}

	return s.state.MutateRequests(ctx, func(requests []domain.StockRequest) []domain.StockRequest {
		next := make([]domain.StockRequest, len(requests))
		for i, r := range requests {
			if r.ID == req.ID {
				next[i] = req
			} else {
				next[i] = r
			}
		}
		return next
	})
}

// SetStatus troca apenas o campo status do pedido informado. A transição é
// restrita ao admin na borda HTTP; o caráter terminal de Aprovado/Recusado
// não é verificado aqui, espelhando o comportamento original.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	switch status {
	case domain.StatusPendente, domain.StatusAprovado, domain.StatusRecusado:
	default:
		return apperror.NewValidationError(fmt.Sprintf("Status de pedido desconhecido: %q.", status))
	}

	return s.state.MutateRequests(ctx, func(requests []domain.StockRequest) []domain.StockRequest {
		next := make([]domain.StockRequest, len(requests))
		for i, r := range requests {
			if r.ID == id {
				r.Status = status
			}
			next[i] = r
		}
		return next
	})
}

// Delete remove o pedido cujo id casa com o informado.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.state.MutateRequests(ctx, func(requests []domain.StockRequest) []domain.StockRequest {
		next := make([]domain.StockRequest, 0, len(requests))
		for _, r := range requests {
			if r.ID != id {
				next = append(next, r)
			}
		}
		return next
	})
}

// ClearByRequester remove todos os pedidos do solicitante informado
// (comparação exata, case-sensitive); os demais ficam intocados.
func (s *Service) ClearByRequester(ctx context.Context, solicitante string) error {
	if solicitante == "" {
		return apperror.NewValidationError("O solicitante é obrigatório para limpeza de pedidos.")
	}

	return s.state.MutateRequests(ctx, func(requests []domain.StockRequest) []domain.StockRequest {
		next := make([]domain.StockRequest, 0, len(requests))
		for _, r := range requests {
			if r.Solicitante != solicitante {
				next = append(next, r)
			}
		}
		return next
	})
}

// ClearAll esvazia a lista de pedidos. Operação de admin; a confirmação
// explícita é exigida na borda HTTP.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.state.MutateRequests(ctx, func(requests []domain.StockRequest) []domain.StockRequest {
		return []domain.StockRequest{}
	})
}
