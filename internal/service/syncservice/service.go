package syncservice

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"painelestoque/internal/catalog"
	"painelestoque/internal/csv"
	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// Parser define o contrato de tokenização de CSV que o motor de
// sincronização consome como caixa-preta (download de URL ou texto literal).
type Parser interface {
	Parse(ctx context.Context, source csv.Source) ([]csv.Record, error)
}

// AppState define o que o motor precisa do estado persistente: substituição
// atômica do catálogo e registro de entradas no histórico.
type AppState interface {
	ReplaceCatalog(ctx context.Context, products []domain.Product, entry domain.UpdateLog) error
	AppendUpdateLog(ctx context.Context, entry domain.UpdateLog) error
	SyncURL() string
}

// Service é o motor de sincronização: baixa/tokeniza a fonte, normaliza e
// substitui o catálogo inteiro. Em qualquer falha (download, CSV ilegível,
// zero registros válidos) o catálogo anterior fica intocado e apenas uma
// entrada de erro é registrada no histórico.
type Service struct {
	parser Parser
	state  AppState
	logger logger.Logger

	// Apenas uma sincronização em voo por vez. No sistema original isso era
	// um botão desabilitado na UI; aqui o contrato de chamador único é
	// aplicado na borda do serviço.
	busy atomic.Bool
}

// NewService cria e retorna uma nova instância do motor de sincronização.
func NewService(parser Parser, state AppState, log logger.Logger) *Service {
	return &Service{parser: parser, state: state, logger: log}
}

// Sync executa um ciclo completo: parse -> normalização -> substituição.
// Retorna a quantidade de produtos normalizados.
func (s *Service) Sync(ctx context.Context, source csv.Source) (int, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return 0, apperror.NewConflictError("Já existe uma sincronização em andamento.")
	}
	defer s.busy.Store(false)

	label := source.Label
	if label == "" {
		label = domain.FonteSincronizacaoNuvem
	}

	s.logger.Info("Iniciando sincronização do catálogo.", map[string]interface{}{"fonte": label})

	rows, err := s.parser.Parse(ctx, source)
	if err != nil {
		s.logger.Error("Falha ao processar a fonte CSV.", err)
		s.recordFailure(ctx, label, err.Error())
		return 0, apperror.NewValidationError(fmt.Sprintf("Falha ao processar a fonte CSV: %v", err))
	}

	products := catalog.Normalize(rows, time.Now())
	if len(products) == 0 {
		s.logger.Warn("Sincronização sem registros válidos; catálogo mantido.", map[string]interface{}{"fonte": label})
		s.recordFailure(ctx, label, "Nenhum dado válido")
		return 0, apperror.NewValidationError("Nenhum dado válido encontrado na fonte CSV.")
	}

	entry := domain.UpdateLog{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		FileName:    label,
		RecordCount: len(products),
		Status:      domain.UpdateSuccess,
	}

	if err := s.state.ReplaceCatalog(ctx, products, entry); err != nil {
		s.logger.Error("Falha ao persistir o catálogo sincronizado.", err)
		return 0, err
	}

	s.logger.Info("Catálogo substituído com sucesso.", map[string]interface{}{
		"fonte":    label,
		"produtos": len(products),
	})

	return len(products), nil
}

// SyncFromStoredURL dispara a sincronização contra a URL persistida pelo
// administrador (a atualização manual do painel).
func (s *Service) SyncFromStoredURL(ctx context.Context) (int, error) {
	url := s.state.SyncURL()
	if url == "" {
		return 0, apperror.NewNotFoundError("Nenhum link de sincronização configurado pelo administrador.")
	}
	return s.Sync(ctx, csv.Source{URL: url, Label: domain.FonteSincronizacaoAutomatica})
}

// recordFailure registra a entrada de erro no histórico. A falha do próprio
// registro é apenas logada: o erro principal já vai para o chamador.
func (s *Service) recordFailure(ctx context.Context, label, message string) {
	entry := domain.UpdateLog{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		FileName:     label,
		RecordCount:  0,
		Status:       domain.UpdateError,
		ErrorMessage: message,
	}
	if err := s.state.AppendUpdateLog(ctx, entry); err != nil {
		s.logger.Error("Falha ao registrar erro de sincronização no histórico.", err)
	}
}
