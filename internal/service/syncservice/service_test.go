package syncservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"painelestoque/internal/csv"
	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
	"painelestoque/internal/service/syncservice"
)

// MockParser é uma implementação mock da interface Parser.
type MockParser struct {
	mock.Mock
}

func (m *MockParser) Parse(ctx context.Context, source csv.Source) ([]csv.Record, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]csv.Record), args.Error(1)
}

// MockAppState é uma implementação mock da interface AppState.
type MockAppState struct {
	mock.Mock
}

func (m *MockAppState) ReplaceCatalog(ctx context.Context, products []domain.Product, entry domain.UpdateLog) error {
	args := m.Called(ctx, products, entry)
	return args.Error(0)
}

func (m *MockAppState) AppendUpdateLog(ctx context.Context, entry domain.UpdateLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAppState) SyncURL() string {
	args := m.Called()
	return args.String(0)
}

func sheetRecord(produto, marsil string) csv.Record {
	return csv.Record{
		Keys:   []string{"Produto", "Marsil"},
		Values: map[string]string{"Produto": produto, "Marsil": marsil},
	}
}

// TestSync_Success testa o ciclo completo: parse, normalização e substituição
// do catálogo com entrada de sucesso no histórico.
func TestSync_Success(t *testing.T) {
	mockParser := new(MockParser)
	mockState := new(MockAppState)
	svc := syncservice.NewService(mockParser, mockState, logger.NewLogger("error"))

	rows := []csv.Record{sheetRecord("Biscoito X", "10"), sheetRecord("Suco Y", "3")}
	mockParser.On("Parse", mock.Anything, mock.AnythingOfType("csv.Source")).Return(rows, nil)

	mockState.On("ReplaceCatalog", mock.Anything, mock.AnythingOfType("[]domain.Product"), mock.MatchedBy(func(entry domain.UpdateLog) bool {
		return entry.Status == domain.UpdateSuccess &&
			entry.RecordCount == 2 &&
			entry.FileName == domain.FonteSincronizacaoNuvem &&
			entry.ID != "" &&
			entry.Timestamp != ""
	})).Return(nil)

	count, err := svc.Sync(context.Background(), csv.Source{URL: "https://exemplo.test/planilha.csv"})

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	mockParser.AssertExpectations(t)
	mockState.AssertExpectations(t)
}

// TestSync_CustomLabel testa que o rótulo informado na fonte vai para o
// histórico no lugar do rótulo padrão.
func TestSync_CustomLabel(t *testing.T) {
	mockParser := new(MockParser)
	mockState := new(MockAppState)
	svc := syncservice.NewService(mockParser, mockState, logger.NewLogger("error"))

	mockParser.On("Parse", mock.Anything, mock.Anything).Return([]csv.Record{sheetRecord("Biscoito X", "10")}, nil)
	mockState.On("ReplaceCatalog", mock.Anything, mock.Anything, mock.MatchedBy(func(entry domain.UpdateLog) bool {
		return entry.FileName == "estoque_maio.csv"
	})).Return(nil)

	_, err := svc.Sync(context.Background(), csv.Source{Text: "x", Label: "estoque_maio.csv"})

	assert.NoError(t, err)
	mockState.AssertExpectations(t)
}

// TestSync_ParseFailureKeepsCatalog testa que falha de parse não toca no
// catálogo e registra uma entrada de erro no histórico.
func TestSync_ParseFailureKeepsCatalog(t *testing.T) {
	mockParser := new(MockParser)
	mockState := new(MockAppState)
	svc := syncservice.NewService(mockParser, mockState, logger.NewLogger("error"))

	mockParser.On("Parse", mock.Anything, mock.Anything).Return(nil, errors.New("download falhou"))
	mockState.On("AppendUpdateLog", mock.Anything, mock.MatchedBy(func(entry domain.UpdateLog) bool {
		return entry.Status == domain.UpdateError && entry.RecordCount == 0 && entry.ErrorMessage != ""
	})).Return(nil)

	_, err := svc.Sync(context.Background(), csv.Source{URL: "https://exemplo.test/planilha.csv"})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockState.AssertNotCalled(t, "ReplaceCatalog", mock.Anything, mock.Anything, mock.Anything)
	mockState.AssertExpectations(t)
}

// TestSync_NoValidRowsKeepsCatalog testa a planilha sem nenhum produto com
// nome: o catálogo anterior fica intocado e o erro "Nenhum dado válido" entra
// no histórico.
func TestSync_NoValidRowsKeepsCatalog(t *testing.T) {
	mockParser := new(MockParser)
	mockState := new(MockAppState)
	svc := syncservice.NewService(mockParser, mockState, logger.NewLogger("error"))

	rows := []csv.Record{sheetRecord("", "10"), sheetRecord("   ", "3")}
	mockParser.On("Parse", mock.Anything, mock.Anything).Return(rows, nil)
	mockState.On("AppendUpdateLog", mock.Anything, mock.MatchedBy(func(entry domain.UpdateLog) bool {
		return entry.Status == domain.UpdateError && entry.ErrorMessage == "Nenhum dado válido"
	})).Return(nil)

	_, err := svc.Sync(context.Background(), csv.Source{Text: "x"})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "Nenhum dado válido")
	mockState.AssertNotCalled(t, "ReplaceCatalog", mock.Anything, mock.Anything, mock.Anything)
	mockState.AssertExpectations(t)
}

// TestSync_PersistFailurePropagates testa a propagação de falha do estado.
func TestSync_PersistFailurePropagates(t *testing.T) {
	mockParser := new(MockParser)
	mockState := new(MockAppState)
	svc := syncservice.NewService(mockParser, mockState, logger.NewLogger("error"))

	mockParser.On("Parse", mock.Anything, mock.Anything).Return([]csv.Record{sheetRecord("Biscoito X", "10")}, nil)
	persistErr := apperror.NewDBError("falha de conexão com o DB", errors.New("timeout"))
	mockState.On("ReplaceCatalog", mock.Anything, mock.Anything, mock.Anything).Return(persistErr)

	_, err := svc.Sync(context.Background(), csv.Source{Text: "x"})

	assert.Error(t, err)
	assert.Equal(t, persistErr, err)
}

// TestSyncFromStoredURL_NoURLConfigured testa a atualização manual sem link
// configurado pelo administrador.
func TestSyncFromStoredURL_NoURLConfigured(t *testing.T) {
	mockParser := new(MockParser)
	mockState := new(MockAppState)
	svc := syncservice.NewService(mockParser, mockState, logger.NewLogger("error"))

	mockState.On("SyncURL").Return("")

	_, err := svc.SyncFromStoredURL(context.Background())

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockParser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

// TestSyncFromStoredURL_UsesStoredURLWithAutoLabel testa o uso da URL
// persistida e o rótulo de sincronização automática.
func TestSyncFromStoredURL_UsesStoredURLWithAutoLabel(t *testing.T) {
	mockParser := new(MockParser)
	mockState := new(MockAppState)
	svc := syncservice.NewService(mockParser, mockState, logger.NewLogger("error"))

	mockState.On("SyncURL").Return("https://exemplo.test/planilha.csv")
	mockParser.On("Parse", mock.Anything, mock.MatchedBy(func(source csv.Source) bool {
		return source.URL == "https://exemplo.test/planilha.csv" && source.Label == domain.FonteSincronizacaoAutomatica
	})).Return([]csv.Record{sheetRecord("Biscoito X", "10")}, nil)
	mockState.On("ReplaceCatalog", mock.Anything, mock.Anything, mock.MatchedBy(func(entry domain.UpdateLog) bool {
		return entry.FileName == domain.FonteSincronizacaoAutomatica
	})).Return(nil)

	count, err := svc.SyncFromStoredURL(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	mockParser.AssertExpectations(t)
	mockState.AssertExpectations(t)
}

// blockingParser segura o Parse até ser liberado, para forçar duas
// sincronizações sobrepostas.
type blockingParser struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingParser) Parse(ctx context.Context, source csv.Source) ([]csv.Record, error) {
	close(p.started)
	<-p.release
	return nil, errors.New("liberado")
}

// TestSync_RejectsOverlappingSync testa que uma segunda sincronização em voo
// é recusada com conflito, sem tocar no estado.
func TestSync_RejectsOverlappingSync(t *testing.T) {
	parser := &blockingParser{started: make(chan struct{}), release: make(chan struct{})}
	mockState := new(MockAppState)
	mockState.On("AppendUpdateLog", mock.Anything, mock.Anything).Return(nil)
	svc := syncservice.NewService(parser, mockState, logger.NewLogger("error"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Sync(context.Background(), csv.Source{Text: "x"})
	}()

	<-parser.started
	_, err := svc.Sync(context.Background(), csv.Source{Text: "y"})
	assert.IsType(t, &apperror.ConflictError{}, err)

	close(parser.release)
	<-done
}
