package stateservice_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
	"painelestoque/internal/service/stateservice"
)

// fakeStore é um Store em memória. Chaves ausentes retornam NotFoundError,
// como o repositório real; setErr simula falha de persistência.
type fakeStore struct {
	data   map[string]string
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", apperror.NewNotFoundError("chave de estado nunca persistida: " + key)
	}
	return value, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) seedJSON(t *testing.T, key string, value interface{}) {
	t.Helper()
	raw, err := json.Marshal(value)
	assert.NoError(t, err)
	f.data[key] = string(raw)
}

func newService(t *testing.T, store *fakeStore) *stateservice.Service {
	t.Helper()
	svc, err := stateservice.NewService(context.Background(), store, logger.NewLogger("error"))
	assert.NoError(t, err)
	return svc
}

// TestNewService_EmptyStoreFallsBackToDefaults testa a primeira subida, sem
// nada persistido: catálogo e pedidos vazios, quadro padrão, WhatsApp padrão.
func TestNewService_EmptyStoreFallsBackToDefaults(t *testing.T) {
	svc := newService(t, newFakeStore())

	assert.Empty(t, svc.Products())
	assert.Empty(t, svc.Requests())
	assert.Equal(t, domain.DefaultVendedores, svc.Vendedores())
	assert.Equal(t, domain.DefaultWhatsAppConfig(), svc.WhatsApp())
	assert.Empty(t, svc.UpdateHistory())
	assert.Empty(t, svc.SyncURL())
}

// TestNewService_RehydratesPersistedState testa a reidratação de valores já
// persistidos.
func TestNewService_RehydratesPersistedState(t *testing.T) {
	store := newFakeStore()
	store.seedJSON(t, stateservice.KeyProducts, []domain.Product{{ID: "p-0-1", Produto: "Biscoito X"}})
	store.seedJSON(t, stateservice.KeyVendedores, []string{"ANA", "BRUNO"})
	store.seedJSON(t, stateservice.KeyRequests, []domain.StockRequest{{ID: "req-1", Solicitante: "ANA"}})
	store.seedJSON(t, stateservice.KeyWhatsApp, domain.WhatsAppConfig{Enabled: false, PhoneNumber: "5511988887777"})
	store.data[stateservice.KeySyncURL] = "https://exemplo.test/planilha.csv"

	svc := newService(t, store)

	assert.Len(t, svc.Products(), 1)
	assert.Equal(t, []string{"ANA", "BRUNO"}, svc.Vendedores())
	assert.Len(t, svc.Requests(), 1)
	assert.False(t, svc.WhatsApp().Enabled)
	assert.Equal(t, "https://exemplo.test/planilha.csv", svc.SyncURL())
}

// TestNewService_CorruptValueFallsBackToDefault testa valor persistido
// corrompido: cai no padrão sem falhar a subida.
func TestNewService_CorruptValueFallsBackToDefault(t *testing.T) {
	store := newFakeStore()
	store.data[stateservice.KeyProducts] = "{isto não é json"
	store.data[stateservice.KeyVendedores] = "também não"

	svc := newService(t, store)

	assert.Empty(t, svc.Products())
	assert.Equal(t, domain.DefaultVendedores, svc.Vendedores())
}

// TestNewService_EmptyRosterKeepsDefault testa que um quadro persistido vazio
// não substitui o quadro padrão.
func TestNewService_EmptyRosterKeepsDefault(t *testing.T) {
	store := newFakeStore()
	store.seedJSON(t, stateservice.KeyVendedores, []string{})

	svc := newService(t, store)

	assert.Equal(t, domain.DefaultVendedores, svc.Vendedores())
}

// TestReplaceCatalog_ReplacesAndLogs testa a substituição atômica do catálogo
// com registro no histórico e persistência.
func TestReplaceCatalog_ReplacesAndLogs(t *testing.T) {
	store := newFakeStore()
	svc := newService(t, store)

	products := []domain.Product{{ID: "p-0-1", Produto: "Biscoito X"}}
	entry := domain.UpdateLog{ID: "log-1", Status: domain.UpdateSuccess, RecordCount: 1}

	assert.NoError(t, svc.ReplaceCatalog(context.Background(), products, entry))

	assert.Len(t, svc.Products(), 1)
	history := svc.UpdateHistory()
	assert.Len(t, history, 1)
	assert.Equal(t, "log-1", history[0].ID)

	// O espelho durável também foi atualizado.
	var persisted []domain.Product
	assert.NoError(t, json.Unmarshal([]byte(store.data[stateservice.KeyProducts]), &persisted))
	assert.Len(t, persisted, 1)
}

// TestReplaceCatalog_PersistFailureKeepsOldState testa que a falha de
// persistência deixa o estado em memória intocado.
func TestReplaceCatalog_PersistFailureKeepsOldState(t *testing.T) {
	store := newFakeStore()
	svc := newService(t, store)

	assert.NoError(t, svc.ReplaceCatalog(context.Background(), []domain.Product{{ID: "p-0-1", Produto: "Antigo"}}, domain.UpdateLog{ID: "log-1"}))

	store.setErr = errors.New("banco fora do ar")
	err := svc.ReplaceCatalog(context.Background(), []domain.Product{{ID: "p-0-2", Produto: "Novo"}}, domain.UpdateLog{ID: "log-2"})

	assert.Error(t, err)
	assert.Equal(t, "Antigo", svc.Products()[0].Produto)
	assert.Len(t, svc.UpdateHistory(), 1)
}

// TestUpdateHistory_CapsAtTwenty testa o teto do histórico: a 21ª entrada
// descarta a mais antiga, mantendo as mais recentes no topo.
func TestUpdateHistory_CapsAtTwenty(t *testing.T) {
	svc := newService(t, newFakeStore())

	for i := 1; i <= domain.MaxUpdateHistory+1; i++ {
		entry := domain.UpdateLog{ID: fmt.Sprintf("log-%d", i), Timestamp: time.Now().Format(time.RFC3339)}
		assert.NoError(t, svc.AppendUpdateLog(context.Background(), entry))
	}

	history := svc.UpdateHistory()
	assert.Len(t, history, domain.MaxUpdateHistory)
	assert.Equal(t, "log-21", history[0].ID)
	assert.Equal(t, "log-2", history[len(history)-1].ID)
}

// TestAddVendedor testa inserção, ordenação e rejeição de duplicata e vazio.
func TestAddVendedor(t *testing.T) {
	store := newFakeStore()
	store.seedJSON(t, stateservice.KeyVendedores, []string{"BRUNO", "DANIELA"})
	svc := newService(t, store)

	assert.NoError(t, svc.AddVendedor(context.Background(), "CARLA"))
	assert.Equal(t, []string{"BRUNO", "CARLA", "DANIELA"}, svc.Vendedores())

	err := svc.AddVendedor(context.Background(), "CARLA")
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, []string{"BRUNO", "CARLA", "DANIELA"}, svc.Vendedores())

	err = svc.AddVendedor(context.Background(), "")
	assert.IsType(t, &apperror.ValidationError{}, err)
}

// TestRemoveVendedor testa a remoção por comparação exata; nome ausente é
// silenciosamente ignorado.
func TestRemoveVendedor(t *testing.T) {
	store := newFakeStore()
	store.seedJSON(t, stateservice.KeyVendedores, []string{"ANA", "BRUNO"})
	svc := newService(t, store)

	assert.NoError(t, svc.RemoveVendedor(context.Background(), "ANA"))
	assert.Equal(t, []string{"BRUNO"}, svc.Vendedores())

	assert.NoError(t, svc.RemoveVendedor(context.Background(), "ninguém"))
	assert.Equal(t, []string{"BRUNO"}, svc.Vendedores())
}

// TestReplaceVendedores testa a substituição do quadro e a rejeição de lista vazia.
func TestReplaceVendedores(t *testing.T) {
	svc := newService(t, newFakeStore())

	assert.NoError(t, svc.ReplaceVendedores(context.Background(), []string{"ZÉ", "ANA"}))
	assert.Equal(t, []string{"ZÉ", "ANA"}, svc.Vendedores())

	err := svc.ReplaceVendedores(context.Background(), nil)
	assert.IsType(t, &apperror.ValidationError{}, err)
}

// TestSetSyncURL testa a persistência crua da URL de sincronização.
func TestSetSyncURL(t *testing.T) {
	store := newFakeStore()
	svc := newService(t, store)

	assert.NoError(t, svc.SetSyncURL(context.Background(), "https://exemplo.test/planilha.csv"))
	assert.Equal(t, "https://exemplo.test/planilha.csv", svc.SyncURL())
	assert.Equal(t, "https://exemplo.test/planilha.csv", store.data[stateservice.KeySyncURL])
}

// TestSetWhatsApp testa a troca da configuração de mensageria.
func TestSetWhatsApp(t *testing.T) {
	svc := newService(t, newFakeStore())

	cfg := domain.WhatsAppConfig{Enabled: false, PhoneNumber: "5511977776666"}
	assert.NoError(t, svc.SetWhatsApp(context.Background(), cfg))
	assert.Equal(t, cfg, svc.WhatsApp())
}

// TestMutateRequests testa a mutação da lista de pedidos via função.
func TestMutateRequests(t *testing.T) {
	svc := newService(t, newFakeStore())

	err := svc.MutateRequests(context.Background(), func(requests []domain.StockRequest) []domain.StockRequest {
		return append([]domain.StockRequest{{ID: "req-1"}}, requests...)
	})

	assert.NoError(t, err)
	assert.Len(t, svc.Requests(), 1)
}

// TestSnapshot_IsIndependentCopy testa que o snapshot não compartilha slices
// com o estado interno.
func TestSnapshot_IsIndependentCopy(t *testing.T) {
	svc := newService(t, newFakeStore())
	assert.NoError(t, svc.ReplaceCatalog(context.Background(), []domain.Product{{ID: "p-0-1", Produto: "Biscoito X"}}, domain.UpdateLog{ID: "log-1"}))

	snap := svc.Snapshot()
	snap.Products[0].Produto = "Alterado"

	assert.Equal(t, "Biscoito X", svc.Products()[0].Produto)
}
