package domain

// Rótulos usados no histórico para sincronizações sem nome de arquivo.
const (
	FonteSincronizacaoAutomatica = "Sincronização Automática"
	FonteSincronizacaoNuvem      = "Sincronização Nuvem"
)

// MaxUpdateHistory é o teto do histórico de atualizações: ao inserir a 21ª
// entrada, a mais antiga é descartada.
const MaxUpdateHistory = 20

// UpdateLogStatus é o resultado de uma tentativa de sincronização.
type UpdateLogStatus string

const (
	UpdateSuccess UpdateLogStatus = "success"
	UpdateError   UpdateLogStatus = "error"
)

// UpdateLog é uma entrada do histórico de sincronizações (append-only,
// mais recente primeiro, limitado a MaxUpdateHistory entradas).
type UpdateLog struct {
	ID           string          `json:"id"`
	Timestamp    string          `json:"timestamp"` // ISO 8601
	FileName     string          `json:"fileName"`  // Rótulo da fonte (URL, nome de arquivo ou rótulo fixo)
	RecordCount  int             `json:"recordCount"`
	Status       UpdateLogStatus `json:"status"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}
