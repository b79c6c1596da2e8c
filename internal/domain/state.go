package domain

// AppState é a fonte única de verdade da aplicação: catálogo, pedidos,
// vendedores, configuração de mensageria e histórico de sincronizações.
// Toda mutação gera um novo estado completo que é espelhado no armazenamento
// durável; nunca há escrita parcial visível.
type AppState struct {
	Products       []Product      `json:"products"`
	Requests       []StockRequest `json:"requests"`
	Vendedores     []string       `json:"vendedores"`
	WhatsAppConfig WhatsAppConfig `json:"whatsappConfig"`
	UpdateHistory  []UpdateLog    `json:"updateHistory"`
}

// DefaultVendedores é o quadro de vendedores usado quando nada foi
// persistido (ou quando o valor persistido está corrompido).
var DefaultVendedores = []string{
	"ADALTON LUIZ", "AIRTON DONIZETTI", "ANA CAMARGO", "ANA PAULA", "CARLOS ROSEIRO",
	"DOUGLAS PITELLI", "EDMILSON LEAL", "FERNANDO APARECIDO", "GUSTAVO PAULINO",
	"JOAO JOSE", "JOAO MANUEL", "LEONARDO APARECIDO", "LUIS ALEXANDRE",
	"MARCELO SANTOS", "MARCO AURELIO", "NIVALDO NEVES", "ROSIMAR FREITAS",
	"ROZIMARA SOUZA", "TELMA CRISTINA", "WASHINGTON BELMIRO", "OUTRO",
}
