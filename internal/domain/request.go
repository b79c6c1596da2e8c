package domain

// RequestType é o tipo do pedido de reposição.
type RequestType string

const (
	TipoApostaNaVenda  RequestType = "Aposta na Venda"
	TipoVendaGarantida RequestType = "Venda Garantida"
)

// UnitType é a unidade de medida do pedido.
type UnitType string

const (
	UnidadeUN  UnitType = "UN"
	UnidadeCX  UnitType = "CX"
	UnidadeDP  UnitType = "DP"
	UnidadePCT UnitType = "PCT"
	UnidadePT  UnitType = "PT"
	UnidadeSC  UnitType = "SC"
	UnidadeFD  UnitType = "FD"
)

// RequestStatus é o estado do pedido no fluxo de aprovação.
// Transição: Pendente -> {Aprovado, Recusado}, feita apenas pelo admin.
type RequestStatus string

const (
	StatusPendente RequestStatus = "Pendente"
	StatusAprovado RequestStatus = "Aprovado"
	StatusRecusado RequestStatus = "Recusado"
)

// ValidUnit informa se a unidade pertence ao conjunto aceito.
func ValidUnit(u UnitType) bool {
	switch u {
	case UnidadeUN, UnidadeCX, UnidadeDP, UnidadePCT, UnidadePT, UnidadeSC, UnidadeFD:
		return true
	}
	return false
}

// ValidRequestType informa se o tipo de pedido é conhecido.
func ValidRequestType(t RequestType) bool {
	return t == TipoApostaNaVenda || t == TipoVendaGarantida
}

// StockRequest é um pedido de reposição/alocação de estoque enviado por um
// vendedor. Os campos Product* são um snapshot do produto no momento do
// envio e não são re-sincronizados se o catálogo mudar depois.
type StockRequest struct {
	ID              string        `json:"id"`
	ProductID       string        `json:"productId"`
	ProductName     string        `json:"productName"`
	ProductCode     string        `json:"productCode"`
	ProductSabor    string        `json:"productSabor"`
	Quantidade      int           `json:"quantidade"`
	Unidade         UnitType      `json:"unidade"`
	Tipo            RequestType   `json:"tipo"`
	Solicitante     string        `json:"solicitante"`
	Observacoes     string        `json:"observacoes,omitempty"`
	IsValidadeCurta bool          `json:"isValidadeCurta"`
	DataSolicitacao string        `json:"dataSolicitacao"` // ISO 8601, imutável após a criação
	Status          RequestStatus `json:"status"`
}
