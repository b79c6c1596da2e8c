package domain

// Product representa um item do catálogo sincronizado a partir da planilha CSV.
// O catálogo é substituído por inteiro a cada sincronização bem-sucedida: não
// existe merge parcial, e o ID é regenerado a cada lote (índice da linha +
// timestamp da ingestão). Referências duradouras devem usar o Codigo.
type Product struct {
	ID              string `json:"id"`
	Fornecedor      string `json:"fornecedor"`
	Codigo          string `json:"codigo"`
	Situacao        string `json:"situacao"`
	Comprador       string `json:"comprador"`
	Produto         string `json:"produto"` // Nome do produto (obrigatório; linhas sem nome são descartadas)
	Sabor           string `json:"sabor"`
	Embalagem       string `json:"embalagem"`
	EstoqueMarsil   int    `json:"estoqueMarsil"`
	EstoqueBoraceia int    `json:"estoqueBoraceia"`
}

// ProductFilter define os parâmetros de busca do catálogo (nome e código,
// ambos por substring case-insensitive).
type ProductFilter struct {
	Nome   string
	Codigo string
}
