// Package contrato implementa o ciclo de vida do contrato de corretagem:
// preenchimento em quatro páginas, vendedores e compradores como listas
// ordenadas, plano de parcelas do negócio e finalização.
package contrato

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status do contrato. Todo contrato nasce rascunho; finalizado marca o
// contrato emitido e bloqueia a exclusão.
const (
	StatusRascunho = "DRAFT"
	StatusFinal    = "FINAL"
)

// Contrato é o formulário completo. Campos de texto vazios significam
// "ainda não preenchido"; valores monetários usam ponteiro para distinguir
// "nunca informado" de zero.
type Contrato struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Status      string `gorm:"size:20;not null;default:DRAFT" json:"status"`
	PaginaAtual int    `gorm:"not null;default:1" json:"paginaAtual"`

	// Páginas 1 e 2: listas ordenadas de partes
	Vendedores  []ContratoVendedor  `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"vendedores"`
	Compradores []ContratoComprador `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"compradores"`

	// Página 3: imóvel objeto do negócio
	ImovelMatricula          string `gorm:"size:50" json:"imovelMatricula,omitempty"`
	ImovelLivro              string `gorm:"size:50" json:"imovelLivro,omitempty"`
	ImovelOficio             string `gorm:"size:100" json:"imovelOficio,omitempty"`
	ImovelProprietario       string `gorm:"size:200" json:"imovelProprietario,omitempty"`
	ImovelMomentoPosse       string `gorm:"size:200" json:"imovelMomentoPosse,omitempty"`
	ImovelPrazoTransferencia string `gorm:"size:200" json:"imovelPrazoTransferencia,omitempty"`
	ImovelPrazoEscritura     string `gorm:"size:200" json:"imovelPrazoEscritura,omitempty"`
	ImovelDescricao          string `gorm:"type:text" json:"imovelDescricao,omitempty"`

	// Página 3: imóvel dado em permuta
	PermutaImovelMatricula          string `gorm:"size:50" json:"permutaImovelMatricula,omitempty"`
	PermutaImovelLivro              string `gorm:"size:50" json:"permutaImovelLivro,omitempty"`
	PermutaImovelOficio             string `gorm:"size:100" json:"permutaImovelOficio,omitempty"`
	PermutaImovelProprietario       string `gorm:"size:200" json:"permutaImovelProprietario,omitempty"`
	PermutaImovelMomentoPosse       string `gorm:"size:200" json:"permutaImovelMomentoPosse,omitempty"`
	PermutaImovelPrazoTransferencia string `gorm:"size:200" json:"permutaImovelPrazoTransferencia,omitempty"`
	PermutaImovelPrazoEscritura     string `gorm:"size:200" json:"permutaImovelPrazoEscritura,omitempty"`
	PermutaImovelDescricao          string `gorm:"type:text" json:"permutaImovelDescricao,omitempty"`

	// Página 3: veículo dado em permuta
	VeiculoMarca       string `gorm:"size:100" json:"veiculoMarca,omitempty"`
	VeiculoAno         string `gorm:"size:10" json:"veiculoAno,omitempty"`
	VeiculoModelo      string `gorm:"size:100" json:"veiculoModelo,omitempty"`
	VeiculoPlaca       string `gorm:"size:10" json:"veiculoPlaca,omitempty"`
	VeiculoChassi      string `gorm:"size:50" json:"veiculoChassi,omitempty"`
	VeiculoCor         string `gorm:"size:50" json:"veiculoCor,omitempty"`
	VeiculoMotor       string `gorm:"size:50" json:"veiculoMotor,omitempty"`
	VeiculoRenavam     string `gorm:"size:20" json:"veiculoRenavam,omitempty"`
	VeiculoDataEntrega string `gorm:"size:10" json:"veiculoDataEntrega,omitempty"` // yyyy-MM-dd
	VeiculoKm          *int   `json:"veiculoKm,omitempty"`

	// Página 4: negócio
	NegocioValorTotal          *float64 `gorm:"type:numeric(15,2)" json:"negocioValorTotal"`
	NegocioValorEntrada        *float64 `gorm:"type:numeric(15,2)" json:"negocioValorEntrada,omitempty"`
	NegocioFormaPagamento      string   `gorm:"size:500" json:"negocioFormaPagamento,omitempty"`
	NegocioNumParcelas         *int     `json:"negocioNumParcelas,omitempty"`
	NegocioValorParcela        *float64 `gorm:"type:numeric(15,2)" json:"negocioValorParcela,omitempty"`
	NegocioVencimentos         string   `gorm:"size:500" json:"negocioVencimentos,omitempty"`
	NegocioDiaVencimento       *int     `json:"negocioDiaVencimento,omitempty"` // 1 a 31; fora disso usa o dia da primeira parcela
	NegocioValorImovelPermuta  *float64 `gorm:"type:numeric(15,2)" json:"negocioValorImovelPermuta,omitempty"`
	NegocioValorVeiculoPermuta *float64 `gorm:"type:numeric(15,2)" json:"negocioValorVeiculoPermuta,omitempty"`
	NegocioValorFinanciamento  *float64 `gorm:"type:numeric(15,2)" json:"negocioValorFinanciamento,omitempty"`
	NegocioPrazoPagamento      string   `gorm:"size:200" json:"negocioPrazoPagamento,omitempty"`
	NegocioDataPrimeiraParcela string   `gorm:"size:10" json:"negocioDataPrimeiraParcela,omitempty"` // yyyy-MM-dd

	// Plano de parcelas aceito, como foi gerado ([]parcela.Parcela)
	NegocioParcelas datatypes.JSON `gorm:"type:jsonb" json:"-"`

	// Página 4: conta bancária
	ContaTitular string `gorm:"size:200" json:"contaTitular,omitempty"`
	ContaBanco   string `gorm:"size:100" json:"contaBanco,omitempty"`
	ContaAgencia string `gorm:"size:20" json:"contaAgencia,omitempty"`
	ContaPix     string `gorm:"size:200" json:"contaPix,omitempty"`

	// Página 4: honorários
	HonorariosValor          *float64 `gorm:"type:numeric(15,2)" json:"honorariosValor,omitempty"`
	HonorariosFormaPagamento string   `gorm:"size:200" json:"honorariosFormaPagamento,omitempty"`
	HonorariosDataPagamento  string   `gorm:"size:10" json:"honorariosDataPagamento,omitempty"` // yyyy-MM-dd

	// Página 4: observações e assinaturas
	Observacoes          string `gorm:"type:text" json:"observacoes,omitempty"`
	DataContrato         string `gorm:"size:10" json:"dataContrato,omitempty"` // yyyy-MM-dd
	AssinaturaCorretor   string `gorm:"size:200" json:"assinaturaCorretor,omitempty"`
	AssinaturaAgenciador string `gorm:"size:200" json:"assinaturaAgenciador,omitempty"`
	AssinaturaGestor     string `gorm:"size:200" json:"assinaturaGestor,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Contrato) TableName() string {
	return "contratos"
}

// ContratoVendedor é um vendedor do contrato. Os campos de sócio só são
// preenchidos quando o documento é CNPJ.
type ContratoVendedor struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ContratoID uint `gorm:"not null;index" json:"-"`
	Ordem      int  `gorm:"not null;default:0" json:"ordem"`

	Nome      string `gorm:"size:200" json:"nome,omitempty"`
	Documento string `gorm:"size:20" json:"documento,omitempty"`
	Email     string `gorm:"size:150" json:"email,omitempty"`
	Telefone  string `gorm:"size:20" json:"telefone,omitempty"`
	Endereco  string `gorm:"size:500" json:"endereco,omitempty"`

	SocioNome          string `gorm:"size:200" json:"socioNome,omitempty"`
	SocioCpf           string `gorm:"size:14" json:"socioCpf,omitempty"`
	SocioNacionalidade string `gorm:"size:100" json:"socioNacionalidade,omitempty"`
	SocioProfissao     string `gorm:"size:100" json:"socioProfissao,omitempty"`
	SocioEstadoCivil   string `gorm:"size:50" json:"socioEstadoCivil,omitempty"`
	SocioRegimeBens    string `gorm:"size:100" json:"socioRegimeBens,omitempty"`
	SocioRg            string `gorm:"size:20" json:"socioRg,omitempty"`
	SocioCnh           string `gorm:"size:20" json:"socioCnh,omitempty"`
	SocioEmail         string `gorm:"size:150" json:"socioEmail,omitempty"`
	SocioTelefone      string `gorm:"size:20" json:"socioTelefone,omitempty"`
	SocioEndereco      string `gorm:"size:500" json:"socioEndereco,omitempty"`
}

func (ContratoVendedor) TableName() string {
	return "contrato_vendedores"
}

// ContratoComprador é um comprador do contrato. Os campos de cônjuge só são
// preenchidos quando o estado civil exige.
type ContratoComprador struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ContratoID uint `gorm:"not null;index" json:"-"`
	Ordem      int  `gorm:"not null;default:0" json:"ordem"`

	Nome          string `gorm:"size:200" json:"nome,omitempty"`
	Documento     string `gorm:"size:20" json:"documento,omitempty"`
	Nacionalidade string `gorm:"size:100" json:"nacionalidade,omitempty"`
	Profissao     string `gorm:"size:100" json:"profissao,omitempty"`
	EstadoCivil   string `gorm:"size:50" json:"estadoCivil,omitempty"`
	RegimeBens    string `gorm:"size:100" json:"regimeBens,omitempty"`
	Rg            string `gorm:"size:20" json:"rg,omitempty"`
	Cnh           string `gorm:"size:20" json:"cnh,omitempty"`
	Email         string `gorm:"size:150" json:"email,omitempty"`
	Telefone      string `gorm:"size:20" json:"telefone,omitempty"`
	Endereco      string `gorm:"size:500" json:"endereco,omitempty"`

	ConjugeNome          string `gorm:"size:200" json:"conjugeNome,omitempty"`
	ConjugeCpf           string `gorm:"size:14" json:"conjugeCpf,omitempty"`
	ConjugeNacionalidade string `gorm:"size:100" json:"conjugeNacionalidade,omitempty"`
	ConjugeProfissao     string `gorm:"size:100" json:"conjugeProfissao,omitempty"`
	ConjugeRg            string `gorm:"size:20" json:"conjugeRg,omitempty"`
}

func (ContratoComprador) TableName() string {
	return "contrato_compradores"
}

// Migrate cria as tabelas do contrato e das partes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{}, &ContratoVendedor{}, &ContratoComprador{})
}
