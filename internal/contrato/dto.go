package contrato

import (
	"encoding/json"
	"regexp"

	"github.com/MarlonMartinss/advocacia/internal/parcela"
)

// ContratoRequest é o payload de criação e atualização. Campo ponteiro nulo
// significa "não enviado, preserve o valor atual"; as listas de vendedores,
// compradores e parcelas só substituem as salvas quando presentes no JSON.
type ContratoRequest struct {
	PaginaAtual *int `json:"paginaAtual"`

	Vendedores  []VendedorRequest  `json:"vendedores"`
	Compradores []CompradorRequest `json:"compradores"`

	ImovelMatricula          *string `json:"imovelMatricula"`
	ImovelLivro              *string `json:"imovelLivro"`
	ImovelOficio             *string `json:"imovelOficio"`
	ImovelProprietario       *string `json:"imovelProprietario"`
	ImovelMomentoPosse       *string `json:"imovelMomentoPosse"`
	ImovelPrazoTransferencia *string `json:"imovelPrazoTransferencia"`
	ImovelPrazoEscritura     *string `json:"imovelPrazoEscritura"`
	ImovelDescricao          *string `json:"imovelDescricao"`

	PermutaImovelMatricula          *string `json:"permutaImovelMatricula"`
	PermutaImovelLivro              *string `json:"permutaImovelLivro"`
	PermutaImovelOficio             *string `json:"permutaImovelOficio"`
	PermutaImovelProprietario       *string `json:"permutaImovelProprietario"`
	PermutaImovelMomentoPosse       *string `json:"permutaImovelMomentoPosse"`
	PermutaImovelPrazoTransferencia *string `json:"permutaImovelPrazoTransferencia"`
	PermutaImovelPrazoEscritura     *string `json:"permutaImovelPrazoEscritura"`
	PermutaImovelDescricao          *string `json:"permutaImovelDescricao"`

	VeiculoMarca       *string `json:"veiculoMarca"`
	VeiculoAno         *string `json:"veiculoAno"`
	VeiculoModelo      *string `json:"veiculoModelo"`
	VeiculoPlaca       *string `json:"veiculoPlaca"`
	VeiculoChassi      *string `json:"veiculoChassi"`
	VeiculoCor         *string `json:"veiculoCor"`
	VeiculoMotor       *string `json:"veiculoMotor"`
	VeiculoRenavam     *string `json:"veiculoRenavam"`
	VeiculoDataEntrega *string `json:"veiculoDataEntrega"`
	VeiculoKm          *int    `json:"veiculoKm"`

	NegocioValorTotal          *float64 `json:"negocioValorTotal"`
	NegocioValorEntrada        *float64 `json:"negocioValorEntrada"`
	NegocioFormaPagamento      *string  `json:"negocioFormaPagamento"`
	NegocioNumParcelas         *int     `json:"negocioNumParcelas"`
	NegocioValorParcela        *float64 `json:"negocioValorParcela"`
	NegocioVencimentos         *string  `json:"negocioVencimentos"`
	NegocioDiaVencimento       *int     `json:"negocioDiaVencimento"`
	NegocioValorImovelPermuta  *float64 `json:"negocioValorImovelPermuta"`
	NegocioValorVeiculoPermuta *float64 `json:"negocioValorVeiculoPermuta"`
	NegocioValorFinanciamento  *float64 `json:"negocioValorFinanciamento"`
	NegocioPrazoPagamento      *string  `json:"negocioPrazoPagamento"`
	NegocioDataPrimeiraParcela *string  `json:"negocioDataPrimeiraParcela"`

	// Plano de parcelas aceito pelo usuário; ausente preserva o salvo
	Parcelas []parcela.Parcela `json:"parcelas"`

	ContaTitular *string `json:"contaTitular"`
	ContaBanco   *string `json:"contaBanco"`
	ContaAgencia *string `json:"contaAgencia"`
	ContaPix     *string `json:"contaPix"`

	HonorariosValor          *float64 `json:"honorariosValor"`
	HonorariosFormaPagamento *string  `json:"honorariosFormaPagamento"`
	HonorariosDataPagamento  *string  `json:"honorariosDataPagamento"`

	Observacoes          *string `json:"observacoes"`
	DataContrato         *string `json:"dataContrato"`
	AssinaturaCorretor   *string `json:"assinaturaCorretor"`
	AssinaturaAgenciador *string `json:"assinaturaAgenciador"`
	AssinaturaGestor     *string `json:"assinaturaGestor"`
}

type VendedorRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Endereco  string `json:"endereco"`

	SocioNome          string `json:"socioNome"`
	SocioCpf           string `json:"socioCpf"`
	SocioNacionalidade string `json:"socioNacionalidade"`
	SocioProfissao     string `json:"socioProfissao"`
	SocioEstadoCivil   string `json:"socioEstadoCivil"`
	SocioRegimeBens    string `json:"socioRegimeBens"`
	SocioRg            string `json:"socioRg"`
	SocioCnh           string `json:"socioCnh"`
	SocioEmail         string `json:"socioEmail"`
	SocioTelefone      string `json:"socioTelefone"`
	SocioEndereco      string `json:"socioEndereco"`
}

type CompradorRequest struct {
	Nome          string `json:"nome"`
	Documento     string `json:"documento"`
	Nacionalidade string `json:"nacionalidade"`
	Profissao     string `json:"profissao"`
	EstadoCivil   string `json:"estadoCivil"`
	RegimeBens    string `json:"regimeBens"`
	Rg            string `json:"rg"`
	Cnh           string `json:"cnh"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone"`
	Endereco      string `json:"endereco"`

	ConjugeNome          string `json:"conjugeNome"`
	ConjugeCpf           string `json:"conjugeCpf"`
	ConjugeNacionalidade string `json:"conjugeNacionalidade"`
	ConjugeProfissao     string `json:"conjugeProfissao"`
	ConjugeRg            string `json:"conjugeRg"`
}

var naoDigitos = regexp.MustCompile(`\D`)

// apenasDigitos normaliza CPF/CNPJ removendo máscara.
func apenasDigitos(valor string) string {
	return naoDigitos.ReplaceAllString(valor, "")
}

// AplicarEm funde o request no contrato: campos enviados sobrescrevem, campos
// ausentes preservam. Valores de permuta ausentes viram zero. Devolve erro de
// validação quando os valores de permuta são inconsistentes.
func (req *ContratoRequest) AplicarEm(c *Contrato) error {
	if req.PaginaAtual != nil {
		c.PaginaAtual = *req.PaginaAtual
	}

	if req.Vendedores != nil {
		c.Vendedores = montarVendedores(c.ID, req.Vendedores)
	}
	if req.Compradores != nil {
		c.Compradores = montarCompradores(c.ID, req.Compradores)
	}

	aplicarTexto(&c.ImovelMatricula, req.ImovelMatricula)
	aplicarTexto(&c.ImovelLivro, req.ImovelLivro)
	aplicarTexto(&c.ImovelOficio, req.ImovelOficio)
	aplicarTexto(&c.ImovelProprietario, req.ImovelProprietario)
	aplicarTexto(&c.ImovelMomentoPosse, req.ImovelMomentoPosse)
	aplicarTexto(&c.ImovelPrazoTransferencia, req.ImovelPrazoTransferencia)
	aplicarTexto(&c.ImovelPrazoEscritura, req.ImovelPrazoEscritura)
	aplicarTexto(&c.ImovelDescricao, req.ImovelDescricao)

	aplicarTexto(&c.PermutaImovelMatricula, req.PermutaImovelMatricula)
	aplicarTexto(&c.PermutaImovelLivro, req.PermutaImovelLivro)
	aplicarTexto(&c.PermutaImovelOficio, req.PermutaImovelOficio)
	aplicarTexto(&c.PermutaImovelProprietario, req.PermutaImovelProprietario)
	aplicarTexto(&c.PermutaImovelMomentoPosse, req.PermutaImovelMomentoPosse)
	aplicarTexto(&c.PermutaImovelPrazoTransferencia, req.PermutaImovelPrazoTransferencia)
	aplicarTexto(&c.PermutaImovelPrazoEscritura, req.PermutaImovelPrazoEscritura)
	aplicarTexto(&c.PermutaImovelDescricao, req.PermutaImovelDescricao)

	aplicarTexto(&c.VeiculoMarca, req.VeiculoMarca)
	aplicarTexto(&c.VeiculoAno, req.VeiculoAno)
	aplicarTexto(&c.VeiculoModelo, req.VeiculoModelo)
	aplicarTexto(&c.VeiculoPlaca, req.VeiculoPlaca)
	aplicarTexto(&c.VeiculoChassi, req.VeiculoChassi)
	aplicarTexto(&c.VeiculoCor, req.VeiculoCor)
	aplicarTexto(&c.VeiculoMotor, req.VeiculoMotor)
	aplicarTexto(&c.VeiculoRenavam, req.VeiculoRenavam)
	aplicarTexto(&c.VeiculoDataEntrega, req.VeiculoDataEntrega)
	if req.VeiculoKm != nil {
		c.VeiculoKm = req.VeiculoKm
	}

	if req.NegocioValorTotal != nil {
		c.NegocioValorTotal = req.NegocioValorTotal
	}
	if req.NegocioValorEntrada != nil {
		c.NegocioValorEntrada = req.NegocioValorEntrada
	}
	aplicarTexto(&c.NegocioFormaPagamento, req.NegocioFormaPagamento)
	if req.NegocioNumParcelas != nil {
		c.NegocioNumParcelas = req.NegocioNumParcelas
	}
	if req.NegocioValorParcela != nil {
		c.NegocioValorParcela = req.NegocioValorParcela
	}
	aplicarTexto(&c.NegocioVencimentos, req.NegocioVencimentos)
	if req.NegocioDiaVencimento != nil {
		c.NegocioDiaVencimento = req.NegocioDiaVencimento
	}

	// Permutas ausentes no request viram zero, nunca preservam o valor antigo
	c.NegocioValorImovelPermuta = valorOuZero(req.NegocioValorImovelPermuta)
	c.NegocioValorVeiculoPermuta = valorOuZero(req.NegocioValorVeiculoPermuta)

	if req.NegocioValorFinanciamento != nil {
		c.NegocioValorFinanciamento = req.NegocioValorFinanciamento
	}
	aplicarTexto(&c.NegocioPrazoPagamento, req.NegocioPrazoPagamento)
	aplicarTexto(&c.NegocioDataPrimeiraParcela, req.NegocioDataPrimeiraParcela)

	if req.Parcelas != nil {
		raw, err := json.Marshal(req.Parcelas)
		if err != nil {
			c.NegocioParcelas = nil
		} else {
			c.NegocioParcelas = raw
		}
	}

	aplicarTexto(&c.ContaTitular, req.ContaTitular)
	aplicarTexto(&c.ContaBanco, req.ContaBanco)
	aplicarTexto(&c.ContaAgencia, req.ContaAgencia)
	aplicarTexto(&c.ContaPix, req.ContaPix)

	if req.HonorariosValor != nil {
		c.HonorariosValor = req.HonorariosValor
	}
	aplicarTexto(&c.HonorariosFormaPagamento, req.HonorariosFormaPagamento)
	aplicarTexto(&c.HonorariosDataPagamento, req.HonorariosDataPagamento)

	aplicarTexto(&c.Observacoes, req.Observacoes)
	aplicarTexto(&c.DataContrato, req.DataContrato)
	aplicarTexto(&c.AssinaturaCorretor, req.AssinaturaCorretor)
	aplicarTexto(&c.AssinaturaAgenciador, req.AssinaturaAgenciador)
	aplicarTexto(&c.AssinaturaGestor, req.AssinaturaGestor)

	return validarPermutas(c)
}

func aplicarTexto(destino *string, origem *string) {
	if origem != nil {
		*destino = *origem
	}
}

func valorOuZero(p *float64) *float64 {
	if p != nil {
		return p
	}
	zero := 0.0
	return &zero
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// validarPermutas aplica as regras jurídicas: permuta não negativa e soma das
// permutas limitada ao valor total (igualdade é válida, saldo zero).
func validarPermutas(c *Contrato) error {
	imovel := deref(c.NegocioValorImovelPermuta)
	veiculo := deref(c.NegocioValorVeiculoPermuta)
	if imovel < 0 || veiculo < 0 {
		return parcela.ErrPermutaNegativa
	}
	if c.NegocioValorTotal != nil && *c.NegocioValorTotal >= 0 {
		if imovel+veiculo > *c.NegocioValorTotal {
			return parcela.ErrPermutaExcedeTotal
		}
	}
	return nil
}

func montarVendedores(contratoID uint, reqs []VendedorRequest) []ContratoVendedor {
	vendedores := make([]ContratoVendedor, 0, len(reqs))
	for i, vr := range reqs {
		vendedores = append(vendedores, ContratoVendedor{
			ContratoID:         contratoID,
			Ordem:              i,
			Nome:               vr.Nome,
			Documento:          apenasDigitos(vr.Documento),
			Email:              vr.Email,
			Telefone:           vr.Telefone,
			Endereco:           vr.Endereco,
			SocioNome:          vr.SocioNome,
			SocioCpf:           vr.SocioCpf,
			SocioNacionalidade: vr.SocioNacionalidade,
			SocioProfissao:     vr.SocioProfissao,
			SocioEstadoCivil:   vr.SocioEstadoCivil,
			SocioRegimeBens:    vr.SocioRegimeBens,
			SocioRg:            vr.SocioRg,
			SocioCnh:           vr.SocioCnh,
			SocioEmail:         vr.SocioEmail,
			SocioTelefone:      vr.SocioTelefone,
			SocioEndereco:      vr.SocioEndereco,
		})
	}
	return vendedores
}

func montarCompradores(contratoID uint, reqs []CompradorRequest) []ContratoComprador {
	compradores := make([]ContratoComprador, 0, len(reqs))
	for i, cr := range reqs {
		compradores = append(compradores, ContratoComprador{
			ContratoID:           contratoID,
			Ordem:                i,
			Nome:                 cr.Nome,
			Documento:            apenasDigitos(cr.Documento),
			Nacionalidade:        cr.Nacionalidade,
			Profissao:            cr.Profissao,
			EstadoCivil:          cr.EstadoCivil,
			RegimeBens:           cr.RegimeBens,
			Rg:                   cr.Rg,
			Cnh:                  cr.Cnh,
			Email:                cr.Email,
			Telefone:             cr.Telefone,
			Endereco:             cr.Endereco,
			ConjugeNome:          cr.ConjugeNome,
			ConjugeCpf:           cr.ConjugeCpf,
			ConjugeNacionalidade: cr.ConjugeNacionalidade,
			ConjugeProfissao:     cr.ConjugeProfissao,
			ConjugeRg:            cr.ConjugeRg,
		})
	}
	return compradores
}

// ContratoResponse é o contrato completo com o plano de parcelas decodificado.
// ParcelasRecalculadas é um aviso de disparo único: o plano salvo divergia dos
// parâmetros do negócio e foi regenerado neste salvamento.
type ContratoResponse struct {
	Contrato
	Parcelas             []parcela.Parcela `json:"parcelas"`
	ParcelasRecalculadas bool              `json:"parcelasRecalculadas,omitempty"`
}

// ParaResponse monta a visão externa do contrato. Plano ilegível é tratado
// como ausente.
func ParaResponse(c *Contrato) ContratoResponse {
	resp := ContratoResponse{Contrato: *c}
	if resp.Vendedores == nil {
		resp.Vendedores = []ContratoVendedor{}
	}
	if resp.Compradores == nil {
		resp.Compradores = []ContratoComprador{}
	}
	resp.Parcelas = PlanoSalvo(c)
	if resp.Parcelas == nil {
		resp.Parcelas = []parcela.Parcela{}
	}
	return resp
}

// PlanoSalvo decodifica o plano de parcelas persistido; nil quando não há
// plano ou o JSON está ilegível.
func PlanoSalvo(c *Contrato) []parcela.Parcela {
	if len(c.NegocioParcelas) == 0 {
		return nil
	}
	var plano []parcela.Parcela
	if err := json.Unmarshal(c.NegocioParcelas, &plano); err != nil {
		return nil
	}
	return plano
}

// AvaliarPlano confronta o plano salvo com os parâmetros atuais do negócio e
// persiste o resultado no contrato. suprimirAviso vale true só na hidratação
// de um contrato recém-carregado.
func AvaliarPlano(c *Contrato, suprimirAviso bool) parcela.Resultado {
	saldo, err := parcela.CalcularSaldo(
		deref(c.NegocioValorTotal),
		deref(c.NegocioValorImovelPermuta),
		deref(c.NegocioValorVeiculoPermuta),
	)
	if err != nil {
		saldo = 0
	}

	res := parcela.AvaliarDeISO(
		PlanoSalvo(c),
		saldo,
		derefInt(c.NegocioNumParcelas),
		c.NegocioDataPrimeiraParcela,
		derefInt(c.NegocioDiaVencimento),
		suprimirAviso,
	)

	if len(res.Parcelas) == 0 {
		c.NegocioParcelas = nil
	} else if raw, err := json.Marshal(res.Parcelas); err == nil {
		c.NegocioParcelas = raw
	}
	return res
}
