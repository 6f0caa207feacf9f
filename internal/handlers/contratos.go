package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"esteira-web/internal/models"
	"esteira-web/internal/session"
)

func ListarContratos(c *gin.Context) {
	contratos, err := API.ListarContratos(c.Request.Context(), session.Token(c))
	if err != nil {
		falhaAPI(c, err, "Não foi possível carregar os contratos", "/dashboard")
		return
	}

	filtro := c.Query("filtro")
	render(c, http.StatusOK, "contratos.html", gin.H{
		"Contratos": models.FiltrarContratos(contratos, filtro),
		"Filtro":    filtro,
		"Total":     len(contratos),
	})
}

func NovoContratoForm(c *gin.Context) {
	render(c, http.StatusOK, "contrato_form.html", gin.H{"Form": formContratoVazio()})
}

// formContratoVazio evita <no value> nos inputs do formulário em branco.
func formContratoVazio() gin.H {
	return gin.H{
		"NumeroContrato": "",
		"Cliente":        "",
		"Faculdade":      "",
		"Semestre":       "",
		"Valor":          "",
		"DataInicio":     "",
		"DataFim":        "",
	}
}

// NovoContrato valida e converte o formulário (strings) para o corpo tipado
// que a API espera: número inteiro, valor decimal, datas ISO.
func NovoContrato(c *gin.Context) {
	form := gin.H{
		"NumeroContrato": c.PostForm("numero_contrato"),
		"Cliente":        c.PostForm("cliente"),
		"Faculdade":      c.PostForm("faculdade"),
		"Semestre":       c.PostForm("semestre"),
		"Valor":          c.PostForm("valor"),
		"DataInicio":     c.PostForm("data_inicio"),
		"DataFim":        c.PostForm("data_fim"),
	}
	reexibir := func(erro string) {
		render(c, http.StatusBadRequest, "contrato_form.html", gin.H{"Erro": erro, "Form": form})
	}

	novo, erro := montarContratoCreate(c)
	if erro != "" {
		reexibir(erro)
		return
	}

	op, err := API.CriarContrato(c.Request.Context(), session.Token(c), novo)
	if err != nil {
		falhaAPI(c, err, "Não foi possível criar o contrato", "/contratos")
		return
	}

	registrarOperacao(c, "contrato", strconv.Itoa(novo.NumeroContrato), "criar", op,
		fmt.Sprintf("Contrato %d criado", novo.NumeroContrato))
	if !op.Sucesso() {
		reexibir("")
		return
	}
	c.Redirect(http.StatusFound, "/contratos")
}

func montarContratoCreate(c *gin.Context) (models.ContratoCreate, string) {
	var novo models.ContratoCreate

	numero, err := strconv.Atoi(c.PostForm("numero_contrato"))
	if err != nil || numero <= 0 {
		return novo, "Número do contrato inválido"
	}
	valor, err := strconv.ParseFloat(c.PostForm("valor"), 64)
	if err != nil || valor < 0 {
		return novo, "Valor inválido"
	}
	inicio, err := time.Parse("2006-01-02", c.PostForm("data_inicio"))
	if err != nil {
		return novo, "Data de início inválida"
	}
	fim, err := time.Parse("2006-01-02", c.PostForm("data_fim"))
	if err != nil {
		return novo, "Data de fim inválida"
	}
	if fim.Before(inicio) {
		return novo, "Data de fim anterior à data de início"
	}
	cliente := c.PostForm("cliente")
	if cliente == "" {
		return novo, "Informe o cliente"
	}

	novo = models.ContratoCreate{
		NumeroContrato: numero,
		Cliente:        cliente,
		Faculdade:      c.PostForm("faculdade"),
		Semestre:       c.PostForm("semestre"),
		Valor:          valor,
		DataInicio:     inicio,
		DataFim:        fim,
	}
	return novo, ""
}

func EditarContratoForm(c *gin.Context) {
	contrato, err := API.ObterContrato(c.Request.Context(), session.Token(c), c.Param("id"))
	if err != nil {
		falhaAPI(c, err, "Contrato não encontrado", "/contratos")
		return
	}
	render(c, http.StatusOK, "contrato_form.html", gin.H{
		"Contrato": contrato,
		"Form": gin.H{
			"NumeroContrato": strconv.Itoa(contrato.NumeroContrato),
			"Cliente":        contrato.Cliente,
			"Faculdade":      contrato.Faculdade,
			"Semestre":       contrato.Semestre,
			"Valor":          strconv.FormatFloat(contrato.Valor, 'f', 2, 64),
			"DataInicio":     contrato.DataInicio.Format("2006-01-02"),
			"DataFim":        contrato.DataFim.Format("2006-01-02"),
		},
	})
}

func EditarContrato(c *gin.Context) {
	id := c.Param("id")

	valor, err := strconv.ParseFloat(c.PostForm("valor"), 64)
	if err != nil || valor < 0 {
		session.FlashErro(c, "Valor inválido")
		c.Redirect(http.StatusFound, "/contratos/"+id+"/editar")
		return
	}

	cliente := c.PostForm("cliente")
	faculdade := c.PostForm("faculdade")
	semestre := c.PostForm("semestre")
	upd := models.ContratoUpdate{
		Cliente:   &cliente,
		Faculdade: &faculdade,
		Semestre:  &semestre,
		Valor:     &valor,
	}
	if inicio, err := time.Parse("2006-01-02", c.PostForm("data_inicio")); err == nil {
		upd.DataInicio = &inicio
	}
	if fim, err := time.Parse("2006-01-02", c.PostForm("data_fim")); err == nil {
		upd.DataFim = &fim
	}

	op, err := API.AtualizarContrato(c.Request.Context(), session.Token(c), id, upd)
	if err != nil {
		falhaAPI(c, err, "Não foi possível salvar o contrato", "/contratos")
		return
	}
	registrarOperacao(c, "contrato", id, "editar", op, "Contrato atualizado")
	c.Redirect(http.StatusFound, "/contratos")
}

// AprovarContrato dispara a transição Ativo → Em Andamento. Bloqueio do
// backend vira flash; nada muda na tela além do que o re-fetch trouxer.
func AprovarContrato(c *gin.Context) {
	id := c.Param("id")
	op, err := API.AprovarContrato(c.Request.Context(), session.Token(c), id)
	if err != nil {
		falhaAPI(c, err, "Não foi possível aprovar o contrato", "/contratos")
		return
	}
	registrarOperacao(c, "contrato", id, "aprovar", op, "Contrato aprovado. Projeto criado na esteira.")
	c.Redirect(http.StatusFound, "/contratos")
}

func FinalizarContrato(c *gin.Context) {
	id := c.Param("id")
	op, err := API.FinalizarContrato(c.Request.Context(), session.Token(c), id)
	if err != nil {
		falhaAPI(c, err, "Não foi possível finalizar o contrato", "/contratos")
		return
	}
	registrarOperacao(c, "contrato", id, "finalizar", op, "Contrato finalizado")
	c.Redirect(http.StatusFound, "/contratos")
}

func ExcluirContrato(c *gin.Context) {
	id := c.Param("id")
	op, err := API.ExcluirContrato(c.Request.Context(), session.Token(c), id)
	if err != nil {
		falhaAPI(c, err, "Não foi possível excluir o contrato", "/contratos")
		return
	}
	registrarOperacao(c, "contrato", id, "excluir", op, "Contrato excluído")
	c.Redirect(http.StatusFound, "/contratos")
}

// RelatorioContratos exporta a carteira em xlsx para a diretoria.
func RelatorioContratos(c *gin.Context) {
	contratos, err := API.ListarContratos(c.Request.Context(), session.Token(c))
	if err != nil {
		falhaAPI(c, err, "Não foi possível gerar o relatório", "/contratos")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const aba = "Contratos"
	f.SetSheetName("Sheet1", aba)

	cabecalho := []string{"Número", "Cliente", "Faculdade", "Semestre", "Valor", "Início", "Fim", "Status"}
	for i, titulo := range cabecalho {
		celula, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(aba, celula, titulo)
	}
	for linha, ct := range contratos {
		valores := []any{
			ct.NumeroContrato,
			ct.Cliente,
			ct.Faculdade,
			ct.Semestre,
			ct.Valor,
			ct.DataInicio.Format("02/01/2006"),
			ct.DataFim.Format("02/01/2006"),
			string(ct.Status),
		}
		for col, v := range valores {
			celula, _ := excelize.CoordinatesToCellName(col+1, linha+2)
			f.SetCellValue(aba, celula, v)
		}
	}

	nome := fmt.Sprintf("contratos_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nome+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		Log.Error("falha ao escrever relatório xlsx", zap.Error(err))
	}
}
