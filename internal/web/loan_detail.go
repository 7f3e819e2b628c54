package web

import (
	"context"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"loandesk/internal/flash"
	"loandesk/internal/format"
	"loandesk/internal/models"
	"loandesk/internal/pagination"
	"loandesk/internal/table"
	"loandesk/pkg/domain"
)

// loanHeader is the summary shown above a loan's history and payments.
type loanHeader struct {
	Href    string
	Date    string
	Total   string
	Balance string
	Detail  template.HTML
	Actions []actionLink
}

type loanPageView struct {
	Header loanHeader
	Table  table.View
}

func (h *Handler) loanHeader(customerID domain.CustomerID, l models.Loan) loanHeader {
	return loanHeader{
		Href:    loanPath(customerID, domain.LoanID(l.ID), ""),
		Date:    h.format.DateTime(l.LoanDate),
		Total:   h.format.Currency(l.TotalPayable),
		Balance: h.format.Currency(l.OutstandingBalance),
		Detail:  details("Ver detalle", h.loanDetailRows(l)),
		Actions: loanActionLinks(customerID, l),
	}
}

// loanIDs parses both path ids.
func loanIDs(r *http.Request) (domain.CustomerID, domain.LoanID, error) {
	customerID, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		return customerID, domain.LoanID{}, err
	}
	loanID, err := domain.ParseLoanID(chi.URLParam(r, "loanID"))
	return customerID, loanID, err
}

func (h *Handler) handleLoanIndex(w http.ResponseWriter, r *http.Request) {
	customerID, loanID, err := loanIDs(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, loanPath(customerID, loanID, "/history"), http.StatusSeeOther)
}

// fetchLoanPage loads the loan header and one page of a loan sub-list in
// parallel. Both are required; the first failure cancels the other call.
func fetchLoanPage[T any](
	ctx context.Context,
	loans LoanAPI,
	id domain.LoanID,
	list func(ctx context.Context, id domain.LoanID, params models.PageParams) (*models.Page[T], error),
	params models.PageParams,
) (*models.Loan, *models.Page[T], error) {
	var (
		loan *models.Loan
		page *models.Page[T]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		loan, err = loans.GetLoan(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		page, err = list(gctx, id, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return loan, page, nil
}

func (h *Handler) handleLoanHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, loanID, err := loanIDs(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	values := r.URL.Query()
	params := pagination.Parse(values)

	loan, page, err := fetchLoanPage(ctx, h.loans, loanID, h.loans.ListLoanStatusHistory, params.PageParams())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	columns := []table.Column[models.LoanStatusHistory]{
		{
			ID:     "status",
			Header: "Estado",
			Cell:   func(e models.LoanStatusHistory) template.HTML { return badge(format.LoanStatus(e.Status)) },
		},
		{
			ID:     "createdAt",
			Header: "Fecha",
			Cell:   func(e models.LoanStatusHistory) template.HTML { return table.Text(h.format.Timestamp(e.CreatedAt)) },
			Compare: func(a, b models.LoanStatusHistory) int {
				return a.CreatedAt.Compare(b.CreatedAt)
			},
		},
		{
			ID:     "actions",
			Header: "Acciones",
			Cell:   func(e models.LoanStatusHistory) template.HTML { return notesCell(e.Notes) },
		},
	}

	path := loanPath(customerID, loanID, "/history")
	h.render(w, r, http.StatusOK, "loan_history", pageData{
		Title:       "Historial de estado del prestamo",
		Description: "Registro cronologico de cambios de estado.",
		BackHref:    loansTabPath(customerID, effectiveStatus(loan.Status)),
		Active:      customersPath,
		Body: loanPageView{
			Header: h.loanHeader(customerID, *loan),
			Table:  newListTable(path, values, params, page, columns, "No hay historial de estado para este prestamo"),
		},
	})
}

func (h *Handler) handleLoanPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, loanID, err := loanIDs(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	values := r.URL.Query()
	params := pagination.Parse(values)

	loan, page, err := fetchLoanPage(ctx, h.loans, loanID, h.loans.ListLoanPayments, params.PageParams())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	columns := []table.Column[models.LoanPayment]{
		{
			ID:      "paymentDate",
			Header:  "Fecha de pago",
			Cell:    func(p models.LoanPayment) template.HTML { return table.Text(h.format.DateTime(p.PaymentDate)) },
			Compare: table.By(func(p models.LoanPayment) string { return p.PaymentDate }),
		},
		{
			ID:      "amount",
			Header:  "Monto",
			Cell:    func(p models.LoanPayment) template.HTML { return table.Text(h.format.Currency(p.Amount)) },
			Compare: func(a, b models.LoanPayment) int { return a.Amount.Cmp(b.Amount) },
		},
		{
			ID:     "paymentMethod",
			Header: "Metodo",
			Cell:   func(p models.LoanPayment) template.HTML { return badge(format.PaymentMethod(p.PaymentMethod)) },
		},
		{
			ID:     "createdAt",
			Header: "Registrado en",
			Cell:   func(p models.LoanPayment) template.HTML { return table.Text(h.format.Timestamp(p.CreatedAt)) },
		},
		{
			ID:     "actions",
			Header: "Acciones",
			Cell:   func(p models.LoanPayment) template.HTML { return notesCell(p.Notes) },
		},
	}

	path := loanPath(customerID, loanID, "/payments")
	h.render(w, r, http.StatusOK, "loan_payments", pageData{
		Title:       "Historial de pagos",
		Description: "Registro cronologico de pagos aplicados al prestamo.",
		BackHref:    loansTabPath(customerID, effectiveStatus(loan.Status)),
		Active:      customersPath,
		Body: loanPageView{
			Header: h.loanHeader(customerID, *loan),
			Table:  newListTable(path, values, params, page, columns, "No hay pagos registrados para este prestamo"),
		},
	})
}

// requireLoan loads the loan behind a form and checks it is in a state the
// form applies to. Otherwise it redirects to the loan history with an error
// toast and returns false.
func (h *Handler) requireLoan(
	w http.ResponseWriter,
	r *http.Request,
	customerID domain.CustomerID,
	loanID domain.LoanID,
	allowed func(models.Loan) bool,
	refusal string,
) (*models.Loan, bool) {
	ctx := r.Context()
	loan, err := h.loans.GetLoan(ctx, loanID)
	if err != nil {
		h.renderError(w, r, err)
		return nil, false
	}
	if !allowed(*loan) {
		h.pushToast(ctx, flash.Error(refusal, ""))
		http.Redirect(w, r, loanPath(customerID, loanID, "/history"), http.StatusSeeOther)
		return nil, false
	}
	return loan, true
}
