package web

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"loandesk/internal/flash"
	"loandesk/internal/format"
	"loandesk/internal/models"
	"loandesk/internal/pagination"
	"loandesk/internal/table"
	"loandesk/internal/validation"
	"loandesk/pkg/domain"
)

var loanTabLabels = map[models.LoanStatus]string{
	models.LoanStatusInProcess: "Prestamos en proceso",
	models.LoanStatusApproved:  "Prestamos aprobados",
	models.LoanStatusRejected:  "Prestamos rechazados",
}

type tabLink struct {
	Label  string
	Href   string
	Active bool
}

type loansView struct {
	Tabs    []tabLink
	NewHref string
	Table   table.View
}

func loanTabs(id domain.CustomerID, active models.LoanStatus) []tabLink {
	tabs := make([]tabLink, 0, len(models.LoanStatuses))
	for _, status := range models.LoanStatuses {
		tabs = append(tabs, tabLink{
			Label:  loanTabLabels[status],
			Href:   loansTabPath(id, status),
			Active: status == active,
		})
	}
	return tabs
}

// effectiveStatus decides which actions a loan offers; statuses the dashboard
// does not know behave as in process.
func effectiveStatus(status models.LoanStatus) models.LoanStatus {
	if status.IsKnown() {
		return status
	}
	return models.LoanStatusInProcess
}

func (h *Handler) handleLoansIndex(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, loansTabPath(id, models.LoanStatusInProcess), http.StatusSeeOther)
}

// handleListLoans lists one status tab of a customer's loans.
func (h *Handler) handleListLoans(status models.LoanStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		values := r.URL.Query()
		params := pagination.Parse(values)
		filter := string(status)

		page, err := h.customers.ListCustomerLoans(ctx, id, models.LoanListParams{
			Status:     &filter,
			PageParams: params.PageParams(),
		})
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		path := loansTabPath(id, status)
		h.render(w, r, http.StatusOK, "loans", pageData{
			Title:    "Prestamos",
			BackHref: customersPath,
			Active:   customersPath,
			Body: loansView{
				Tabs:    loanTabs(id, status),
				NewHref: customerPath(id, "/loans/create"),
				Table:   newListTable(path, values, params, page, h.loanColumns(id, status), "No hay prestamos para este estado"),
			},
		})
	}
}

func (h *Handler) loanColumns(customerID domain.CustomerID, status models.LoanStatus) []table.Column[models.Loan] {
	date := table.Column[models.Loan]{
		ID:     "loanDate",
		Header: "Fecha",
		Cell: func(l models.Loan) template.HTML {
			return link(loanPath(customerID, domain.LoanID(l.ID), "/history"), h.format.Date(l.LoanDate))
		},
		Compare: table.By(func(l models.Loan) string { return l.LoanDate }),
	}
	amount := table.Column[models.Loan]{
		ID:      "amount",
		Header:  "Valor inicial",
		Cell:    func(l models.Loan) template.HTML { return table.Text(h.format.Currency(l.Amount)) },
		Compare: func(a, b models.Loan) int { return a.Amount.Cmp(b.Amount) },
	}
	loanStatus := table.Column[models.Loan]{
		ID:     "status",
		Header: "Estado prestamo",
		Cell:   func(l models.Loan) template.HTML { return badge(format.LoanStatus(l.Status)) },
	}
	acts := table.Column[models.Loan]{
		ID:     "actions",
		Header: "Acciones",
		Cell:   func(l models.Loan) template.HTML { return h.loanActions(customerID, l) },
	}

	if status != models.LoanStatusApproved {
		return []table.Column[models.Loan]{date, amount, loanStatus, acts}
	}
	return []table.Column[models.Loan]{
		date,
		amount,
		{
			ID:      "totalPayable",
			Header:  "Monto total",
			Cell:    func(l models.Loan) template.HTML { return table.Text(h.format.Currency(l.TotalPayable)) },
			Compare: func(a, b models.Loan) int { return a.TotalPayable.Cmp(b.TotalPayable) },
		},
		{
			ID:      "outstandingBalance",
			Header:  "Saldo pendiente",
			Cell:    func(l models.Loan) template.HTML { return table.Text(h.format.Currency(l.OutstandingBalance)) },
			Compare: func(a, b models.Loan) int { return a.OutstandingBalance.Cmp(b.OutstandingBalance) },
		},
		{
			ID:     "paymentStatus",
			Header: "Estado de pago",
			Cell:   func(l models.Loan) template.HTML { return badge(format.PaymentStatus(l.PaymentStatus)) },
		},
		loanStatus,
		acts,
	}
}

// loanActionLinks lists the navigation offered for a loan in its status.
func loanActionLinks(customerID domain.CustomerID, l models.Loan) []actionLink {
	id := domain.LoanID(l.ID)
	links := []actionLink{{Label: "Historial estado", Href: loanPath(customerID, id, "/history")}}
	switch effectiveStatus(l.Status) {
	case models.LoanStatusApproved:
		links = append(links,
			actionLink{Label: "Realizar pago", Href: loanPath(customerID, id, "/payments/create")},
			actionLink{Label: "Historial pagos", Href: loanPath(customerID, id, "/payments")},
		)
	case models.LoanStatusInProcess:
		links = append(links,
			actionLink{Label: "Aprobar", Href: loanPath(customerID, id, "/approve")},
			actionLink{Label: "Rechazar", Href: loanPath(customerID, id, "/reject")},
		)
	}
	return links
}

func (h *Handler) loanActions(customerID domain.CustomerID, l models.Loan) template.HTML {
	return actions(loanActionLinks(customerID, l), details("Ver detalle", h.loanDetailRows(l)))
}

func (h *Handler) loanDetailRows(l models.Loan) []infoRow {
	return []infoRow{
		{Label: "ID prestamo", Value: l.ID.String()},
		{Label: "Cliente", Value: l.CustomerFullName},
		{Label: "Fecha", Value: h.format.DateTime(l.LoanDate)},
		{Label: "Plazo (meses)", Value: strconv.Itoa(l.TermMonths)},
		{Label: "Tasa interes anual", Value: format.Percent(l.AnnualInterestRate)},
		{Label: "Estado prestamo", Value: format.LoanStatus(l.Status).Label},
		{Label: "Valor inicial", Value: h.format.Currency(l.Amount)},
		{Label: "Monto total", Value: h.format.Currency(l.TotalPayable)},
		{Label: "Saldo pendiente", Value: h.format.Currency(l.OutstandingBalance)},
		{Label: "Estado pago", Value: format.PaymentStatus(l.PaymentStatus).Label},
		{Label: "Creado en", Value: h.format.Timestamp(l.CreatedAt)},
		{Label: "Actualizado en", Value: h.format.Timestamp(l.UpdatedAt)},
		{Label: "Proposito", Value: format.Text(l.Purpose)},
	}
}

func loanFormPage(id domain.CustomerID) formPage {
	return formPage{
		name: "loan_form",
		data: pageData{
			Title:       "Solicitud de prestamo",
			Description: "Completa el formulario para registrar una nueva solicitud.",
			BackHref:    loansTabPath(id, models.LoanStatusInProcess),
			Active:      customersPath,
		},
	}
}

func (h *Handler) handleNewLoan(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	form := newForm(customerPath(id, "/loans/create"), validation.SchemaLoan, "Solicitar prestamo", nil)
	h.renderForm(w, r, http.StatusOK, loanFormPage(id), form)
}

func (h *Handler) handleSubmitLoan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	page := loanFormPage(id)
	form := newForm(customerPath(id, "/loans/create"), validation.SchemaLoan, "Solicitar prestamo", formValues(r.PostForm))

	req, err := validation.LoanApplication(ctx, loanFormFrom(r.PostForm))
	if err != nil {
		h.formFailed(w, r, page, form, err, toastCheckForm, "No se pudo solicitar el prestamo")
		return
	}
	loan, err := h.customers.SubmitLoanApplication(ctx, id, req)
	if err != nil {
		h.formFailed(w, r, page, form, err, toastCheckForm, "No se pudo solicitar el prestamo")
		return
	}

	h.pushToast(ctx, flash.Success("Prestamo solicitado correctamente", "Monto: "+format.Amount(loan.Amount)))
	http.Redirect(w, r, loansTabPath(id, models.LoanStatusInProcess), http.StatusSeeOther)
}
