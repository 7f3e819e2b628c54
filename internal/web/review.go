package web

import (
	"context"
	"net/http"

	"loandesk/internal/flash"
	"loandesk/internal/format"
	"loandesk/internal/models"
	"loandesk/internal/validation"
	"loandesk/pkg/domain"
)

// reviewAction is one direction of the IN_PROCESS -> APPROVED | REJECTED step.
type reviewAction struct {
	path        string
	title       string
	description string
	notesLabel  string
	submit      string
	success     string
	target      models.LoanStatus
	call        func(LoanAPI, context.Context, domain.LoanID, models.ReviewLoanApplicationRequest) (*models.Loan, error)
}

var (
	reviewApprove = reviewAction{
		path:        "/approve",
		title:       "Aprobar prestamo",
		description: "Ingresa una nota para confirmar la aprobacion.",
		notesLabel:  "Razon de aprobacion",
		submit:      "Confirmar aprobacion",
		success:     "Prestamo aprobado correctamente.",
		target:      models.LoanStatusApproved,
		call:        LoanAPI.ApproveLoan,
	}
	reviewReject = reviewAction{
		path:        "/reject",
		title:       "Rechazar prestamo",
		description: "Ingresa una nota para confirmar el rechazo.",
		notesLabel:  "Razon de rechazo",
		submit:      "Confirmar rechazo",
		success:     "Prestamo rechazado correctamente.",
		target:      models.LoanStatusRejected,
		call:        LoanAPI.RejectLoan,
	}
)

const reviewRefusal = "Solo se pueden revisar prestamos en proceso"

type reviewView struct {
	Form       formView
	NotesLabel string
}

func (a reviewAction) page(customerID domain.CustomerID, loanID domain.LoanID) formPage {
	return formPage{
		name: "review_form",
		data: pageData{
			Title:       a.title,
			Description: a.description,
			BackHref:    loanPath(customerID, loanID, "/history"),
			Active:      customersPath,
		},
		body: func(f formView) any { return reviewView{Form: f, NotesLabel: a.notesLabel} },
	}
}

func (h *Handler) handleReviewForm(a reviewAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, loanID, err := loanIDs(r)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		if _, ok := h.requireLoan(w, r, customerID, loanID, models.Loan.CanBeReviewed, reviewRefusal); !ok {
			return
		}
		form := newForm(loanPath(customerID, loanID, a.path), validation.SchemaReview, a.submit, nil)
		h.renderForm(w, r, http.StatusOK, a.page(customerID, loanID), form)
	}
}

// handleReview posts the decision. The core API refuses loans that are no
// longer in process; its message is shown on the form.
func (h *Handler) handleReview(a reviewAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID, loanID, err := loanIDs(r)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		if !h.parseForm(w, r) {
			return
		}
		page := a.page(customerID, loanID)
		form := newForm(loanPath(customerID, loanID, a.path), validation.SchemaReview, a.submit, formValues(r.PostForm))

		req, err := validation.ReviewLoanApplication(ctx, validation.ReviewForm{Notes: r.PostForm.Get("notes")})
		if err != nil {
			h.formFailed(w, r, page, form, err, toastCheckNotes, "No se pudo procesar la solicitud")
			return
		}
		if _, err := a.call(h.loans, ctx, loanID, req); err != nil {
			h.formFailed(w, r, page, form, err, toastCheckNotes, "No se pudo procesar la solicitud")
			return
		}

		h.pushToast(ctx, flash.Success(a.success, ""))
		http.Redirect(w, r, loansTabPath(customerID, a.target), http.StatusSeeOther)
	}
}

type paymentView struct {
	Form    formView
	Methods []methodOption
}

type methodOption struct {
	Value    string
	Label    string
	Selected bool
}

func paymentMethodOptions(selected string) []methodOption {
	opts := make([]methodOption, 0, len(models.PaymentMethods))
	for _, m := range models.PaymentMethods {
		opts = append(opts, methodOption{
			Value:    string(m),
			Label:    format.PaymentMethod(m).Label,
			Selected: string(m) == selected,
		})
	}
	return opts
}

const paymentRefusal = "Solo se pueden registrar pagos en prestamos aprobados"

func paymentFormPage(customerID domain.CustomerID, loanID domain.LoanID) formPage {
	return formPage{
		name: "payment_form",
		data: pageData{
			Title:       "Realizar pago",
			Description: "Registra un abono para este prestamo.",
			BackHref:    loanPath(customerID, loanID, "/payments"),
			Active:      customersPath,
		},
		body: func(f formView) any {
			return paymentView{Form: f, Methods: paymentMethodOptions(f.Values["paymentMethod"])}
		},
	}
}

func (h *Handler) handleNewPayment(w http.ResponseWriter, r *http.Request) {
	customerID, loanID, err := loanIDs(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if _, ok := h.requireLoan(w, r, customerID, loanID, models.Loan.AcceptsPayments, paymentRefusal); !ok {
		return
	}
	form := newForm(loanPath(customerID, loanID, "/payments/create"), validation.SchemaPayment, "Registrar pago", nil)
	h.renderForm(w, r, http.StatusOK, paymentFormPage(customerID, loanID), form)
}

func (h *Handler) handleRegisterPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, loanID, err := loanIDs(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	page := paymentFormPage(customerID, loanID)
	form := newForm(loanPath(customerID, loanID, "/payments/create"), validation.SchemaPayment, "Registrar pago", formValues(r.PostForm))

	req, err := validation.LoanPayment(ctx, paymentFormFrom(r.PostForm))
	if err != nil {
		h.formFailed(w, r, page, form, err, toastCheckForm, "No se pudo registrar el pago")
		return
	}
	payment, err := h.loans.RegisterLoanPayment(ctx, loanID, req)
	if err != nil {
		h.formFailed(w, r, page, form, err, toastCheckForm, "No se pudo registrar el pago")
		return
	}

	h.pushToast(ctx, flash.Success("Pago registrado correctamente", "Monto: "+format.Amount(payment.Amount)))
	http.Redirect(w, r, loanPath(customerID, loanID, "/payments"), http.StatusSeeOther)
}
