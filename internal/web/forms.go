package web

import (
	"net/http"
	"net/url"

	"loandesk/internal/api"
	"loandesk/internal/flash"
	"loandesk/internal/validation"
)

// formView is a form with the submitted values and per-field messages.
type formView struct {
	Action string
	Schema string
	Submit string
	Cancel string
	Values map[string]string
	Errors map[string]string
}

func newForm(action, schema, submit string, values map[string]string) formView {
	if values == nil {
		values = map[string]string{}
	}
	return formView{
		Action: action,
		Schema: schema,
		Submit: submit,
		Values: values,
		Errors: map[string]string{},
	}
}

func (f formView) withErrors(errs validation.Errors) formView {
	f.Errors = errs.Map()
	return f
}

// fieldView feeds the "input" partial.
type fieldView struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
	Schema      string
}

// field is exposed to templates: {{template "input" field .Form "amount" "Monto" "number" ""}}.
func field(f formView, name, label, kind, placeholder string) fieldView {
	return fieldView{
		Name:        name,
		Label:       label,
		Type:        kind,
		Placeholder: placeholder,
		Value:       f.Values[name],
		Error:       f.Errors[name],
		Schema:      f.Schema,
	}
}

// formValues flattens posted values, keeping the first value per key.
func formValues(form url.Values) map[string]string {
	out := make(map[string]string, len(form))
	for k := range form {
		out[k] = form.Get(k)
	}
	return out
}

// posted returns a pointer to the value when the key was submitted.
func posted(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	v := form.Get(key)
	return &v
}

func customerFormFrom(form url.Values) validation.CustomerForm {
	return validation.CustomerForm{
		FirstName:            form.Get("firstName"),
		LastName:             form.Get("lastName"),
		IdentificationNumber: form.Get("identificationNumber"),
		BirthDate:            form.Get("birthDate"),
		Address:              form.Get("address"),
		Email:                form.Get("email"),
		Phone:                form.Get("phone"),
	}
}

func updateCustomerFormFrom(form url.Values) validation.UpdateCustomerForm {
	return validation.UpdateCustomerForm{
		FirstName:            posted(form, "firstName"),
		LastName:             posted(form, "lastName"),
		IdentificationNumber: posted(form, "identificationNumber"),
		BirthDate:            posted(form, "birthDate"),
		Address:              posted(form, "address"),
		Email:                posted(form, "email"),
		Phone:                posted(form, "phone"),
	}
}

func loanFormFrom(form url.Values) validation.LoanApplicationForm {
	return validation.LoanApplicationForm{
		LoanDate:           form.Get("loanDate"),
		Amount:             form.Get("amount"),
		TermMonths:         form.Get("termMonths"),
		Purpose:            form.Get("purpose"),
		AnnualInterestRate: form.Get("annualInterestRate"),
	}
}

func paymentFormFrom(form url.Values) validation.PaymentForm {
	return validation.PaymentForm{
		Amount:        form.Get("amount"),
		PaymentMethod: form.Get("paymentMethod"),
		PaymentDate:   form.Get("paymentDate"),
		Notes:         form.Get("notes"),
	}
}

// formPage is a page whose body holds a form. body wraps the form into the
// page model; nil renders the form itself.
type formPage struct {
	name string
	data pageData
	body func(formView) any
}

func (p formPage) with(form formView, toasts []flash.Toast) pageData {
	data := p.data
	data.Body = any(form)
	if p.body != nil {
		data.Body = p.body(form)
	}
	data.Toasts = toasts
	return data
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, p formPage, form formView, toasts ...flash.Toast) {
	h.render(w, r, status, p.name, p.with(form, toasts))
}

// formFailed re-renders a form after a failed submit: 422 with per-field
// messages when validation failed, otherwise the upstream status with the
// server's message or fallback.
func (h *Handler) formFailed(w http.ResponseWriter, r *http.Request, p formPage, form formView, err error, checkMessage, fallback string) {
	if errs, ok := validation.FromError(err); ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, p, form.withErrors(errs),
			h.inlineToast(flash.Error(checkMessage, ""))...)
		return
	}
	h.logActionError(r, "core api action failed", err)
	h.renderForm(w, r, actionStatus(err), p, form,
		h.inlineToast(flash.Error(api.UserMessage(err, fallback), ""))...)
}
