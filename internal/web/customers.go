package web

import (
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"loandesk/internal/api"
	"loandesk/internal/flash"
	"loandesk/internal/models"
	"loandesk/internal/pagination"
	"loandesk/internal/table"
	"loandesk/internal/validation"
	"loandesk/pkg/domain"
	dErrors "loandesk/pkg/domain-errors"
)

type customersView struct {
	Search       string
	Size         int
	Hidden       []hiddenField
	SearchAction string
	NewHref      string
	Table        table.View
}

type hiddenField struct {
	Name  string
	Value string
}

// carriedParams lists the query parameters the search form resubmits so a
// search keeps the current sort and any other list state. Page and the term
// are replaced by the search itself; size has its own input.
func carriedParams(values url.Values) []hiddenField {
	keys := make([]string, 0, len(values))
	for k := range values {
		switch k {
		case pagination.ParamPage, pagination.ParamSearchTerm, pagination.ParamSize, "term":
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var out []hiddenField
	for _, k := range keys {
		for _, v := range values[k] {
			out = append(out, hiddenField{Name: k, Value: v})
		}
	}
	return out
}

func (h *Handler) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()
	params := pagination.Parse(values)
	term := pagination.SearchTerm(values)

	page, err := h.customers.ListCustomers(ctx, models.CustomerListParams{
		SearchTerm: term,
		PageParams: params.PageParams(),
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	view := customersView{
		Size:         params.Size,
		Hidden:       carriedParams(values),
		SearchAction: searchPath,
		NewHref:      newCustomerPath,
		Table:        newListTable(customersPath, values, params, page, h.customerColumns(), "No hay clientes registrados"),
	}
	if term != nil {
		view.Search = *term
	}
	h.render(w, r, http.StatusOK, "customers", pageData{
		Title:       "Clientes",
		Description: "Listado de clientes registrados en el sistema.",
		Active:      customersPath,
		Body:        view,
	})
}

// handleSearchCustomers turns a search box submission into the list address:
// page back to 0, searchTerm set or removed, other parameters kept.
func (h *Handler) handleSearchCustomers(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	term := values.Get("term")
	values.Del("term")
	target := pagination.Href(customersPath, pagination.WithSearchTerm(values, term))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) customerColumns() []table.Column[models.Customer] {
	return []table.Column[models.Customer]{
		{
			ID:      "name",
			Header:  "Nombre",
			Cell:    func(c models.Customer) template.HTML { return table.Text(c.FullName()) },
			Compare: table.By(func(c models.Customer) string { return strings.ToLower(c.FullName()) }),
		},
		{
			ID:      "cui",
			Header:  "CUI",
			Cell:    func(c models.Customer) template.HTML { return table.Text(c.IdentificationNumber) },
			Compare: table.By(func(c models.Customer) string { return c.IdentificationNumber }),
		},
		{
			ID:     "email",
			Header: "Correo",
			Cell:   func(c models.Customer) template.HTML { return table.Text(c.Email) },
		},
		{
			ID:     "phone",
			Header: "Telefono",
			Cell:   func(c models.Customer) template.HTML { return table.Text(c.Phone) },
		},
		{
			ID:      "birthDate",
			Header:  "Fecha nacimiento",
			Cell:    func(c models.Customer) template.HTML { return table.Text(h.format.Date(c.BirthDate)) },
			Compare: table.By(func(c models.Customer) string { return c.BirthDate }),
		},
		{
			ID:     "actions",
			Header: "Acciones",
			Cell:   h.customerActions,
		},
	}
}

func (h *Handler) customerActions(c models.Customer) template.HTML {
	id := domain.CustomerID(c.ID)
	info := details("Ver informacion", []infoRow{
		{Label: "Nombre", Value: c.FirstName},
		{Label: "Apellido", Value: c.LastName},
		{Label: "CUI", Value: c.IdentificationNumber},
		{Label: "Fecha de nacimiento", Value: h.format.LongDate(c.BirthDate)},
		{Label: "Direccion", Value: c.Address},
		{Label: "Correo", Value: c.Email},
		{Label: "Telefono", Value: c.Phone},
		{Label: "Creado en", Value: h.format.LongTimestamp(c.CreatedAt)},
		{Label: "Actualizado en", Value: h.format.LongTimestamp(c.UpdatedAt)},
	})
	return actions([]actionLink{
		{Label: "Ver prestamos", Href: customerPath(id, "/loans")},
		{Label: "Editar", Href: customerPath(id, "/edit")},
		{Label: "Eliminar", Href: customerPath(id, "/delete")},
	}, info)
}

func customerFormPage(title, description string) formPage {
	return formPage{
		name: "customer_form",
		data: pageData{
			Title:       title,
			Description: description,
			BackHref:    customersPath,
			Active:      newCustomerPath,
		},
	}
}

var (
	createCustomerPage = customerFormPage("Registrar cliente", "Ingresa los datos del cliente para crearlo en la plataforma.")
	editCustomerPage   = customerFormPage("Editar cliente", "Actualiza la informacion del cliente y guarda los cambios.")
)

func (h *Handler) handleNewCustomer(w http.ResponseWriter, r *http.Request) {
	form := newForm(newCustomerPath, validation.SchemaCustomer, "Guardar cliente", nil)
	h.renderForm(w, r, http.StatusOK, createCustomerPage, form)
}

func (h *Handler) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.parseForm(w, r) {
		return
	}
	form := newForm(newCustomerPath, validation.SchemaCustomer, "Guardar cliente", formValues(r.PostForm))

	req, err := validation.CreateCustomer(ctx, customerFormFrom(r.PostForm))
	if err != nil {
		h.formFailed(w, r, createCustomerPage, form, err, toastCheckForm, "No se pudo registrar el cliente")
		return
	}
	created, err := h.customers.CreateCustomer(ctx, req)
	if err != nil {
		h.formFailed(w, r, createCustomerPage, form, err, toastCheckForm, "No se pudo registrar el cliente")
		return
	}

	h.pushToast(ctx, flash.Success("Cliente creado correctamente", "Nombre: "+created.FullName()))
	http.Redirect(w, r, customersPath, http.StatusSeeOther)
}

func (h *Handler) handleEditCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	customer, err := h.customers.GetCustomer(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form := newForm(customerPath(id, "/edit"), validation.SchemaCustomerUpdate, "Guardar cambios", map[string]string{
		"firstName":            customer.FirstName,
		"lastName":             customer.LastName,
		"identificationNumber": customer.IdentificationNumber,
		"birthDate":            customer.BirthDate,
		"address":              customer.Address,
		"email":                customer.Email,
		"phone":                customer.Phone,
	})
	h.renderForm(w, r, http.StatusOK, editCustomerPage, form)
}

func (h *Handler) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	form := newForm(customerPath(id, "/edit"), validation.SchemaCustomerUpdate, "Guardar cambios", formValues(r.PostForm))

	req, err := validation.UpdateCustomer(ctx, updateCustomerFormFrom(r.PostForm))
	if err != nil {
		h.formFailed(w, r, editCustomerPage, form, err, toastCheckForm, "No se pudo actualizar el cliente")
		return
	}
	updated, err := h.customers.UpdateCustomer(ctx, id, req)
	if err != nil {
		h.formFailed(w, r, editCustomerPage, form, err, toastCheckForm, "No se pudo actualizar el cliente")
		return
	}

	h.pushToast(ctx, flash.Success("Cliente actualizado correctamente", "Nombre: "+updated.FullName()))
	http.Redirect(w, r, customersPath, http.StatusSeeOther)
}

type deleteCustomerView struct {
	Name   string
	Action string
	Cancel string
}

func (h *Handler) handleConfirmDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	customer, err := h.customers.GetCustomer(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer_delete", pageData{
		Title:    "Eliminar cliente",
		BackHref: customersPath,
		Active:   customersPath,
		Body: deleteCustomerView{
			Name:   customer.FullName(),
			Action: customerPath(id, "/delete"),
			Cancel: customersPath,
		},
	})
}

// handleDeleteCustomer deletes and returns to the list. A refusal (for example
// approved loans still pending) is shown with the server's own message.
func (h *Handler) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err := h.customers.DeleteCustomer(ctx, id); err != nil {
		h.logActionError(r, "failed to delete customer", err)
		h.pushToast(ctx, flash.Error(api.UserMessage(err, "No se pudo eliminar el cliente"), ""))
		http.Redirect(w, r, customersPath, http.StatusSeeOther)
		return
	}
	h.pushToast(ctx, flash.Success("Cliente eliminado correctamente.", ""))
	http.Redirect(w, r, customersPath, http.StatusSeeOther)
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid form body"))
		return false
	}
	return true
}
