package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"loandesk/internal/api"
	"loandesk/internal/flash"
	"loandesk/internal/format"
	"loandesk/internal/models"
	"loandesk/internal/platform/config"
	"loandesk/internal/web/mocks"
	"loandesk/pkg/domain"
	"loandesk/pkg/testutil"
)

const (
	customerUUID = "7f1c6a2e-2b7a-4c1e-9d7f-3a1b2c3d4e5f"
	loanUUID     = "0b9e8d7c-6a5b-4c3d-8e2f-1a0b9c8d7e6f"
	sessionID    = "session-1"
)

var requestTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type HandlerSuite struct {
	suite.Suite
	customers *mocks.MockCustomerAPI
	loans     *mocks.MockLoanAPI
	toasts    *flash.InMemoryStore
	router    chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.customers = mocks.NewMockCustomerAPI(ctrl)
	s.loans = mocks.NewMockLoanAPI(ctrl)
	s.toasts = flash.NewInMemory(time.Minute)

	formatter := format.New(config.Locale{Language: "es-GT", Currency: "GTQ"}).WithLocation(time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(s.customers, s.loans, s.toasts, formatter, logger, nil)

	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *HandlerSuite) get(path string) *httptest.ResponseRecorder {
	req := testutil.NewRequest(s.T(), http.MethodGet, path)
	req = testutil.WithRequestTime(testutil.WithSessionID(req, sessionID), requestTime)
	return testutil.DoRequest(s.router, req)
}

func (s *HandlerSuite) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := testutil.NewFormRequest(s.T(), path, form)
	req = testutil.WithRequestTime(testutil.WithSessionID(req, sessionID), requestTime)
	return testutil.DoRequest(s.router, req)
}

func (s *HandlerSuite) pendingToasts() []flash.Toast {
	toasts, err := s.toasts.Pop(context.Background(), sessionID)
	s.Require().NoError(err)
	return toasts
}

func customerID() domain.CustomerID { return domain.CustomerID(uuid.MustParse(customerUUID)) }
func loanID() domain.LoanID         { return domain.LoanID(uuid.MustParse(loanUUID)) }
func intPtr(i int) *int             { return &i }
func strPtr(s string) *string       { return &s }

func sampleCustomer() models.Customer {
	return models.Customer{
		ID:                   uuid.MustParse(customerUUID),
		FirstName:            "Ana",
		LastName:             "Lopez",
		IdentificationNumber: "1234567890123",
		BirthDate:            "1990-05-10",
		Address:              "Zona 1",
		Email:                "ana@example.com",
		Phone:                "55551234",
		CreatedAt:            requestTime,
		UpdatedAt:            requestTime,
	}
}

func sampleLoan(status models.LoanStatus) models.Loan {
	paymentStatus := models.PaymentStatusPartiallyPaid
	return models.Loan{
		ID:                 uuid.MustParse(loanUUID),
		CustomerID:         uuid.MustParse(customerUUID),
		CustomerFullName:   "Ana Lopez",
		LoanDate:           "2025-03-01T10:30:00",
		Amount:             decimal.NewFromInt(1500),
		TermMonths:         12,
		TotalPayable:       decimal.NewFromInt(1680),
		OutstandingBalance: decimal.NewFromInt(900),
		PaymentStatus:      &paymentStatus,
		Status:             status,
		CreatedAt:          requestTime,
		UpdatedAt:          requestTime,
	}
}

func pageOf[T any](rows []T, number, totalPages, total int) *models.Page[T] {
	return &models.Page[T]{
		Data:          rows,
		TotalElements: total,
		PageNumber:    number,
		TotalPages:    totalPages,
		IsFirst:       number == 0,
		IsLast:        number+1 >= totalPages,
		HasNext:       number+1 < totalPages,
		HasPrevious:   number > 0,
	}
}

func validCustomerForm() url.Values {
	return url.Values{
		"firstName":            {" Ana "},
		"lastName":             {"Lopez"},
		"identificationNumber": {"1234567890123"},
		"birthDate":            {"1990-05-10"},
		"address":              {"Zona 1"},
		"email":                {"ana@example.com"},
		"phone":                {"55551234"},
	}
}

// --- customer list -----------------------------------------------------------

func (s *HandlerSuite) TestListCustomersPassesAddressStateToTheAPI() {
	s.customers.EXPECT().ListCustomers(gomock.Any(), models.CustomerListParams{
		SearchTerm: strPtr("ana"),
		PageParams: models.PageParams{Page: intPtr(1), Size: intPtr(20)},
	}).Return(pageOf([]models.Customer{sampleCustomer()}, 1, 3, 45), nil)

	rr := s.get("/dashboard/customers?searchTerm=ana&page=1&size=20")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr,
		"Ana Lopez",
		"10/05/1990",
		"Pagina 2 de 3",
		"Registros totales: 45",
		`href="/dashboard/customers?page=2&amp;searchTerm=ana&amp;size=20"`,
		`href="/dashboard/customers?page=0&amp;searchTerm=ana&amp;size=20"`,
		`value="/dashboard/customers?page=0&amp;searchTerm=ana&amp;size=50"`,
		`value="ana"`,
		"Ver prestamos",
		"/dashboard/customers/"+customerUUID+"/edit",
	)
}

func (s *HandlerSuite) TestListCustomersClampsPaging() {
	tests := []struct {
		query string
		page  int
		size  int
	}{
		{query: "", page: 0, size: 10},
		{query: "?page=abc&size=x", page: 0, size: 10},
		{query: "?page=-3&size=-5", page: 0, size: 1},
		{query: "?size=0", page: 0, size: 10},
	}
	for _, tt := range tests {
		s.Run(tt.query, func() {
			s.customers.EXPECT().ListCustomers(gomock.Any(), models.CustomerListParams{
				PageParams: models.PageParams{Page: intPtr(tt.page), Size: intPtr(tt.size)},
			}).Return(pageOf([]models.Customer{}, 0, 0, 0), nil)

			rr := s.get("/dashboard/customers" + tt.query)

			testutil.AssertStatusOK(s.T(), rr)
			testutil.AssertBodyContains(s.T(), rr, "No hay clientes registrados", "Pagina 0 de 0")
		})
	}
}

func (s *HandlerSuite) TestListCustomersSortsTheCurrentPage() {
	zoe := sampleCustomer()
	zoe.FirstName = "Zoe"
	s.customers.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).
		Return(pageOf([]models.Customer{zoe, sampleCustomer()}, 0, 1, 2), nil)

	rr := s.get("/dashboard/customers?sort=name&desc=true")

	testutil.AssertStatusOK(s.T(), rr)
	body := rr.Body.String()
	s.Less(strings.Index(body, "Zoe Lopez"), strings.Index(body, "Ana Lopez"))
	s.Contains(body, `class="sort desc"`)
}

func (s *HandlerSuite) TestListCustomersUpstreamFailures() {
	tests := []struct {
		name   string
		err    error
		status int
		text   string
	}{
		{
			name:   "server error becomes bad gateway",
			err:    &api.Error{Kind: api.KindStatus, Status: 500, Message: "Error en solicitud (500)"},
			status: http.StatusBadGateway,
			text:   "Error en solicitud (500)",
		},
		{
			name:   "transport failure becomes bad gateway",
			err:    &api.Error{Kind: api.KindTransport, Message: "no se pudo contactar al servidor", Err: errors.New("dial tcp")},
			status: http.StatusBadGateway,
			text:   "no se pudo contactar al servidor",
		},
		{
			name:   "other statuses pass through",
			err:    &api.Error{Kind: api.KindStatus, Status: 400, Message: "Parametros invalidos"},
			status: http.StatusBadRequest,
			text:   "Parametros invalidos",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.customers.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := s.get("/dashboard/customers")

			testutil.AssertStatus(s.T(), rr, tt.status)
			testutil.AssertBodyContains(s.T(), rr, tt.text)
		})
	}
}

func (s *HandlerSuite) TestSearchRewritesTheAddress() {
	rr := s.get("/dashboard/customers/search?term=%201234%20&page=3&size=20")
	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers?page=0&searchTerm=1234&size=20")

	rr = s.get("/dashboard/customers/search?term=++&size=20&searchTerm=ana")
	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers?page=0&size=20")

	rr = s.get("/dashboard/customers/search?term=ana&size=10&sort=name&desc=true")
	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers?desc=true&page=0&searchTerm=ana&size=10&sort=name")
}

func (s *HandlerSuite) TestSearchFormCarriesTheListState() {
	s.customers.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).
		Return(pageOf([]models.Customer{sampleCustomer()}, 2, 5, 41), nil)

	rr := s.get("/dashboard/customers?page=2&size=10&searchTerm=ana&sort=name&desc=true")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr,
		`<input type="hidden" name="size" value="10">`,
		`<input type="hidden" name="desc" value="true">`,
		`<input type="hidden" name="sort" value="name">`,
	)
	testutil.AssertBodyNotContains(s.T(), rr,
		`type="hidden" name="page"`,
		`type="hidden" name="searchTerm"`,
	)
}

func (s *HandlerSuite) TestDashboardRootRedirects() {
	testutil.AssertRedirect(s.T(), s.get("/dashboard"), "/dashboard/customers")
}

// --- customer forms ----------------------------------------------------------

func (s *HandlerSuite) TestCreateCustomerInvalidFormNeverCallsTheAPI() {
	form := validCustomerForm()
	form.Set("phone", "1234")
	form.Set("birthDate", "2030-01-01")

	rr := s.post("/dashboard/customers/new", form)

	testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	testutil.AssertBodyContains(s.T(), rr,
		"Revisa los campos del formulario antes de enviar.",
		"El telefono debe tener exactamente 8 digitos",
		"La fecha de nacimiento debe ser en el pasado",
		`value="ana@example.com"`,
	)
}

func (s *HandlerSuite) TestCreateCustomerRedirectsWithToast() {
	created := sampleCustomer()
	s.customers.EXPECT().CreateCustomer(gomock.Any(), models.CreateCustomerRequest{
		FirstName:            "Ana",
		LastName:             "Lopez",
		IdentificationNumber: "1234567890123",
		BirthDate:            "1990-05-10",
		Address:              "Zona 1",
		Email:                "ana@example.com",
		Phone:                "55551234",
	}).Return(&created, nil)

	rr := s.post("/dashboard/customers/new", validCustomerForm())

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers")
	s.Equal([]flash.Toast{flash.Success("Cliente creado correctamente", "Nombre: Ana Lopez")}, s.pendingToasts())
}

func (s *HandlerSuite) TestToastIsShownOnTheNextPageOnce() {
	s.Require().NoError(s.toasts.Push(context.Background(), sessionID, flash.Success("Cliente creado correctamente", "Nombre: Ana Lopez")))
	s.customers.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).
		Return(pageOf([]models.Customer{}, 0, 0, 0), nil).Times(2)

	first := s.get("/dashboard/customers")
	testutil.AssertBodyContains(s.T(), first, "Cliente creado correctamente", "Nombre: Ana Lopez")

	second := s.get("/dashboard/customers")
	testutil.AssertBodyNotContains(s.T(), second, "Cliente creado correctamente")
}

func (s *HandlerSuite) TestCreateCustomerShowsServerMessage() {
	s.customers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		Return(nil, &api.Error{Kind: api.KindStatus, Status: 409, Message: "Ya existe un cliente con ese CUI"})

	rr := s.post("/dashboard/customers/new", validCustomerForm())

	testutil.AssertStatus(s.T(), rr, http.StatusConflict)
	testutil.AssertBodyContains(s.T(), rr, "Ya existe un cliente con ese CUI")
}

func (s *HandlerSuite) TestCreateCustomerFallbackMessageOnTransportFailure() {
	s.customers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		Return(nil, &api.Error{Kind: api.KindTransport, Message: "no se pudo contactar al servidor"})

	rr := s.post("/dashboard/customers/new", validCustomerForm())

	testutil.AssertStatus(s.T(), rr, http.StatusBadGateway)
	testutil.AssertBodyContains(s.T(), rr, "No se pudo registrar el cliente")
}

func (s *HandlerSuite) TestEditCustomerPrefillsTheForm() {
	customer := sampleCustomer()
	s.customers.EXPECT().GetCustomer(gomock.Any(), customerID()).Return(&customer, nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/edit")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, "Editar cliente", `value="1234567890123"`, "Guardar cambios")
}

func (s *HandlerSuite) TestMalformedCustomerIDIsNotFound() {
	rr := s.get("/dashboard/customers/not-a-uuid/edit")

	testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	testutil.AssertBodyContains(s.T(), rr, "Recurso no encontrado")
}

func (s *HandlerSuite) TestUpdateCustomerSendsSubmittedFields() {
	updated := sampleCustomer()
	s.customers.EXPECT().UpdateCustomer(gomock.Any(), customerID(), models.UpdateCustomerRequest{
		FirstName: strPtr("Ana"),
		Phone:     strPtr("55559999"),
	}).Return(&updated, nil)

	rr := s.post("/dashboard/customers/"+customerUUID+"/edit", url.Values{
		"firstName": {"Ana "},
		"phone":     {"55559999"},
	})

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers")
	toasts := s.pendingToasts()
	s.Require().Len(toasts, 1)
	s.Equal("Cliente actualizado correctamente", toasts[0].Title)
}

func (s *HandlerSuite) TestDeleteCustomerRefusalKeepsServerMessage() {
	s.customers.EXPECT().DeleteCustomer(gomock.Any(), customerID()).
		Return(&api.Error{Kind: api.KindStatus, Status: 409, Message: "El cliente tiene prestamos aprobados pendientes de pago"})

	rr := s.post("/dashboard/customers/"+customerUUID+"/delete", nil)

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers")
	s.Equal([]flash.Toast{flash.Error("El cliente tiene prestamos aprobados pendientes de pago", "")}, s.pendingToasts())
}

func (s *HandlerSuite) TestDeleteCustomerConfirmation() {
	customer := sampleCustomer()
	s.customers.EXPECT().GetCustomer(gomock.Any(), customerID()).Return(&customer, nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/delete")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, "Ana Lopez", "Esta accion no es reversible.", "Cancelar", "Eliminar cliente")
}

// --- loans -------------------------------------------------------------------

func (s *HandlerSuite) TestLoansIndexRedirectsToInProcessTab() {
	rr := s.get("/dashboard/customers/" + customerUUID + "/loans")
	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers/"+customerUUID+"/loans/in-process")
}

func (s *HandlerSuite) TestApprovedTabShowsBalancesAndPaymentActions() {
	s.customers.EXPECT().ListCustomerLoans(gomock.Any(), customerID(), models.LoanListParams{
		Status:     strPtr("APPROVED"),
		PageParams: models.PageParams{Page: intPtr(0), Size: intPtr(10)},
	}).Return(pageOf([]models.Loan{sampleLoan(models.LoanStatusApproved)}, 0, 1, 1), nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/approved")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr,
		"Prestamos aprobados",
		"Saldo pendiente",
		"Estado de pago",
		"Pagado parcialmente",
		"Realizar pago",
		"Historial pagos",
		"01/03/2025",
		"ID prestamo",
		"Tasa interes anual",
		"Estado prestamo",
		"Proposito",
	)
	testutil.AssertBodyNotContains(s.T(), rr, ">Aprobar<", "préstamo", "interés", "Propósito")
}

func (s *HandlerSuite) TestInProcessTabOffersReview() {
	s.customers.EXPECT().ListCustomerLoans(gomock.Any(), customerID(), gomock.Any()).
		Return(pageOf([]models.Loan{sampleLoan(models.LoanStatusInProcess)}, 0, 1, 1), nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/in-process")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, ">Aprobar<", ">Rechazar<", "En proceso")
	testutil.AssertBodyNotContains(s.T(), rr, "Estado de pago", "Realizar pago")
}

func (s *HandlerSuite) TestEmptyRejectedTab() {
	s.customers.EXPECT().ListCustomerLoans(gomock.Any(), customerID(), gomock.Any()).
		Return(pageOf([]models.Loan{}, 0, 0, 0), nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/rejected")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, "No hay prestamos para este estado")
}

func (s *HandlerSuite) TestSubmitLoanRedirectsToInProcess() {
	loan := sampleLoan(models.LoanStatusInProcess)
	s.customers.EXPECT().SubmitLoanApplication(gomock.Any(), customerID(), models.SubmitLoanApplicationRequest{
		Amount:             decimal.RequireFromString("1500"),
		TermMonths:         12,
		AnnualInterestRate: decimal.RequireFromString("12.5"),
	}).Return(&loan, nil)

	rr := s.post("/dashboard/customers/"+customerUUID+"/loans/create", url.Values{
		"loanDate":           {""},
		"amount":             {"1500"},
		"termMonths":         {"12"},
		"annualInterestRate": {"12.5"},
		"purpose":            {"  "},
	})

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers/"+customerUUID+"/loans/in-process")
	s.Equal([]flash.Toast{flash.Success("Prestamo solicitado correctamente", "Monto: Q 1500.00")}, s.pendingToasts())
}

func (s *HandlerSuite) TestSubmitLoanInvalidAmount() {
	rr := s.post("/dashboard/customers/"+customerUUID+"/loans/create", url.Values{
		"amount":     {"0"},
		"termMonths": {"12"},
	})

	testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	testutil.AssertBodyContains(s.T(), rr, "El monto debe ser mayor a 0")
}

// --- loan detail -------------------------------------------------------------

func (s *HandlerSuite) TestLoanIndexRedirectsToHistory() {
	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID)
	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/history")
}

func (s *HandlerSuite) TestLoanHistoryRendersHeaderAndList() {
	loan := sampleLoan(models.LoanStatusApproved)
	s.loans.EXPECT().GetLoan(gomock.Any(), loanID()).Return(&loan, nil)
	s.loans.EXPECT().ListLoanStatusHistory(gomock.Any(), loanID(), models.PageParams{Page: intPtr(0), Size: intPtr(10)}).
		Return(pageOf([]models.LoanStatusHistory{{
			ID:        uuid.New(),
			LoanID:    uuid.MustParse(loanUUID),
			Status:    models.LoanStatusApproved,
			Notes:     strPtr("Cliente con buen historial"),
			CreatedAt: requestTime,
			UpdatedAt: requestTime,
		}}, 0, 1, 1), nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID + "/history")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr,
		"Historial de estado del prestamo",
		"Prestamo del: 01/03/2025 10:30",
		"Monto total:",
		"Saldo:",
		"Ver notas",
		"Cliente con buen historial",
		"01/06/2025 12:00",
		"Realizar pago",
	)
}

func (s *HandlerSuite) TestLoanHistoryNeedsBothCalls() {
	s.loans.EXPECT().GetLoan(gomock.Any(), loanID()).
		Return(nil, &api.Error{Kind: api.KindStatus, Status: 404, Message: "Prestamo no encontrado"})
	s.loans.EXPECT().ListLoanStatusHistory(gomock.Any(), loanID(), gomock.Any()).
		Return(pageOf([]models.LoanStatusHistory{}, 0, 0, 0), nil).AnyTimes()

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID + "/history")

	testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	testutil.AssertBodyContains(s.T(), rr, "Prestamo no encontrado")
}

func (s *HandlerSuite) TestLoanPaymentsPage() {
	loan := sampleLoan(models.LoanStatusApproved)
	s.loans.EXPECT().GetLoan(gomock.Any(), loanID()).Return(&loan, nil)
	s.loans.EXPECT().ListLoanPayments(gomock.Any(), loanID(), models.PageParams{Page: intPtr(2), Size: intPtr(5)}).
		Return(pageOf([]models.LoanPayment{}, 2, 3, 12), nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID + "/payments?page=2&size=5")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, "Historial de pagos", "No hay pagos registrados para este prestamo", "Pagina 3 de 3")
}

func (s *HandlerSuite) TestReviewFormRefusesLoansNotInProcess() {
	loan := sampleLoan(models.LoanStatusApproved)
	s.loans.EXPECT().GetLoan(gomock.Any(), loanID()).Return(&loan, nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID + "/approve")

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/history")
	s.Equal([]flash.Toast{flash.Error(reviewRefusal, "")}, s.pendingToasts())
}

func (s *HandlerSuite) TestReviewFormForLoanInProcess() {
	loan := sampleLoan(models.LoanStatusInProcess)
	s.loans.EXPECT().GetLoan(gomock.Any(), loanID()).Return(&loan, nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID + "/reject")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, "Rechazar prestamo", "Razon de rechazo", "Confirmar rechazo")
}

func (s *HandlerSuite) TestApproveRedirectsToApprovedTab() {
	approved := sampleLoan(models.LoanStatusApproved)
	s.loans.EXPECT().ApproveLoan(gomock.Any(), loanID(), models.ReviewLoanApplicationRequest{Notes: "Ingresos verificados"}).
		Return(&approved, nil)

	rr := s.post("/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/approve", url.Values{
		"notes": {"  Ingresos verificados "},
	})

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers/"+customerUUID+"/loans/approved")
	s.Equal([]flash.Toast{flash.Success("Prestamo aprobado correctamente.", "")}, s.pendingToasts())
}

func (s *HandlerSuite) TestRejectWithoutNotes() {
	rr := s.post("/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/reject", url.Values{"notes": {"   "}})

	testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	testutil.AssertBodyContains(s.T(), rr, "Revisa las notas antes de enviar.", "Las notas son obligatorias")
}

func (s *HandlerSuite) TestRejectConflictShowsServerMessage() {
	s.loans.EXPECT().RejectLoan(gomock.Any(), loanID(), gomock.Any()).
		Return(nil, &api.Error{Kind: api.KindStatus, Status: 409, Detail: "El prestamo ya fue revisado", Message: "El prestamo ya fue revisado"})

	rr := s.post("/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/reject", url.Values{"notes": {"Sin ingresos"}})

	testutil.AssertStatus(s.T(), rr, http.StatusConflict)
	testutil.AssertBodyContains(s.T(), rr, "El prestamo ya fue revisado")
}

func (s *HandlerSuite) TestPaymentFormOnlyForApprovedLoans() {
	loan := sampleLoan(models.LoanStatusRejected)
	s.loans.EXPECT().GetLoan(gomock.Any(), loanID()).Return(&loan, nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID + "/payments/create")

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/history")
	s.Equal([]flash.Toast{flash.Error(paymentRefusal, "")}, s.pendingToasts())
}

func (s *HandlerSuite) TestPaymentFormListsMethods() {
	loan := sampleLoan(models.LoanStatusApproved)
	s.loans.EXPECT().GetLoan(gomock.Any(), loanID()).Return(&loan, nil)

	rr := s.get("/dashboard/customers/" + customerUUID + "/loans/" + loanUUID + "/payments/create")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, "Selecciona metodo de pago", `<option value="CASH">Efectivo</option>`, "Registrar pago")
}

func (s *HandlerSuite) TestRegisterPayment() {
	payment := models.LoanPayment{
		ID:            uuid.New(),
		LoanID:        uuid.MustParse(loanUUID),
		CustomerID:    uuid.MustParse(customerUUID),
		Amount:        decimal.RequireFromString("150"),
		PaymentMethod: models.PaymentMethodCash,
		CreatedAt:     requestTime,
		UpdatedAt:     requestTime,
	}
	s.loans.EXPECT().RegisterLoanPayment(gomock.Any(), loanID(), models.RegisterLoanPaymentRequest{
		Amount:        decimal.RequireFromString("150"),
		PaymentMethod: models.PaymentMethodCash,
		Notes:         strPtr("Abono de junio"),
	}).Return(&payment, nil)

	rr := s.post("/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/payments/create", url.Values{
		"amount":        {"150"},
		"paymentMethod": {"CASH"},
		"paymentDate":   {""},
		"notes":         {" Abono de junio "},
	})

	testutil.AssertRedirect(s.T(), rr, "/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/payments")
	s.Equal([]flash.Toast{flash.Success("Pago registrado correctamente", "Monto: Q 150.00")}, s.pendingToasts())
}

func (s *HandlerSuite) TestRegisterPaymentRejectsTinyAmounts() {
	rr := s.post("/dashboard/customers/"+customerUUID+"/loans/"+loanUUID+"/payments/create", url.Values{
		"amount":        {"0.001"},
		"paymentMethod": {"CASH"},
	})

	testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	testutil.AssertBodyContains(s.T(), rr, "El monto debe ser mayor o igual a 0.01", `<option value="CASH" selected>`)
}

// --- field validation and assets ---------------------------------------------

func (s *HandlerSuite) TestValidateField() {
	rr := s.get("/dashboard/validate?schema=customer&field=phone&value=123")
	testutil.AssertStatusOK(s.T(), rr)
	result := testutil.UnmarshalResponse[fieldResult](s.T(), rr)
	s.False(result.Valid)
	s.Equal("El telefono debe tener exactamente 8 digitos", result.Message)

	rr = s.get("/dashboard/validate?schema=customer&field=phone&value=55551234")
	result = testutil.UnmarshalResponse[fieldResult](s.T(), rr)
	s.True(result.Valid)

	rr = s.get("/dashboard/validate?schema=nope&field=phone&value=1")
	testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	testutil.AssertErrorCode(s.T(), rr, "invalid_input")
}

func (s *HandlerSuite) TestStaticAssets() {
	rr := s.get("/static/app.js")
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, "SEARCH_DEBOUNCE_MS = 350", `getAttribute("data-validate-url")`)
	testutil.AssertBodyNotContains(s.T(), rr, `fetch("/dashboard/validate`)
}

func (s *HandlerSuite) TestLayoutAdvertisesTheValidationEndpoint() {
	s.customers.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).
		Return(pageOf([]models.Customer{}, 0, 1, 0), nil)

	rr := s.get("/dashboard/customers")
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertBodyContains(s.T(), rr, `<body data-validate-url="/dashboard/validate">`)

	rr = s.get(validatePath + "?schema=customer&field=phone&value=55551234")
	testutil.AssertStatusOK(s.T(), rr)
	s.True(testutil.UnmarshalResponse[fieldResult](s.T(), rr).Valid)
}

func TestErrorStatus(t *testing.T) {
	_, err := domain.ParseCustomerID("nope")
	require.Error(t, err)

	status, _ := errorStatus(err)
	assert.Equal(t, http.StatusNotFound, status)

	status, msg := errorStatus(&api.Error{Kind: api.KindShape, Status: 200, Message: "respuesta invalida del servidor"})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "respuesta invalida del servidor", msg)

	status, _ = errorStatus(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestEffectiveStatus(t *testing.T) {
	assert.Equal(t, models.LoanStatusApproved, effectiveStatus(models.LoanStatusApproved))
	assert.Equal(t, models.LoanStatusInProcess, effectiveStatus("ON_HOLD"))
}
