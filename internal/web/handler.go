// Package web serves the dashboard pages. Controllers read list state from the
// address, call the core API and render server-side HTML. Mutations follow
// POST-redirect-GET with a toast carried by the flash store.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loandesk/internal/flash"
	"loandesk/internal/format"
	"loandesk/internal/models"
	"loandesk/internal/platform/metrics"
	"loandesk/pkg/domain"
)

//go:generate mockgen -source=handler.go -destination=mocks/api-mocks.go -package=mocks CustomerAPI,LoanAPI

// CustomerAPI is the customer side of the core API.
type CustomerAPI interface {
	ListCustomers(ctx context.Context, params models.CustomerListParams) (*models.Page[models.Customer], error)
	GetCustomer(ctx context.Context, id domain.CustomerID) (*models.Customer, error)
	CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id domain.CustomerID, req models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id domain.CustomerID) error
	ListCustomerLoans(ctx context.Context, id domain.CustomerID, params models.LoanListParams) (*models.Page[models.Loan], error)
	SubmitLoanApplication(ctx context.Context, id domain.CustomerID, req models.SubmitLoanApplicationRequest) (*models.Loan, error)
}

// LoanAPI is the loan side of the core API.
type LoanAPI interface {
	GetLoan(ctx context.Context, id domain.LoanID) (*models.Loan, error)
	ApproveLoan(ctx context.Context, id domain.LoanID, req models.ReviewLoanApplicationRequest) (*models.Loan, error)
	RejectLoan(ctx context.Context, id domain.LoanID, req models.ReviewLoanApplicationRequest) (*models.Loan, error)
	ListLoanStatusHistory(ctx context.Context, id domain.LoanID, params models.PageParams) (*models.Page[models.LoanStatusHistory], error)
	ListLoanPayments(ctx context.Context, id domain.LoanID, params models.PageParams) (*models.Page[models.LoanPayment], error)
	RegisterLoanPayment(ctx context.Context, id domain.LoanID, req models.RegisterLoanPaymentRequest) (*models.LoanPayment, error)
}

// Handler serves every /dashboard route.
type Handler struct {
	customers CustomerAPI
	loans     LoanAPI
	toasts    flash.Store
	format    *format.Formatter
	views     *views
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// New creates the dashboard Handler. metrics may be nil.
func New(
	customers CustomerAPI,
	loans LoanAPI,
	toasts flash.Store,
	formatter *format.Formatter,
	logger *slog.Logger,
	metrics *metrics.Metrics,
) *Handler {
	return &Handler{
		customers: customers,
		loans:     loans,
		toasts:    toasts,
		format:    formatter,
		views:     mustParseViews(),
		logger:    logger,
		metrics:   metrics,
	}
}

// Register mounts the dashboard routes and the static assets.
func (h *Handler) Register(r chi.Router) {
	r.Handle("/static/*", http.StripPrefix("/static/", StaticHandler()))

	r.Get("/", redirectTo(customersPath))
	r.Get(validatePath, h.handleValidateField)
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", redirectTo(customersPath))

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.handleListCustomers)
			r.Get("/search", h.handleSearchCustomers)
			r.Get("/new", h.handleNewCustomer)
			r.Post("/new", h.handleCreateCustomer)

			r.Route("/{customerID}", func(r chi.Router) {
				r.Get("/edit", h.handleEditCustomer)
				r.Post("/edit", h.handleUpdateCustomer)
				r.Get("/delete", h.handleConfirmDeleteCustomer)
				r.Post("/delete", h.handleDeleteCustomer)

				r.Get("/loans", h.handleLoansIndex)
				r.Get("/loans/in-process", h.handleListLoans(models.LoanStatusInProcess))
				r.Get("/loans/approved", h.handleListLoans(models.LoanStatusApproved))
				r.Get("/loans/rejected", h.handleListLoans(models.LoanStatusRejected))
				r.Get("/loans/create", h.handleNewLoan)
				r.Post("/loans/create", h.handleSubmitLoan)

				r.Route("/loans/{loanID}", func(r chi.Router) {
					r.Get("/", h.handleLoanIndex)
					r.Get("/history", h.handleLoanHistory)
					r.Get("/payments", h.handleLoanPayments)
					r.Get("/payments/create", h.handleNewPayment)
					r.Post("/payments/create", h.handleRegisterPayment)
					r.Get("/approve", h.handleReviewForm(reviewApprove))
					r.Post("/approve", h.handleReview(reviewApprove))
					r.Get("/reject", h.handleReviewForm(reviewReject))
					r.Post("/reject", h.handleReview(reviewReject))
				})
			})
		})
	})
}

func redirectTo(location string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, location, http.StatusSeeOther)
	}
}
