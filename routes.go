package main

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	r := mux.NewRouter()
	r.Handle("/", http.HandlerFunc(app.home)).Methods("GET")
	r.HandleFunc("/authenticate", http.HandlerFunc(app.authenticate)).Methods("POST")
	r.Handle("/dropdown/{name}", app.validateToken(http.HandlerFunc(app.dropdownHandler))).Methods("GET")
	r.Handle("/loan/calculation/{mode}/{principal}/{rate}/{tenure}/{installment}", app.validateToken(http.HandlerFunc(app.loanCalculation))).Methods("GET")
	r.Handle("/loan/new", app.validateToken(http.HandlerFunc(app.newLoan))).Methods("POST")
	r.Handle("/loan/search", app.validateToken(http.HandlerFunc(app.searchLoan))).Methods("GET")
	r.Handle("/loan/latest", app.validateToken(http.HandlerFunc(app.latestLoans))).Methods("GET")
	r.Handle("/loan/document", app.validateToken(http.HandlerFunc(app.loanDocument))).Methods("POST")
	r.Handle("/loan/document/download", app.validateToken(http.HandlerFunc(app.loanDocumentDownload))).Methods("GET")
	r.Handle("/loan/documents/{lid}", app.validateToken(http.HandlerFunc(app.loanDocuments))).Methods("GET")
	r.Handle("/loan/{lid}", app.validateToken(http.HandlerFunc(app.loanDetails))).Methods("GET")
	r.Handle("/deliveryorder/save", app.validateToken(http.HandlerFunc(app.saveDeliveryOrder))).Methods("POST")
	r.Handle("/deliveryorder/edit", app.validateToken(http.HandlerFunc(app.editDeliveryOrder))).Methods("POST")
	r.Handle("/deliveryorder/pricing/{lid}", app.validateToken(http.HandlerFunc(app.deliveryOrderPricing))).Methods("GET")
	r.Handle("/deliveryorder/{lid}", app.validateToken(http.HandlerFunc(app.deliveryOrderDetails))).Methods("GET")
	r.Handle("/payments/entry", app.validateToken(http.HandlerFunc(app.paymentsEntry))).Methods("POST")
	r.Handle("/payments/entry/delete", app.validateToken(http.HandlerFunc(app.paymentsEntryDelete))).Methods("POST")
	r.Handle("/payments/verify", app.validateToken(http.HandlerFunc(app.paymentsVerify))).Methods("POST")
	r.Handle("/payments/verify/revert", app.validateToken(http.HandlerFunc(app.paymentsVerifyRevert))).Methods("POST")
	r.Handle("/payments/{lid}", app.validateToken(http.HandlerFunc(app.paymentsDetails))).Methods("GET")
	r.Handle("/receipts/entry", app.validateToken(http.HandlerFunc(app.receiptsEntry))).Methods("POST")
	r.Handle("/receipts/entry/delete", app.validateToken(http.HandlerFunc(app.receiptsEntryDelete))).Methods("POST")
	r.Handle("/receipts/verify", app.validateToken(http.HandlerFunc(app.receiptsVerify))).Methods("POST")
	r.Handle("/receipts/verify/revert", app.validateToken(http.HandlerFunc(app.receiptsVerifyRevert))).Methods("POST")

	return standardMiddleware.Then(handlers.CORS(handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}), handlers.AllowedMethods([]string{"GET", "POST", "PUT", "HEAD", "OPTIONS"}), handlers.AllowedOrigins([]string{"*"}))(r))
}
