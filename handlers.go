package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/autocredits/brokerd/pkg/emi"
	"github.com/autocredits/brokerd/pkg/ledger"
	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/persist"
	"github.com/autocredits/brokerd/pkg/pricing"
)

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	if app.runtimeEnv == "dev" {
		fmt.Fprintf(w, "It works! [dev]")
	} else {
		fmt.Fprintf(w, "It works!")
	}
}

func (app *application) authenticate(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	u, err := app.user.Get(username, password)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["username"] = u.Username
	claims["name"] = u.Name
	claims["exp"] = time.Now().Add(time.Minute * 180).Unix()

	ts, err := token.SignedString(app.secret)
	if err != nil {
		app.serverError(w, err)
		return
	}

	user := models.UserResponse{ID: u.ID, Username: u.Username, Name: u.Name, Role: u.Type, Token: ts}
	js, err := json.Marshal(user)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

func (app *application) dropdownHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	if name == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.dropdown.Get(name)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)

}

func (app *application) loanCalculation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rate, err := strconv.ParseFloat(vars["rate"], 64)
	if err != nil {
		rate = 0
	}

	s := emi.Scenario{
		Principal:         pricing.ParseAmount(vars["principal"]),
		AnnualRatePercent: rate,
		TenureMonths:      pricing.ParseCount(vars["tenure"]),
		Installment:       pricing.ParseAmount(vars["installment"]),
		Mode:              emi.Mode(vars["mode"]),
	}

	res := emi.Solve(s)
	schedule := emi.BuildSchedule(res.Principal, res.AnnualRatePercent, res.Installment, res.TenureMonths)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Result   emi.Result `json:"result"`
		Schedule []emi.Row  `json:"schedule"`
	}{res, schedule})
}

func (app *application) newLoan(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"user_id", "customer_name", "customer_nic", "customer_address", "customer_contact", "model_id", "chassis_number"}
	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	userID := pricing.ParseCount(r.PostForm.Get("user_id"))
	modelID := pricing.ParseCount(r.PostForm.Get("model_id"))
	bankID := pricing.ParseCount(r.PostForm.Get("bank_id"))
	financed := r.PostForm.Get("financed") == "1"

	lid, err := app.loan.Insert(userID, r.PostForm.Get("customer_name"), r.PostForm.Get("customer_nic"), r.PostForm.Get("customer_address"), r.PostForm.Get("customer_contact"), modelID, r.PostForm.Get("chassis_number"), financed, bankID)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", lid)
}

func (app *application) loanDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lid, err := strconv.Atoi(vars["lid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	l, err := app.loan.Get(lid)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

func (app *application) searchLoan(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	financed := r.URL.Query().Get("financed")

	results, err := app.loan.Search(search, financed)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

func (app *application) latestLoans(w http.ResponseWriter, r *http.Request) {
	results, err := app.loan.Latest()
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

func formValue(form map[string][]string, name string) (string, bool) {
	if v, ok := form[name]; ok && len(v) > 0 {
		return v[0], true
	}
	return "", false
}

// extrasFromForm collects the open line items submitted as indexed pairs
// (<prefix>_label_0/<prefix>_amount_0, _1, ...). Collection stops at the
// first index with neither field present.
func extrasFromForm(form map[string][]string, prefix string) []pricing.LineItem {
	var items []pricing.LineItem
	for i := 0; ; i++ {
		label, hasLabel := formValue(form, fmt.Sprintf("%s_label_%d", prefix, i))
		amount, hasAmount := formValue(form, fmt.Sprintf("%s_amount_%d", prefix, i))
		if !hasLabel && !hasAmount {
			return items
		}
		items = append(items, pricing.LineItem{Label: label, Amount: pricing.ParseAmount(amount)})
	}
}

// factsFromForm rebuilds the full delivery order fact set from a flat form.
// Every amount passes through the coercing parser, so junk in any one field
// degrades to zero instead of failing the whole submission.
func factsFromForm(form map[string][]string) ledger.Facts {
	get := func(name string) string {
		v, _ := formValue(form, name)
		return v
	}
	amount := func(name string) int64 {
		return pricing.ParseAmount(get(name))
	}

	return ledger.Facts{
		Charges: pricing.Charges{
			BasePrice:        amount("base_price"),
			Tax:              amount("tax"),
			Insurance:        amount("insurance"),
			RoadTax:          amount("road_tax"),
			RegistrationFee:  amount("registration_fee"),
			Accessories:      amount("accessories"),
			TagFee:           amount("tag_fee"),
			ExtendedWarranty: amount("extended_warranty"),
			Extras:           extrasFromForm(form, "charge_extra"),
		},
		ShowroomDiscounts: pricing.Discounts{
			Dealer:               amount("showroom_dealer_discount"),
			Scheme:               amount("showroom_scheme_discount"),
			InsuranceCashback:    amount("showroom_insurance_cashback"),
			ExchangeBonus:        amount("showroom_exchange_bonus"),
			ExchangeVehiclePrice: amount("showroom_exchange_vehicle_price"),
			Loyalty:              amount("showroom_loyalty_discount"),
			Corporate:            amount("showroom_corporate_discount"),
			Extras:               extrasFromForm(form, "showroom_extra"),
		},
		CustomerDiscounts: pricing.Discounts{
			Dealer:               amount("customer_dealer_discount"),
			Scheme:               amount("customer_scheme_discount"),
			InsuranceCashback:    amount("customer_insurance_cashback"),
			ExchangeBonus:        amount("customer_exchange_bonus"),
			ExchangeVehiclePrice: amount("customer_exchange_vehicle_price"),
			Loyalty:              amount("customer_loyalty_discount"),
			Corporate:            amount("customer_corporate_discount"),
			Extras:               extrasFromForm(form, "customer_extra"),
		},
		Order: models.DeliveryOrderFacts{
			MarginMoneyPaid:      amount("margin_money_paid"),
			InsuranceCost:        amount("insurance_cost"),
			InsuranceBy:          models.Party(get("insurance_by")),
			ExchangeVehicleValue: amount("exchange_vehicle_value"),
			ExchangePurchasedBy:  models.Party(get("exchange_purchased_by")),
			Financed:             get("financed") == "1",
			LoanAmount:           amount("loan_amount"),
			ProcessingFees:       amount("processing_fees"),
			AccountType:          models.AccountType(get("account_type")),
		},
	}
}

func (app *application) deliveryOrderDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lid, err := strconv.Atoi(vars["lid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, err := app.deliveryOrder.Get(lid)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(facts)
}

func (app *application) deliveryOrderPricing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lid, err := strconv.Atoi(vars["lid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	derived := ledger.Recompute(facts, s, a, time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(derived)
}

func (app *application) saveDeliveryOrder(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts := factsFromForm(r.PostForm)
	app.saver.Cancel(lid, persist.KeyDeliveryOrder)
	if err := app.deliveryOrder.Upsert(lid, facts); err != nil {
		app.serverError(w, err)
		return
	}

	app.refreshPayments(w, lid, facts)
}

func (app *application) editDeliveryOrder(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts := factsFromForm(r.PostForm)
	app.saver.Schedule(lid, persist.KeyDeliveryOrder, func() error {
		return app.deliveryOrder.Upsert(lid, facts)
	})

	app.refreshPayments(w, lid, facts)
}

func (app *application) paymentsDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lid, err := strconv.Atoi(vars["lid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	derived := ledger.Recompute(facts, s, a, time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Record  ledger.PaymentRecord `json:"record"`
		Derived ledger.Derived       `json:"derived"`
	}{ledger.Snapshot(s, a, derived), derived})
}

func (app *application) paymentsEntry(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	e := ledger.Entry{
		Type:    ledger.EntryType(r.PostForm.Get("type")),
		Payer:   models.Party(r.PostForm.Get("payer")),
		Mode:    ledger.PaymentMode(r.PostForm.Get("mode")),
		Amount:  pricing.ParseAmount(r.PostForm.Get("amount")),
		Date:    r.PostForm.Get("date"),
		Remarks: r.PostForm.Get("remarks"),
	}

	if id := r.PostForm.Get("id"); id != "" {
		e.ID = int64(pricing.ParseCount(id))
		err = s.Update(e)
	} else {
		_, err = s.Add(e)
	}
	if err != nil {
		app.ledgerError(w, err)
		return
	}

	app.commitPayments(w, lid, facts, s, a)
}

func (app *application) paymentsEntryDelete(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	id := int64(pricing.ParseCount(r.PostForm.Get("id")))
	if lid == 0 || id == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	if err := s.Remove(id); err != nil {
		app.ledgerError(w, err)
		return
	}

	app.commitPayments(w, lid, facts, s, a)
}

func (app *application) paymentsVerify(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	derived := ledger.Recompute(facts, s, a, time.Now().Format("2006-01-02"))
	if err := s.Verify(derived.Payable.NetPayableToDealer); err != nil {
		app.ledgerError(w, err)
		return
	}

	app.flushPayments(w, lid, s, a, derived)
}

func (app *application) paymentsVerifyRevert(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	s.Revert()
	derived := ledger.Recompute(facts, s, a, time.Now().Format("2006-01-02"))

	app.flushPayments(w, lid, s, a, derived)
}

func (app *application) receiptsEntry(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	var types []ledger.ReceiptType
	for _, t := range strings.Split(r.PostForm.Get("types"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, ledger.ReceiptType(t))
		}
	}

	e := ledger.ReceiptEntry{
		Types:  types,
		Mode:   ledger.PaymentMode(r.PostForm.Get("mode")),
		Amount: pricing.ParseAmount(r.PostForm.Get("amount")),
		Date:   r.PostForm.Get("date"),
	}

	if id := r.PostForm.Get("id"); id != "" {
		e.ID = int64(pricing.ParseCount(id))
		err = a.Update(e)
	} else {
		_, err = a.Add(e)
	}
	if err != nil {
		app.ledgerError(w, err)
		return
	}

	app.commitPayments(w, lid, facts, s, a)
}

func (app *application) receiptsEntryDelete(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	id := int64(pricing.ParseCount(r.PostForm.Get("id")))
	if lid == 0 || id == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	if err := a.Remove(id); err != nil {
		app.ledgerError(w, err)
		return
	}

	app.commitPayments(w, lid, facts, s, a)
}

func (app *application) receiptsVerify(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	derived := ledger.Recompute(facts, s, a, time.Now().Format("2006-01-02"))
	if err := a.Verify(derived.Receivable); err != nil {
		app.ledgerError(w, err)
		return
	}

	app.flushPayments(w, lid, s, a, derived)
}

func (app *application) receiptsVerifyRevert(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	lid := pricing.ParseCount(r.PostForm.Get("loan_id"))
	if lid == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	facts, s, a, err := app.loadState(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	a.Revert()
	derived := ledger.Recompute(facts, s, a, time.Now().Format("2006-01-02"))

	app.flushPayments(w, lid, s, a, derived)
}

func (app *application) loanDocument(w http.ResponseWriter, r *http.Request) {
	maxSize := int64(5120000)
	err := r.ParseMultipartForm(maxSize)
	if err != nil {
		app.serverError(w, err)
		return
	}

	requiredParams := []string{"loan_id", "document_id", "user_id"}
	for _, param := range requiredParams {
		if v := r.FormValue(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	file, fileHeader, err := r.FormFile("source")
	if err != nil {
		app.serverError(w, err)
		return
	}
	defer file.Close()

	s, err := app.getS3Session(app.s3endpoint, app.s3region)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fileName, err := app.uploadFileToS3(s, file, fileHeader)
	if err != nil {
		app.serverError(w, err)
		return
	}

	loanID := pricing.ParseCount(r.FormValue("loan_id"))
	documentID := pricing.ParseCount(r.FormValue("document_id"))
	userID := pricing.ParseCount(r.FormValue("user_id"))

	id, err := app.loan.AddDocument(loanID, documentID, userID, app.s3bucket, app.s3region, fileName)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) loanDocuments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lid, err := strconv.Atoi(vars["lid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	docs, err := app.loan.Documents(lid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(docs)
}

func (app *application) loanDocumentDownload(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	region := r.URL.Query().Get("region")
	source := r.URL.Query().Get("source")
	if bucket == "" || region == "" || source == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	sess, err := app.getS3Session(fmt.Sprintf("%s.digitaloceanspaces.com", region), region)
	if err != nil {
		app.serverError(w, err)
		return
	}

	s3c := s3.New(sess)
	output, err := s3c.GetObject(&s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(source)})
	if err != nil {
		app.serverError(w, err)
		return
	}

	buff, err := ioutil.ReadAll(output.Body)
	if err != nil {
		app.serverError(w, err)
		return
	}

	reader := bytes.NewReader(buff)

	http.ServeContent(w, r, source, time.Now(), reader)
}

// loadState pulls the stored facts and payment record for a loan. Missing
// records come back as empty values, not errors, so a loan can be worked on
// before anything has been saved against it.
func (app *application) loadState(lid int) (ledger.Facts, *ledger.Showroom, *ledger.Autocredits, error) {
	facts, err := app.deliveryOrder.Get(lid)
	if err != nil && !errors.Is(err, models.ErrNoRecord) {
		return ledger.Facts{}, nil, nil, err
	}

	rec, err := app.payment.Get(lid)
	if err != nil && !errors.Is(err, models.ErrNoRecord) {
		return ledger.Facts{}, nil, nil, err
	}

	s, a := rec.Ledgers()
	return facts, s, a, nil
}

// refreshPayments recomputes against the given facts and responds with the
// derived state. The payment record itself is rescheduled for persistence
// because derived rows may have changed.
func (app *application) refreshPayments(w http.ResponseWriter, lid int, facts ledger.Facts) {
	rec, err := app.payment.Get(lid)
	if err != nil && !errors.Is(err, models.ErrNoRecord) {
		app.serverError(w, err)
		return
	}

	s, a := rec.Ledgers()
	app.commitPayments(w, lid, facts, s, a)
}

func (app *application) commitPayments(w http.ResponseWriter, lid int, facts ledger.Facts, s *ledger.Showroom, a *ledger.Autocredits) {
	derived := ledger.Recompute(facts, s, a, time.Now().Format("2006-01-02"))
	rec := ledger.Snapshot(s, a, derived)

	app.saver.Schedule(lid, persist.KeyPayments, func() error {
		return app.payment.Upsert(lid, rec)
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Record  ledger.PaymentRecord `json:"record"`
		Derived ledger.Derived       `json:"derived"`
	}{rec, derived})
}

// flushPayments writes the record through immediately. Verification and
// revert are explicit acts; they never sit behind the debounce.
func (app *application) flushPayments(w http.ResponseWriter, lid int, s *ledger.Showroom, a *ledger.Autocredits, derived ledger.Derived) {
	rec := ledger.Snapshot(s, a, derived)

	app.saver.Cancel(lid, persist.KeyPayments)
	if err := app.payment.Upsert(lid, rec); err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Record  ledger.PaymentRecord `json:"record"`
		Derived ledger.Derived       `json:"derived"`
	}{rec, derived})
}

func (app *application) ledgerError(w http.ResponseWriter, err error) {
	var ve *ledger.VerificationError
	if errors.As(err, &ve) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": ve.Error()})
		return
	}
	if errors.Is(err, ledger.ErrVerified) || errors.Is(err, ledger.ErrDerivedEntry) || errors.Is(err, ledger.ErrEntryNotFound) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	app.serverError(w, err)
}
