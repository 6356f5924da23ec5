package http

import (
	"html/template"
	"net/http"
	"time"

	"kharcha/internal/core"
	applog "kharcha/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Today      string
		Categories []core.Category
		Modes      []core.PaymentMode
		Ranges     []core.DateRange
		MaxNotes   int
	}{
		Today:      time.Now().Format("2006-01-02"),
		Categories: core.Categories(),
		Modes:      core.PaymentModes(),
		Ranges:     core.DateRanges(),
		MaxNotes:   core.MaxNotesLength,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	paise, err := core.ParseDecimalToPaise(r.Form.Get("amount"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid amount</div>`))
		return
	}

	date, err := ParseFormDate(r.Form, time.Now())
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid date</div>`))
		return
	}

	exp := core.Expense{
		Amount:      core.Money{Paise: paise},
		Category:    core.Category(sanitizeInput(r.Form.Get("category"))),
		Notes:       sanitizeInput(r.Form.Get("notes")),
		Date:        date,
		PaymentMode: core.PaymentMode(sanitizeInput(r.Form.Get("mode"))),
	}
	// Validation happens here, at the entry boundary: the store accepts
	// whatever it is given.
	if err := exp.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid expense: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	saved, err := s.backend.Add(r.Context(), exp)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Expense add error",
			applog.FieldError, err,
			applog.FieldAmountPaise, exp.Amount.Paise,
			applog.FieldCategory, exp.Category)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not save expense</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"expense:created": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Expense recorded: ` +
		formatRupees(saved.Amount) + ` — ` +
		template.HTMLEscapeString(string(saved.Category)) +
		` (` + template.HTMLEscapeString(string(saved.PaymentMode)) + `)</div>`))
}

// handleExpenseTable renders the filtered, searched, sorted expense list.
// Filtering runs through the core query engine; search and sort are
// presentation state applied afterwards.
func (s *Server) handleExpenseTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	params := ParseFilterParams(r.URL.Query())

	expenses, err := s.backend.Expenses(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "List expenses error", applog.FieldError, err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not load expenses</div>`))
		return
	}

	filtered := core.Filter(expenses, params.Range, params.Categories, params.Modes, time.Now())
	filtered = searchNotes(filtered, params.Query)
	filtered = sortExpenses(filtered, params.SortField, params.SortDir)

	type row struct {
		ID     string
		Date   string
		Notes  string
		Cat    string
		Mode   string
		Amount string
	}
	data := struct {
		Rows  []row
		Count int
		Total string
	}{Count: len(filtered)}

	var total core.Money
	for _, e := range filtered {
		total = total.Add(e.Amount)
		data.Rows = append(data.Rows, row{
			ID:     e.ID,
			Date:   e.Date.Format("02 Jan 2006"),
			Notes:  e.Notes,
			Cat:    string(e.Category),
			Mode:   string(e.PaymentMode),
			Amount: formatRupees(e.Amount),
		})
	}
	data.Total = formatRupees(total)

	if err := s.templates.ExecuteTemplate(w, "expense_table.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Expense table template error", applog.FieldError, err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not render expenses</div>`))
	}
}
